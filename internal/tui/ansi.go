// ansi.go - ANSI-aware column slicing for the carousel strip

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FitToWidth ensures a string is exactly the specified visual width.
// If the string is too long, it truncates using ANSI-aware truncation.
// If the string is too short, it pads with spaces.
// Color codes are preserved in both cases.
func FitToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	currentWidth := lipgloss.Width(s)

	if currentWidth > width {
		return ansi.Truncate(s, width, "")
	}

	if currentWidth < width {
		return s + strings.Repeat(" ", width-currentWidth)
	}

	return s
}

// FitCellContent ensures a string fits within the specified width.
// If the string is too long, it truncates with an ellipsis (…).
// If the string is too short, it pads with spaces.
func FitCellContent(s string, width int) string {
	if width <= 0 {
		return ""
	}

	currentWidth := lipgloss.Width(s)

	if currentWidth > width {
		if width <= 1 {
			return "…"
		}
		return ansi.Truncate(s, width-1, "") + "…"
	}

	if currentWidth < width {
		return s + strings.Repeat(" ", width-currentWidth)
	}

	return s
}

// CutColumns returns exactly width visual columns of s starting at column
// left. A negative left shifts the content right, padding the gap with spaces.
func CutColumns(s string, left, width int) string {
	if width <= 0 {
		return ""
	}

	var prefix string
	if left < 0 {
		if -left >= width {
			return strings.Repeat(" ", width)
		}
		prefix = strings.Repeat(" ", -left)
		width += left
		left = 0
	}

	return prefix + FitToWidth(ansi.Cut(s, left, left+width), width)
}
