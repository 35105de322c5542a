package tui

import "github.com/charmbracelet/lipgloss"

// Terminal theme colors (ANSI 0-15)
// These adapt to the user's terminal color scheme
var (
	colorBlack       = lipgloss.Color("0")
	colorRed         = lipgloss.Color("1")
	colorGreen       = lipgloss.Color("2")
	colorYellow      = lipgloss.Color("3")
	colorMagenta     = lipgloss.Color("5")
	colorWhite       = lipgloss.Color("7")
	colorBrightBlack = lipgloss.Color("8")

	// Semantic aliases
	primaryColor   = colorYellow
	successColor   = colorGreen
	dangerColor    = colorRed
	highlightColor = colorMagenta
	mutedColor     = colorBrightBlack
	fgColor        = colorWhite

	// Header bar
	headerStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(colorBlack).
			Bold(true).
			Padding(0, 1)

	deckTitleStyle = lipgloss.NewStyle().
			Foreground(fgColor).
			Bold(true).
			Padding(0, 1)

	positionStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Padding(0, 1)

	// Status bar (no background - uses terminal default)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(fgColor)

	// Cards
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	activeCardStyle = cardStyle.
			BorderForeground(primaryColor)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(fgColor).
			Bold(true)

	activeCardTitleStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	cardFooterStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Pager dots
	dotStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	activeDotStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Modal/dialog styles
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	// Error/success messages
	errorStyle = lipgloss.NewStyle().
			Foreground(dangerColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// Help key style
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(fgColor)
)
