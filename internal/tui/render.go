package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/juanibiapina/sideswipe/internal/carousel"
	"github.com/juanibiapina/sideswipe/internal/deck"
)

// renderCard draws one page at the current frame size. The card nearest to
// the scroll progress gets the active border.
func (f *frame) renderCard(ctx carousel.ItemContext[deck.Item]) string {
	width, height := f.itemWidth, f.height
	if width <= 0 || height <= 0 {
		return ""
	}

	active := math.Abs(ctx.Progress-float64(ctx.ItemIndex)) < 0.5
	footer := cardFooterStyle.Render(fmt.Sprintf("%d / %d", ctx.ItemIndex+1, ctx.ItemCount))

	// Too small for a border
	if width < 6 || height < 4 {
		return strings.Repeat(FitCellContent(ctx.Item.Title, width)+"\n", height-1) + FitToWidth(footer, width)
	}

	style, titleStyle := cardStyle, cardTitleStyle
	if active {
		style, titleStyle = activeCardStyle, activeCardTitleStyle
	}

	inner := width - 4 // border and padding
	bodyRows := height - 2 - 3
	body := lipgloss.NewStyle().Width(inner).Render(ctx.Item.Body)
	bodyLines := strings.Split(body, "\n")
	if len(bodyLines) > bodyRows {
		bodyLines = bodyLines[:max(bodyRows, 0)]
	}
	for len(bodyLines) < bodyRows {
		bodyLines = append(bodyLines, "")
	}

	content := []string{FitCellContent(titleStyle.Render(ctx.Item.Title), inner), ""}
	content = append(content, bodyLines...)
	content = append(content, lipgloss.PlaceHorizontal(inner, lipgloss.Right, footer))

	return style.
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(content, "\n"))
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	view := strings.Join([]string{
		m.renderHeader(),
		m.renderStrip(),
		m.renderPager(),
		m.renderStatusBar(),
	}, "\n")

	if m.modal != modalNone {
		view = m.renderModal(view)
	}
	return view
}

func (m Model) renderHeader() string {
	left := headerStyle.Render("sideswipe") + deckTitleStyle.Render(m.deck.Title)
	right := positionStyle.Render(fmt.Sprintf("%d/%d", m.carousel.Index()+1, m.carousel.Len()))
	if m.cfg.Debug {
		right = positionStyle.Render(m.carousel.Phase().String()) + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return FitToWidth(left, m.width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderStrip composes the cards that intersect the viewport at the strip's
// current scroll column
func (m Model) renderStrip() string {
	height := m.stripHeight()
	rows := make([]strings.Builder, height)

	g := m.carousel.Geometry()
	width := int(g.ItemWidth)
	contentOffset := int(g.ContentOffset)
	scroll := m.host.Column()

	written := 0
	if width > 0 {
		first := max(int(math.Floor(float64(scroll-contentOffset)/float64(width))), 0)
		for i := first; i < m.carousel.Len(); i++ {
			start := contentOffset + width*i - scroll
			if start >= m.width {
				break
			}

			skip := max(-start, 0)
			visible := min(width-skip, m.width-max(start, 0))
			if visible <= 0 {
				continue
			}

			gap := max(start, 0) - written
			card := strings.Split(m.carousel.RenderItem(i), "\n")
			for r := range rows {
				line := ""
				if r < len(card) {
					line = card[r]
				}
				rows[r].WriteString(strings.Repeat(" ", gap))
				rows[r].WriteString(CutColumns(line, skip, visible))
			}
			written = max(start, 0) + visible
		}
	}

	lines := make([]string, height)
	for r := range rows {
		lines[r] = FitToWidth(rows[r].String(), m.width)
	}
	return strings.Join(lines, "\n")
}

// renderPager draws one dot per item, or a counter when they don't fit
func (m Model) renderPager() string {
	count := m.carousel.Len()
	current := min(max(int(math.Round(m.carousel.Progress())), 0), count-1)

	var pager string
	if count*2 > m.width {
		pager = activeDotStyle.Render(fmt.Sprintf("%d", current+1)) + dotStyle.Render(fmt.Sprintf(" of %d", count))
	} else {
		dots := make([]string, count)
		for i := range dots {
			if i == current {
				dots[i] = activeDotStyle.Render("●")
			} else {
				dots[i] = dotStyle.Render("○")
			}
		}
		pager = strings.Join(dots, " ")
	}

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, pager)
}

func (m Model) renderStatusBar() string {
	var content string

	// Show message instead of shortcuts when there's an active message
	if m.message != "" && m.now().Sub(m.messageTime) < messageTimeout {
		var styledMessage string
		if m.isError {
			styledMessage = errorStyle.Render(m.message)
		} else {
			styledMessage = successStyle.Render(m.message)
		}
		gap := max(m.width-lipgloss.Width(styledMessage)-2, 0)
		content = " " + styledMessage + strings.Repeat(" ", gap) + " "
	} else {
		parts := []string{
			m.renderKey("←→", "page"),
			m.renderKey("g/G", "first/last"),
			m.renderKey(":", "go to"),
			m.renderKey("+/-", "width"),
			m.renderKey("c", "copy"),
			m.renderKey("?", "help"),
			m.renderKey("q", "quit"),
		}
		leftSide := strings.Join(parts, " ")
		gap := max(m.width-lipgloss.Width(leftSide)-2, 0)
		content = " " + leftSide + strings.Repeat(" ", gap) + " "
	}

	return statusBarStyle.Render(FitToWidth(content, m.width))
}

func (m Model) renderKey(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}

func (m Model) renderModal(background string) string {
	var content string

	switch m.modal {
	case modalGoto:
		content = m.renderGotoModal()
	case modalHelp:
		content = m.renderHelpModal()
	}

	modalWidth := lipgloss.Width(content)
	modalHeight := lipgloss.Height(content)
	x := (m.width - modalWidth) / 2
	y := (m.height - modalHeight) / 2

	return placeOverlay(x, y, content, background)
}

// placeOverlay places the foreground string on top of the background string
// at position (x, y). Characters from fg replace characters in bg.
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	x = max(x, 0)

	for i, fgLine := range fgLines {
		bgY := y + i
		if bgY < 0 || bgY >= len(bgLines) {
			continue
		}

		bgLine := bgLines[bgY]
		bgWidth := ansi.StringWidth(bgLine)
		fgWidth := ansi.StringWidth(fgLine)

		var line strings.Builder
		line.WriteString(FitToWidth(ansi.Cut(bgLine, 0, x), x))
		line.WriteString(fgLine)
		if right := x + fgWidth; right < bgWidth {
			line.WriteString(ansi.Cut(bgLine, right, bgWidth))
		}
		bgLines[bgY] = line.String()
	}

	return strings.Join(bgLines, "\n")
}

func (m Model) renderGotoModal() string {
	title := dialogTitleStyle.Render(fmt.Sprintf("Go to item (1-%d)", m.carousel.Len()))
	input := m.textInput.View()
	help := helpDescStyle.Render("enter: go • esc: cancel")

	return dialogStyle.Render(title + "\n\n" + input + "\n\n" + help)
}

func (m Model) renderHelpModal() string {
	title := dialogTitleStyle.Render("Keyboard Shortcuts")
	mouse := m.renderKey("drag", "swipe pages") + "\n" + m.renderKey("wheel", "previous/next")
	footer := helpDescStyle.Render("press esc or ? to close")

	content := title + "\n\n" + m.help.View(keys) + "\n\n" + mouse + "\n\n" + footer
	return dialogStyle.Render(content)
}
