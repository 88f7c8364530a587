package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/emojitui/glyph"
	"github.com/qyinm/emojitui/pager"
	"github.com/qyinm/emojitui/types"
)

const (
	appTitle  = "Emoji Hub"
	cardWidth = 30
)

// View renders the current view
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n\n")

	switch m.mode {
	case SelectMode:
		b.WriteString(m.selector.View())
	default:
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	b.WriteString(m.paginationBar())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) filterLine() string {
	current := types.AllCategoriesLabel
	if c := m.state.SelectedCategory(); c != "" {
		current = glyph.PlainText(c)
	}
	return " " + FilterLabelStyle.Render("Filter by Category:") + " " +
		FilterValueStyle.Render(current+" ▾")
}

// paginationBar renders Previous, the page-number row and Next
func (m Model) paginationBar() string {
	page := m.state.CurrentPage()

	prev := NavButtonStyle.Render("‹ Previous")
	if page <= 1 {
		prev = NavButtonDimStyle.Render("‹ Previous")
	}
	next := NavButtonStyle.Render("Next ›")
	if page >= m.state.TotalPages() {
		next = NavButtonDimStyle.Render("Next ›")
	}

	parts := []string{prev}
	numbered := 0
	for _, btn := range m.state.Buttons() {
		if btn.Kind == pager.EllipsisButton {
			parts = append(parts, PageEllipsisStyle.Render(btn.Label()))
			continue
		}
		style := PageButtonStyle
		switch {
		case numbered == m.focus:
			style = PageButtonFocusStyle
		case btn.Active:
			style = PageButtonActiveStyle
		}
		parts = append(parts, style.Render(btn.Label()))
		numbered++
	}
	parts = append(parts, next)

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) statusLine() string {
	if m.loading {
		return " " + m.spinner.View() + StatusBarStyle.Render(" Loading emojis…")
	}
	total := m.state.TotalPages()
	page := m.state.CurrentPage()
	if total == 0 {
		return StatusBarStyle.Render(" No emojis")
	}
	return StatusBarStyle.Render(fmt.Sprintf(" Page %d of %d · %d emojis", page, total, m.state.FilteredCount()))
}

// renderCards lays the cards out in rows that fit width
func renderCards(glyphs *glyph.Renderer, emojis []types.Emoji, width int) string {
	if len(emojis) == 0 {
		return EmptyStyle.Render("No emojis to show.")
	}

	perRow := 1
	if w := cardWidth + CardStyle.GetHorizontalFrameSize(); width > w {
		perRow = width / w
	}

	cards := make([]string, 0, len(emojis))
	for _, e := range emojis {
		cards = append(cards, renderCard(glyphs, e))
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one emoji: the glyph, then name, category and group
func renderCard(glyphs *glyph.Renderer, e types.Emoji) string {
	field := func(label, value string) string {
		return CardLabelStyle.Render(label+": ") +
			CardValueStyle.Render(truncate(glyph.PlainText(value), cardWidth-len(label)-2))
	}
	body := strings.Join([]string{
		GlyphStyle.Render(glyphs.Render(e)),
		field("Name", e.Name()),
		field("Category", e.Category()),
		field("Group", e.Group()),
	}, "\n")
	return CardStyle.Width(cardWidth).Render(body)
}
