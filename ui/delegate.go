package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/emojitui/glyph"
	"github.com/qyinm/emojitui/types"
)

// CategoryDelegate renders the options of the category selector
type CategoryDelegate struct {
	// Current is the value of the active filter, marked in the list
	Current string
}

// Height returns the height of a list item (1 line)
func (d CategoryDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between list items
func (d CategoryDelegate) Spacing() int {
	return 0
}

// Update handles updates for the delegate (no-op for categories)
func (d CategoryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single category option
func (d CategoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	option, ok := item.(types.CategoryOption)
	if !ok {
		return
	}

	label := truncate(glyph.PlainText(option.Label()), m.Width()-6)
	if option.Value() == d.Current {
		label += CurrentMarkStyle.Render(" ✓")
	}

	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render(label))
		return
	}
	fmt.Fprint(w, SelectorItemStyle.Render(label))
}

// truncate shortens s to at most width runes, ending with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
