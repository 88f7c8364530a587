package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Activate  key.Binding
	Category  key.Binding
	PrevCat   key.Binding
	NextCat   key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	PrevPage:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "previous")),
	NextPage:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "next")),
	NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus page")),
	PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus page")),
	Activate:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go to page")),
	Category:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
	PrevCat:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev category")),
	NextCat:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next category")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Category, k.NextFocus, k.Help, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.Up, k.Down},
		{k.NextFocus, k.PrevFocus, k.Activate},
		{k.Category, k.PrevCat, k.NextCat, k.Back},
		{k.Help, k.Quit},
	}
}
