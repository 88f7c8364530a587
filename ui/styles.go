package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaForeground = lipgloss.AdaptiveColor{Light: "0", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "6", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "8", Dark: "7"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)

	// Category selector line
	FilterLabelStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Bold(true)
	FilterValueStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Bold(true)

	// Emoji cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaPurple).
			Padding(0, 1).
			MarginRight(1)
	GlyphStyle = lipgloss.NewStyle().
			Bold(true)
	CardLabelStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	CardValueStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
	EmptyStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Italic(true).
			Padding(1, 1)

	// Pagination bar
	PageButtonStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan).
			Padding(0, 1)
	PageButtonActiveStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true).
				Underline(true).
				Padding(0, 1)
	PageButtonFocusStyle = lipgloss.NewStyle().
				Foreground(DraculaGreen).
				Reverse(true).
				Padding(0, 1)
	PageEllipsisStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Padding(0, 1)
	NavButtonStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground).
			Padding(0, 1)
	NavButtonDimStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Faint(true).
				Padding(0, 1)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)

	// Category selector list
	SelectorItemStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				PaddingLeft(2)
	SelectedItemStyle = lipgloss.NewStyle().
				BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(DraculaPink).
				Foreground(DraculaPink).
				Bold(true).
				PaddingLeft(1)
	CurrentMarkStyle = lipgloss.NewStyle().
				Foreground(DraculaGreen)
)
