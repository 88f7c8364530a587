package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/emojitui/browser"
	"github.com/qyinm/emojitui/glyph"
	"github.com/qyinm/emojitui/logging"
	"github.com/qyinm/emojitui/pager"
	"github.com/qyinm/emojitui/types"
	"github.com/rs/zerolog"
)

// Mode represents the current interaction mode
type Mode int

const (
	BrowseMode Mode = iota
	SelectMode
)

// Model is the main TUI model
type Model struct {
	ctx       context.Context
	cancel    context.CancelFunc
	source    types.EmojiSource
	glyphs    *glyph.Renderer
	logger    zerolog.Logger
	state     browser.State
	selector  list.Model
	viewport  viewport.Model
	spinner   spinner.Model
	help      help.Model
	keys      keyMap
	mode      Mode
	focus     int
	width     int
	height    int
	loading   bool
	requestID int
}

// NewModel creates a new Model reading from source. The catalog is fetched
// once, when the program calls Init; cancelling parent (or calling Close)
// aborts a pending fetch and makes the model ignore its result.
func NewModel(parent context.Context, source types.EmojiSource, opts browser.Options) Model {
	ctx, cancel := context.WithCancel(parent)

	sel := list.New([]list.Item{}, CategoryDelegate{}, 0, 0)
	sel.Title = "Filter by Category"
	sel.SetShowHelp(false)
	sel.SetShowStatusBar(false)
	sel.SetFilteringEnabled(false)
	sel.Styles.Title = TitleStyle

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		cancel:    cancel,
		source:    source,
		glyphs:    glyph.NewRenderer(),
		logger:    logging.Component("ui"),
		state:     browser.New(opts),
		selector:  sel,
		viewport:  viewport.New(0, 0),
		spinner:   s,
		help:      help.New(),
		keys:      keys,
		mode:      BrowseMode,
		focus:     -1,
		loading:   true,
		requestID: 1,
	}
	m.refreshSelector()
	m.refreshCards()
	return m
}

// Init starts the one-time catalog load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchEmojis(m.ctx, m.source, m.requestID))
}

// Close cancels the pending load, if any
func (m Model) Close() {
	m.cancel()
}

// State returns the current view state
func (m Model) State() browser.State { return m.state }

// Mode returns the current interaction mode
func (m Model) Mode() Mode { return m.mode }

// Loading reports whether the initial load is still pending
func (m Model) Loading() bool { return m.loading }

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case emojisMsg:
		return m.handleLoaded(msg), nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		m.refreshCards()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.Close()
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			m.resizePanes()
			return m, nil
		}
		if m.mode == SelectMode {
			return m.updateSelect(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) handleLoaded(msg emojisMsg) Model {
	// Late or stale results are dropped once the model is torn down
	if msg.requestID != m.requestID || m.ctx.Err() != nil {
		return m
	}
	m.loading = false
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Msg("Failed to load emoji catalog")
		return m
	}

	m.state = m.state.Load(msg.emojis)
	m.logger.Info().
		Int("count", len(m.state.Records())).
		Int("categories", len(m.state.Categories())).
		Msg("Emoji catalog loaded")
	m.refreshSelector()
	m.refreshCards()
	return m
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevPage):
		m.apply(m.state.PreviousPage())
	case key.Matches(msg, m.keys.NextPage):
		m.apply(m.state.NextPage())
	case key.Matches(msg, m.keys.NextFocus):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		m.activateFocused()
	case key.Matches(msg, m.keys.Category):
		m.mode = SelectMode
		m.refreshSelector()
	case key.Matches(msg, m.keys.NextCat):
		m.cycleCategory(1)
	case key.Matches(msg, m.keys.PrevCat):
		m.cycleCategory(-1)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = BrowseMode
		return m, nil
	case key.Matches(msg, m.keys.Activate):
		if option, ok := m.selector.SelectedItem().(types.CategoryOption); ok {
			m.selectCategory(option.Value())
		}
		m.mode = BrowseMode
		return m, nil
	}

	var cmd tea.Cmd
	m.selector, cmd = m.selector.Update(msg)
	return m, cmd
}

// apply replaces the view state after a page transition
func (m *Model) apply(next browser.State) {
	m.state = next
	m.focus = -1
	m.refreshCards()
}

func (m *Model) selectCategory(category string) {
	m.logger.Debug().Str("category", category).Msg("Category selected")
	m.apply(m.state.SelectCategory(category))
	m.refreshSelector()
}

// cycleCategory moves the filter to the next or previous selector option
func (m *Model) cycleCategory(delta int) {
	options := types.CategoryOptions(m.state.Categories())
	current := 0
	for i, o := range options {
		if o.Value() == m.state.SelectedCategory() {
			current = i
			break
		}
	}
	next := (current + delta + len(options)) % len(options)
	m.selectCategory(options[next].Value())
}

// numberButtons returns the clickable page buttons of the pagination row
func (m Model) numberButtons() []pager.Button {
	var out []pager.Button
	for _, b := range m.state.Buttons() {
		if b.Kind == pager.NumberButton {
			out = append(out, b)
		}
	}
	return out
}

func (m *Model) moveFocus(delta int) {
	buttons := m.numberButtons()
	if len(buttons) == 0 {
		m.focus = -1
		return
	}
	switch {
	case m.focus < 0 && delta > 0:
		m.focus = 0
	case m.focus < 0:
		m.focus = len(buttons) - 1
	default:
		m.focus = (m.focus + delta + len(buttons)) % len(buttons)
	}
}

// activateFocused behaves like clicking the focused page-number button
func (m *Model) activateFocused() {
	buttons := m.numberButtons()
	if m.focus < 0 || m.focus >= len(buttons) {
		return
	}
	m.apply(m.state.GoToPage(buttons[m.focus].Page))
	for i, b := range m.numberButtons() {
		if b.Active {
			m.focus = i
			break
		}
	}
}

// refreshSelector rebuilds the category selector items
func (m *Model) refreshSelector() {
	options := types.CategoryOptions(m.state.Categories())
	items := make([]list.Item, 0, len(options))
	selected := 0
	for i, o := range options {
		items = append(items, o)
		if o.Value() == m.state.SelectedCategory() {
			selected = i
		}
	}
	m.selector.SetItems(items)
	m.selector.SetDelegate(CategoryDelegate{Current: m.state.SelectedCategory()})
	m.selector.Select(selected)
}

// refreshCards renders the current page into the viewport
func (m *Model) refreshCards() {
	m.viewport.SetContent(renderCards(m.glyphs, m.state.Visible(), m.width))
	m.viewport.GotoTop()
}

// resizePanes adjusts the dimensions of the selector and viewport
func (m *Model) resizePanes() {
	headerHeight := 3
	footerHeight := 2 + lipgloss.Height(m.help.View(m.keys))
	availableHeight := m.height - headerHeight - footerHeight

	if availableHeight < 1 {
		availableHeight = 1
	}

	m.help.Width = m.width
	m.selector.SetSize(m.width, availableHeight)
	m.viewport.Width = m.width
	m.viewport.Height = availableHeight
}
