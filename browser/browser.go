// Package browser holds the emoji browser view state and its transitions.
//
// State is a value type. Every transition returns a new State and leaves the
// receiver untouched, so the bubbletea model and the CLI can share it.
package browser

import (
	"fmt"
	"strings"

	"github.com/qyinm/emojitui/catalog"
	"github.com/qyinm/emojitui/pager"
	"github.com/qyinm/emojitui/types"
)

// WindowSource selects which record count drives the page-number row
type WindowSource int

const (
	// WindowUnfiltered computes the page-number row from all fetched records,
	// even when a category filter is active.
	WindowUnfiltered WindowSource = iota
	// WindowFiltered computes it from the filtered records.
	WindowFiltered
)

// String returns the config representation of the window source
func (w WindowSource) String() string {
	switch w {
	case WindowUnfiltered:
		return "unfiltered"
	case WindowFiltered:
		return "filtered"
	default:
		return "unknown"
	}
}

// ParseWindowSource parses "unfiltered" or "filtered". Empty means unfiltered.
func ParseWindowSource(raw string) (WindowSource, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "", "unfiltered":
		return WindowUnfiltered, nil
	case "filtered":
		return WindowFiltered, nil
	default:
		return WindowUnfiltered, fmt.Errorf("invalid window source %q; expected unfiltered|filtered", raw)
	}
}

// Options configures a State
type Options struct {
	PageSize     int
	WindowSource WindowSource
}

// State is the browser view state
type State struct {
	opts       Options
	records    []types.Emoji
	categories []string
	selected   string
	page       int
}

// New creates an empty State on page 1
func New(opts Options) State {
	opts.PageSize = pager.NormalizeSize(opts.PageSize)
	return State{
		opts:       opts,
		records:    []types.Emoji{},
		categories: []string{},
		page:       1,
	}
}

// Load stores the fetched records and derives the categories.
func (s State) Load(records []types.Emoji) State {
	if records == nil {
		records = []types.Emoji{}
	}
	s.records = records
	s.categories = catalog.Categories(records)
	return s
}

// SelectCategory sets the filter and goes back to page 1.
// An empty category removes the filter.
func (s State) SelectCategory(category string) State {
	s.selected = category
	s.page = 1
	return s
}

// PreviousPage moves back one page, stopping at page 1.
func (s State) PreviousPage() State {
	s.page = pager.Previous(s.page)
	return s
}

// NextPage moves forward one page, stopping at the last page of the
// current filter.
func (s State) NextPage() State {
	s.page = pager.Next(s.page, s.TotalPages())
	return s
}

// GoToPage jumps straight to page, as a page-number button does.
// Pages below 1 are ignored.
func (s State) GoToPage(page int) State {
	if page < 1 {
		return s
	}
	s.page = page
	return s
}

func (s State) Options() Options           { return s.opts }
func (s State) Records() []types.Emoji     { return s.records }
func (s State) Categories() []string       { return s.categories }
func (s State) SelectedCategory() string   { return s.selected }
func (s State) CurrentPage() int           { return s.page }
func (s State) Filtered() []types.Emoji    { return catalog.Filter(s.records, s.selected) }
func (s State) FilteredCount() int         { return catalog.Count(s.records, s.selected) }
func (s State) PageSize() int              { return s.opts.PageSize }
func (s State) WindowSource() WindowSource { return s.opts.WindowSource }

// Visible returns the records of the current page.
func (s State) Visible() []types.Emoji {
	return pager.Slice(s.Filtered(), s.page, s.opts.PageSize)
}

// TotalPages returns the page count of the filtered records.
func (s State) TotalPages() int {
	return pager.TotalPages(s.FilteredCount(), s.opts.PageSize)
}

// WindowTotal returns the page count used for the page-number row.
func (s State) WindowTotal() int {
	if s.opts.WindowSource == WindowFiltered {
		return s.TotalPages()
	}
	return pager.TotalPages(len(s.records), s.opts.PageSize)
}

// Buttons returns the page-number row for the current page.
func (s State) Buttons() []pager.Button {
	return pager.Window(s.page, s.WindowTotal())
}
