// Package pager implements page arithmetic and the page-number button window
// for the emoji list.
package pager

import "strconv"

// DefaultPageSize is the number of cards per page
const DefaultPageSize = 10

const (
	// MaxNumbered is the maximum number of numbered buttons in the window.
	MaxNumbered = 10
	// windowBefore pages are shown before the current one, the rest after it.
	windowBefore = 4
)

// NormalizeSize returns size, or DefaultPageSize when size < 1.
func NormalizeSize(size int) int {
	if size < 1 {
		return DefaultPageSize
	}
	return size
}

// TotalPages returns ceil(n/size); 0 records yield 0 pages.
func TotalPages(n, size int) int {
	size = NormalizeSize(size)
	if n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Slice returns the items of the given 1-based page. The range clamps at the
// end of items; a page past the end yields an empty slice.
func Slice[T any](items []T, page, size int) []T {
	size = NormalizeSize(size)
	if page < 1 {
		return items[:0]
	}
	start := (page - 1) * size
	if start >= len(items) {
		return items[len(items):]
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Previous returns page-1, floored at 1.
func Previous(page int) int {
	if page <= 1 {
		return 1
	}
	return page - 1
}

// Next returns page+1 when page < total, otherwise page unchanged.
func Next(page, total int) int {
	if page < total {
		return page + 1
	}
	return page
}

// ButtonKind distinguishes clickable page numbers from ellipsis markers
type ButtonKind int

const (
	NumberButton ButtonKind = iota
	EllipsisButton
)

// Button is one entry of the pagination row between Previous and Next.
type Button struct {
	Kind   ButtonKind
	Page   int
	Active bool
}

// Label returns the text shown for the button
func (b Button) Label() string {
	if b.Kind == EllipsisButton {
		return "..."
	}
	return strconv.Itoa(b.Page)
}

// Window returns the numbered-button row for current out of total pages.
// Pages current-4 .. current+5 are listed, clipped to [1, total]. When the
// window does not reach page 1 an ellipsis and page 1 come first; when it does
// not reach the last page an ellipsis and the last page come last.
func Window(current, total int) []Button {
	if total <= 0 {
		return nil
	}

	start := current - windowBefore
	end := start + MaxNumbered - 1
	if start < 1 {
		start = 1
	}
	if end > total {
		end = total
	}

	buttons := make([]Button, 0, MaxNumbered+4)
	if start > 1 {
		buttons = append(buttons,
			Button{Kind: EllipsisButton},
			Button{Kind: NumberButton, Page: 1, Active: current == 1},
		)
	}
	for p := start; p <= end; p++ {
		buttons = append(buttons, Button{Kind: NumberButton, Page: p, Active: p == current})
	}
	if end < total {
		buttons = append(buttons,
			Button{Kind: EllipsisButton},
			Button{Kind: NumberButton, Page: total, Active: current == total},
		)
	}
	return buttons
}
