package dto

import (
	"github.com/qyinm/emojitui/browser"
	"github.com/qyinm/emojitui/glyph"
	"github.com/qyinm/emojitui/pager"
	"github.com/qyinm/emojitui/types"
)

func FromEmoji(e types.Emoji, glyphs *glyph.Renderer) Emoji {
	return Emoji{
		ID:       e.ID(),
		Name:     e.Name(),
		Category: e.Category(),
		Group:    e.Group(),
		HTMLCode: e.HTMLCode(),
		Unicode:  append([]string(nil), e.Unicode()...),
		Glyph:    glyphs.Render(e),
	}
}

func FromEmojis(emojis []types.Emoji, glyphs *glyph.Renderer) []Emoji {
	out := make([]Emoji, 0, len(emojis))
	for _, e := range emojis {
		out = append(out, FromEmoji(e, glyphs))
	}
	return out
}

func FromButtons(buttons []pager.Button) []PageButton {
	out := make([]PageButton, 0, len(buttons))
	for _, b := range buttons {
		if b.Kind == pager.EllipsisButton {
			out = append(out, PageButton{Kind: "ellipsis"})
			continue
		}
		out = append(out, PageButton{Kind: "page", Page: b.Page, Active: b.Active})
	}
	return out
}

// FromState converts the current page of s.
func FromState(s browser.State, glyphs *glyph.Renderer) Page {
	return Page{
		Category:    s.SelectedCategory(),
		Categories:  append([]string{}, s.Categories()...),
		Page:        s.CurrentPage(),
		PageSize:    s.PageSize(),
		TotalPages:  s.TotalPages(),
		Total:       s.FilteredCount(),
		WindowPages: s.WindowTotal(),
		Buttons:     FromButtons(s.Buttons()),
		Items:       FromEmojis(s.Visible(), glyphs),
	}
}
