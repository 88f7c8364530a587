package types

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
)

// Emoji represents one EmojiHub catalog entry
type Emoji struct {
	id       string
	name     string
	category string
	group    string
	htmlCode string
	unicode  []string
}

// NewEmoji creates a new Emoji with the given fields
func NewEmoji(id, name, category, group, htmlCode string, unicode []string) Emoji {
	return Emoji{
		id:       id,
		name:     name,
		category: category,
		group:    group,
		htmlCode: htmlCode,
		unicode:  unicode,
	}
}

// Getters for Emoji fields
func (e Emoji) ID() string        { return e.id }
func (e Emoji) Name() string      { return e.name }
func (e Emoji) Category() string  { return e.category }
func (e Emoji) Group() string     { return e.group }
func (e Emoji) HTMLCode() string  { return e.htmlCode }
func (e Emoji) Unicode() []string { return e.unicode }

// CategoryOption is one entry of the category selector.
// The zero Value stands for "All".
type CategoryOption struct {
	label string
	value string
}

// AllCategoriesLabel is shown for the unfiltered option.
const AllCategoriesLabel = "All"

// NewCategoryOption creates a selector option for a category value
func NewCategoryOption(value string) CategoryOption {
	if value == "" {
		return CategoryOption{label: AllCategoriesLabel}
	}
	return CategoryOption{label: value, value: value}
}

// CategoryOptions returns "All" followed by one option per category, in order.
func CategoryOptions(categories []string) []CategoryOption {
	out := make([]CategoryOption, 0, len(categories)+1)
	out = append(out, NewCategoryOption(""))
	for _, c := range categories {
		out = append(out, NewCategoryOption(c))
	}
	return out
}

func (c CategoryOption) Label() string { return c.label }
func (c CategoryOption) Value() string { return c.value }

// list.Item interface implementation
func (c CategoryOption) Title() string       { return c.label }
func (c CategoryOption) Description() string { return "" }
func (c CategoryOption) FilterValue() string { return c.label }

// Compile-time check that CategoryOption implements list.Item
var _ list.Item = CategoryOption{}

// EmojiSource is the data access abstraction for the catalog.
// FetchEmojis returns the whole catalog in one call.
type EmojiSource interface {
	FetchEmojis(ctx context.Context) ([]Emoji, error)
}
