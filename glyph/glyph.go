// Package glyph turns catalog markup into terminal-safe text.
//
// htmlCode from the API is untrusted. It is never written to the terminal as
// is: markup is stripped, entities are decoded and the result is only used
// when it consists of emoji alone.
package glyph

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/x/ansi"
	"github.com/forPelevin/gomoji"
	"github.com/kyokomi/emoji/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/qyinm/emojitui/types"
)

// Replacement is shown when no glyph can be derived for a record.
const Replacement = "□"

// Renderer resolves the glyph of an emoji record
type Renderer struct {
	policy *bluemonday.Policy
	codes  map[string]string
}

// NewRenderer creates a Renderer with a strict sanitizing policy.
func NewRenderer() *Renderer {
	return &Renderer{
		policy: bluemonday.StrictPolicy(),
		codes:  emoji.CodeMap(),
	}
}

// Render returns the glyph for e. It tries htmlCode, then the unicode code
// points, then a shortcode derived from the name, then Replacement.
func (r *Renderer) Render(e types.Emoji) string {
	if g, ok := r.FromHTML(e.HTMLCode()); ok {
		return g
	}
	if g, ok := FromUnicode(e.Unicode()); ok {
		return g
	}
	if g, ok := r.FromName(e.Name()); ok {
		return g
	}
	return Replacement
}

// FromHTML sanitizes code, decodes its entities and reports whether the
// resulting text is emoji only.
func (r *Renderer) FromHTML(code string) (string, bool) {
	if strings.TrimSpace(code) == "" {
		return "", false
	}
	sanitized := r.policy.Sanitize(code)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized))
	if err != nil {
		return "", false
	}
	text := strings.TrimSpace(doc.Text())
	if !emojiOnly(text) {
		return "", false
	}
	return text, true
}

// FromUnicode builds a glyph from code points written as "U+1F600".
// An entry may hold several space separated code points.
func FromUnicode(codes []string) (string, bool) {
	var b strings.Builder
	for _, entry := range codes {
		for _, cp := range strings.Fields(entry) {
			cp = strings.TrimPrefix(strings.ToUpper(cp), "U+")
			n, err := strconv.ParseUint(cp, 16, 32)
			if err != nil || n > unicode.MaxRune {
				return "", false
			}
			b.WriteRune(rune(n))
		}
	}
	text := b.String()
	if !emojiOnly(text) {
		return "", false
	}
	return text, true
}

// FromName looks up a shortcode made from the record name,
// e.g. "grinning face" -> ":grinning_face:".
func (r *Renderer) FromName(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	underscored := strings.ReplaceAll(name, " ", "_")
	candidates := []string{
		":" + underscored + ":",
		":" + strings.ReplaceAll(underscored, "-", "_") + ":",
	}
	for _, c := range candidates {
		if g, ok := r.codes[c]; ok {
			g = strings.TrimSpace(g)
			if emojiOnly(g) {
				return g, true
			}
		}
	}
	return "", false
}

// PlainText strips ANSI escape sequences and control characters so API text
// cannot drive the terminal.
func PlainText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// emojiOnly reports whether s contains at least one emoji and nothing else
// besides joiners, variation selectors and spaces.
func emojiOnly(s string) bool {
	if s == "" || len(gomoji.FindAll(s)) == 0 {
		return false
	}
	rest := strings.Map(func(r rune) rune {
		switch {
		case r == '\u200d', r == '\ufe0f', r == '\ufe0e', r == '\u20e3':
			return -1
		case r >= 0x1f3fb && r <= 0x1f3ff: // skin tone modifiers
			return -1
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, gomoji.RemoveEmojis(s))
	return rest == ""
}
