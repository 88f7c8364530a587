// Package emojihub fetches the emoji catalog from the EmojiHub API.
package emojihub

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/qyinm/emojitui/types"
)

// ErrMalformedCatalog is returned when the body is not a JSON array of emojis.
var ErrMalformedCatalog = errors.New("malformed emoji catalog")

type emojiJSON struct {
	ID       flexString `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Group    string     `json:"group"`
	HTMLCode stringList `json:"htmlCode"`
	Unicode  stringList `json:"unicode"`
}

// ParseEmojis decodes a JSON array of emoji records.
// htmlCode and unicode may each be a string or an array of strings; id may be
// a string or a number. Missing fields are left empty.
func ParseEmojis(reader io.Reader) ([]types.Emoji, error) {
	var raw []emojiJSON
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected array, got null", ErrMalformedCatalog)
	}

	emojis := make([]types.Emoji, 0, len(raw))
	for _, r := range raw {
		emojis = append(emojis, types.NewEmoji(
			string(r.ID),
			r.Name,
			r.Category,
			r.Group,
			strings.Join(r.HTMLCode, ""),
			[]string(r.Unicode),
		))
	}
	return emojis, nil
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// stringList accepts a JSON string or an array of strings.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = stringList{s}
	return nil
}
