package glyph

import (
	"testing"

	"github.com/qyinm/emojitui/types"
)

func TestFromHTML(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name   string
		code   string
		want   string
		wantOK bool
	}{
		{"decimal entity", "&#128512;", "\U0001F600", true},
		{"hex entity", "&#x1F436;", "\U0001F436", true},
		{"zwj sequence", "&#128104;&#8205;&#128105;&#8205;&#128103;", "\U0001F468\u200d\U0001F469\u200d\U0001F467", true},
		{"script stripped", "<script>alert(1)</script>&#128512;", "\U0001F600", true},
		{"handler stripped", `<img src=x onerror="alert(1)">&#128054;`, "\U0001F436", true},
		{"wrapped in markup", "<b>&#128512;</b>", "\U0001F600", true},
		{"plain text", "hello", "", false},
		{"emoji with text", "&#128512; hi", "", false},
		{"empty", "", "", false},
		{"markup only", "<div></div>", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.FromHTML(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("FromHTML(%q) ok = %v, want %v (got %q)", tt.code, ok, tt.wantOK, got)
			}
			if got != tt.want {
				t.Errorf("FromHTML(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestFromUnicode(t *testing.T) {
	tests := []struct {
		name   string
		codes  []string
		want   string
		wantOK bool
	}{
		{"single", []string{"U+1F600"}, "\U0001F600", true},
		{"lower case", []string{"u+1f436"}, "\U0001F436", true},
		{"space separated", []string{"U+1F468 U+200D U+1F469"}, "\U0001F468\u200d\U0001F469", true},
		{"not hex", []string{"U+ZZZZ"}, "", false},
		{"letter", []string{"U+0041"}, "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromUnicode(tt.codes)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FromUnicode(%v) = %q, %v; want %q, %v", tt.codes, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRender_Fallbacks(t *testing.T) {
	r := NewRenderer()

	fromHTML := types.NewEmoji("1", "grinning face", "smileys", "face", "&#128512;", []string{"U+1F436"})
	if got := r.Render(fromHTML); got != "\U0001F600" {
		t.Errorf("htmlCode should win, got %q", got)
	}

	fromUnicode := types.NewEmoji("2", "grinning face", "smileys", "face", "<script>x</script>", []string{"U+1F600"})
	if got := r.Render(fromUnicode); got != "\U0001F600" {
		t.Errorf("expected unicode fallback, got %q", got)
	}

	fromName := types.NewEmoji("3", "dog", "animals", "mammal", "", nil)
	if got := r.Render(fromName); got == Replacement || got == "" {
		t.Errorf("expected shortcode fallback for %q, got %q", "dog", got)
	}

	nothing := types.NewEmoji("4", "no such emoji name", "misc", "", "not markup", nil)
	if got := r.Render(nothing); got != Replacement {
		t.Errorf("expected replacement glyph, got %q", got)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"grinning face", "grinning face"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"bell\x07", "bell"},
		{"line\nbreak", "linebreak"},
		{"\x1b]0;title\x07name", "name"},
	}
	for _, tt := range tests {
		if got := PlainText(tt.in); got != tt.want {
			t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
