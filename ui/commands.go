package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/emojitui/types"
)

// Message types for async operations

type emojisMsg struct {
	requestID int
	emojis    []types.Emoji
	err       error
}

// fetchEmojis returns a tea.Cmd that loads the catalog asynchronously.
// The command honours ctx so tearing the model down aborts the request.
func fetchEmojis(ctx context.Context, source types.EmojiSource, requestID int) tea.Cmd {
	return func() tea.Msg {
		emojis, err := source.FetchEmojis(ctx)
		if err == nil {
			err = ctx.Err()
		}
		return emojisMsg{requestID: requestID, emojis: emojis, err: err}
	}
}
