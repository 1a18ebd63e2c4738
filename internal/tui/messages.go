// Package tui renders the post deck with bubbletea.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"postdeck/internal/domain"
	"postdeck/internal/feed"
)

// postsLoadedMsg delivers the fetched collection to the model.
type postsLoadedMsg struct {
	posts []domain.Post
}

// loadCanceledMsg is sent when the load context was canceled before the
// feed resolved. The result, if any, is discarded.
type loadCanceledMsg struct{}

// statusClearMsg clears the transient status line.
type statusClearMsg struct{}

// loadPostsCmd runs the loader and converts its outcome into a message.
func loadPostsCmd(ctx context.Context, loader *feed.Loader) tea.Cmd {
	return func() tea.Msg {
		posts, err := loader.Load(ctx)
		if err != nil {
			return loadCanceledMsg{}
		}
		return postsLoadedMsg{posts: posts}
	}
}

// clearStatusCmd schedules the status line to clear.
func clearStatusCmd(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
