package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input for the browse view.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.handleQuit()
	}

	// While the feed is loading, quit is the only available action.
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		return m.handleDelete()
	case key.Matches(msg, m.keys.PrevPage):
		m.store.PrevPage()
		m.selected = 0
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		m.store.NextPage()
		m.selected = 0
		return m, nil
	case key.Matches(msg, m.keys.MoveNext):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, m.keys.MovePrev):
		m.moveSelection(-1)
		return m, nil
	}

	// Digit keys select a page directly; out-of-range digits clamp.
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 {
		m.store.GoToPage(n)
		m.selected = 0
		return m, nil
	}

	return m, nil
}

// handleQuit cancels any in-flight load and exits.
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancelLoad()
	return m, tea.Quit
}

// handleDelete removes the selected post and reports it on the status line.
func (m *Model) handleDelete() (tea.Model, tea.Cmd) {
	page := m.store.View()
	if len(page.Items) == 0 {
		return m, nil
	}

	post := page.Items[m.selected]
	m.store.Remove(post.ID)
	m.clampSelection()

	m.errorHandler.Success(fmt.Sprintf("post %d removed", post.ID))
	return m, clearStatusCmd(statusClearDuration)
}

// moveSelection shifts the card selection within the visible page.
func (m *Model) moveSelection(delta int) {
	page := m.store.View()
	if len(page.Items) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected > len(page.Items)-1 {
		m.selected = len(page.Items) - 1
	}
}
