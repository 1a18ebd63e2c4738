package tui

import (
	"strings"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		m.width = defaultViewportWidth
	}
	if m.height == 0 {
		m.height = defaultViewportHeight
	}

	var s strings.Builder

	s.WriteString(Header(m.width))
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString(m.spinner.View())
		s.WriteString(" fetching posts...")
		s.WriteString("\n")
		return s.String()
	}

	page := m.store.View()

	s.WriteString(Grid(GridState{
		Posts:    page.Items,
		Selected: m.selected,
		Width:    m.width,
	}))
	s.WriteString("\n")

	s.WriteString(Pager(PagerState{
		Numbers:     page.Numbers(),
		Current:     page.Number,
		HasPrevious: page.HasPrevious,
		HasNext:     page.HasNext,
		TotalItems:  page.TotalItems,
	}))
	s.WriteString("\n")

	if m.hasStatusMessage {
		s.WriteString(Status(StatusState{
			Message: m.statusMessage,
			Type:    m.statusMessageType,
		}))
		s.WriteString("\n")
	}

	s.WriteString(m.help.View(m.keys))

	return s.String()
}
