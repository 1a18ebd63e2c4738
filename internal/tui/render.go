package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"postdeck/internal/domain"
	"postdeck/internal/errors"
)

// CardState defines the inputs needed to render a single post card.
type CardState struct {
	Post     domain.Post
	Selected bool
}

// GridState defines the inputs needed to render the card grid.
type GridState struct {
	Posts    []domain.Post
	Selected int
	Width    int
}

// PagerState defines the inputs needed to render the page-selector row.
type PagerState struct {
	Numbers     []int
	Current     int
	HasPrevious bool
	HasNext     bool
	TotalItems  int
}

// StatusState defines the inputs needed to render the status line.
type StatusState struct {
	Message string
	Type    errors.MessageType
}

// Header renders the title bar.
func Header(width int) string {
	title := headerStyle.Render("postdeck")
	if width <= lipgloss.Width(title) {
		return title
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, title)
}

// Card renders one post as a bordered card with title, excerpt, and the
// image reference as a caption line.
func Card(state CardState) string {
	style := cardStyle
	if state.Selected {
		style = selectedCardStyle
	}

	innerWidth := cardWidth - style.GetHorizontalFrameSize()

	title := cardTitleStyle.Render(truncate(state.Post.Title, innerWidth))
	body := state.Post.Excerpt(excerptLength)
	caption := cardCaptionStyle.Render(truncate(state.Post.ImageURL, innerWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, caption)
	return style.Render(content)
}

// Grid lays the page's cards out in rows, degrading to fewer columns on
// narrow terminals.
func Grid(state GridState) string {
	if len(state.Posts) == 0 {
		return emptyStyle.Render("No posts to show")
	}

	columns := gridColumns(state.Width)

	var rows []string
	for start := 0; start < len(state.Posts); start += columns {
		end := start + columns
		if end > len(state.Posts) {
			end = len(state.Posts)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, Card(CardState{
				Post:     state.Posts[i],
				Selected: i == state.Selected,
			}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Pager renders the page selector, e.g. "‹ 1 [2] 3 ›  17 posts".
func Pager(state PagerState) string {
	var b strings.Builder

	if state.HasPrevious {
		b.WriteString(pagerStyle.Render("‹"))
	} else {
		b.WriteString(pagerStyle.Render(" "))
	}

	for _, n := range state.Numbers {
		b.WriteString(" ")
		if n == state.Current {
			b.WriteString(pagerCurrentStyle.Render(fmt.Sprintf("[%d]", n)))
		} else {
			b.WriteString(pagerStyle.Render(fmt.Sprintf("%d", n)))
		}
	}

	b.WriteString(" ")
	if state.HasNext {
		b.WriteString(pagerStyle.Render("›"))
	} else {
		b.WriteString(pagerStyle.Render(" "))
	}

	noun := "posts"
	if state.TotalItems == 1 {
		noun = "post"
	}
	b.WriteString(pagerStyle.Render(fmt.Sprintf("  %d %s", state.TotalItems, noun)))

	return b.String()
}

// Status renders the transient status line.
func Status(state StatusState) string {
	if state.Message == "" {
		return ""
	}
	style, ok := statusStyles[state.Type]
	if !ok {
		style = statusStyles[errors.MessageTypeInfo]
	}
	return style.Render(state.Message)
}

// gridColumns picks how many cards fit side by side.
func gridColumns(width int) int {
	if width <= 0 {
		width = defaultViewportWidth
	}
	columns := width / cardWidth
	if columns < 1 {
		return 1
	}
	if columns > maxGridColumns {
		return maxGridColumns
	}
	return columns
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
