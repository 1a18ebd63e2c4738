package tui

import (
	"github.com/charmbracelet/lipgloss"

	"postdeck/internal/errors"
)

const (
	cardWidth      = 30
	excerptLength  = 80
	maxGridColumns = 3
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(cardWidth)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("62"))

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	cardCaptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	pagerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	pagerCurrentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyles = map[errors.MessageType]lipgloss.Style{
		errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)
