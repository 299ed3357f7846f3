package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/mum/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	userTextStyle = lipgloss.NewStyle().
			Foreground(style.White)

	replyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate).
			Padding(0, 1)

	failedReplyStyle = replyStyle.
				BorderForeground(style.Red).
				Foreground(style.Red)

	promptStyle = lipgloss.NewStyle().
			Foreground(style.Iris)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
