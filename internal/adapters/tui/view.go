package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/mum/internal/ui/style"
)

// View renders the title, the conversation and the input line.
func (m *Model) View() string {
	if !m.Ready {
		return "\n  Starting..."
	}
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("mum"))
	b.WriteString("\n\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n\n")
	b.WriteString(m.Input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send " + style.Arrow + " pgup/pgdn scroll " + style.Arrow + " esc quit"))
	return b.String()
}

// renderConversation lays out every entry for the given width.
func renderConversation(entries []Entry, width int) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, renderEntry(e, width))
	}
	return strings.Join(blocks, "\n")
}

func renderEntry(e Entry, width int) string {
	if e.Speaker == SpeakerUser {
		return userLabelStyle.Render(style.Arrow+" you ") + userTextStyle.Render(e.Text)
	}

	s := replyStyle
	text := e.Text
	if e.Failed {
		s = failedReplyStyle
		text = style.Cross + " " + text
	}

	// Border and padding take four columns.
	if inner := width - 4; inner > 0 && lipgloss.Width(text) > inner {
		s = s.Width(inner)
	}
	return s.Render(text)
}
