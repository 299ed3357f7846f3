package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/core/ports"
)

// Frontend runs a chat Model as a ports.Frontend.
type Frontend struct {
	prompt  string
	options []tea.ProgramOption
}

// NewFrontend creates a chat frontend. Extra program options are applied after
// the defaults, which lets tests replace input and output.
func NewFrontend(prompt string, opts ...tea.ProgramOption) *Frontend {
	return &Frontend{prompt: prompt, options: opts}
}

// Run blocks until the user quits, a response ends the session or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, handle ports.Handler) error {
	model := NewModel(func(line string) domain.Response {
		return handle(ctx, line)
	}, f.prompt)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, f.options...)
	program := tea.NewProgram(model, opts...)

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
