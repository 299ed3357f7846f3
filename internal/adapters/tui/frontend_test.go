package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mum/internal/adapters/tui"
	"go.trai.ch/mum/internal/core/domain"
)

func TestFrontend_RunUntilBye(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	var seen []string
	frontend := tui.NewFrontend("mum> ",
		tea.WithInput(strings.NewReader("Bye\r")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)

	err := frontend.Run(ctx, func(_ context.Context, line string) domain.Response {
		seen = append(seen, line)
		return domain.Response{Text: "Bye."}
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bye"}, seen)
}

func TestFrontend_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	frontend := tui.NewFrontend("mum> ",
		tea.WithInput(pr),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)

	err := frontend.Run(ctx, func(context.Context, string) domain.Response {
		return domain.Response{Continue: true}
	})
	assert.ErrorIs(t, err, context.Canceled)
}
