package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mum/internal/core/domain"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		kind        domain.Kind
		description string
		when        string
		wantErr     error
	}{
		{name: "todo", kind: domain.KindTodo, description: "buy milk"},
		{name: "deadline", kind: domain.KindDeadline, description: "return book", when: "Sunday"},
		{name: "event", kind: domain.KindEvent, description: "party", when: "Mon 2pm"},
		{name: "empty description", kind: domain.KindTodo, description: "  ", wantErr: domain.ErrEmptyDescription},
		{name: "todo with when", kind: domain.KindTodo, description: "x", when: "now", wantErr: domain.ErrUnexpectedWhen},
		{name: "deadline without when", kind: domain.KindDeadline, description: "x", wantErr: domain.ErrMissingWhen},
		{name: "event with blank when", kind: domain.KindEvent, description: "x", when: " ", wantErr: domain.ErrMissingWhen},
		{name: "unknown kind", kind: domain.Kind("chore"), description: "x", wantErr: domain.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := domain.NewTask(tt.kind, tt.description, tt.when)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, task.Kind)
			assert.Equal(t, tt.description, task.Description)
			assert.Equal(t, tt.when, task.When)
			assert.False(t, task.Done)
			assert.Equal(t, domain.PriorityUnset, task.Priority)
		})
	}
}

func TestTask_String(t *testing.T) {
	t.Parallel()

	todo, err := domain.NewTodo("buy milk")
	require.NoError(t, err)
	assert.Equal(t, "[T][ ] buy milk", todo.String())

	todo.Done = true
	assert.Equal(t, "[T][X] buy milk", todo.String())

	deadline, err := domain.NewDeadline("return book", "Sunday")
	require.NoError(t, err)
	assert.Equal(t, "[D][ ] return book (by: Sunday)", deadline.String())

	event, err := domain.NewEvent("party", "Mon 2pm")
	require.NoError(t, err)
	event.Priority = domain.PriorityHigh
	assert.Equal(t, "[E][ ] party (at: Mon 2pm) (priority: high)", event.String())
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]domain.Priority{
		"low":    domain.PriorityLow,
		"Medium": domain.PriorityMedium,
		"HIGH":   domain.PriorityHigh,
	} {
		got, err := domain.ParsePriority(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParsePriority("urgent")
	require.ErrorIs(t, err, domain.ErrInvalidPriority)

	_, err = domain.ParsePriority("")
	require.ErrorIs(t, err, domain.ErrInvalidPriority)
}
