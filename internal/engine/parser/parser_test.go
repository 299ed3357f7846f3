package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/engine/command"
	"go.trai.ch/mum/internal/engine/parser"
)

func mustTask(t *testing.T, kind domain.Kind, description, when string) domain.Task {
	t.Helper()
	task, err := domain.NewTask(kind, description, when)
	require.NoError(t, err)
	return task
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want []string
	}{
		{line: "", want: []string{""}},
		{line: "list", want: []string{"list"}},
		{line: "list ", want: []string{"list"}},
		{line: "   ", want: []string{""}},
		{line: "todo  a", want: []string{"todo", "", "a"}},
		{line: " mark 1", want: []string{"", "mark", "1"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parser.Tokenize(tt.line), "line %q", tt.line)
	}
}

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		size int
		want command.Command
	}{
		{name: "bye", line: "Bye", want: command.Bye()},
		{name: "bye ignores arguments", line: "Bye now", want: command.Bye()},
		{name: "list", line: "list", want: command.List()},
		{name: "list trailing space", line: "list ", want: command.List()},
		{name: "mark", line: "mark 2", size: 3, want: command.Mark(2)},
		{name: "unmark", line: "unmark 1", size: 1, want: command.Unmark(1)},
		{name: "delete", line: "delete 3", size: 3, want: command.Delete(3)},
		{name: "find", line: "find book", want: command.Find("book")},
		{
			name: "todo",
			line: "todo buy milk",
			want: command.Add(mustTask(t, domain.KindTodo, "buy milk", "")),
		},
		{
			name: "todo keeps inner spacing",
			line: "todo buy  milk",
			want: command.Add(mustTask(t, domain.KindTodo, "buy  milk", "")),
		},
		{
			name: "deadline",
			line: "deadline return book /by Sunday 6pm",
			want: command.Add(mustTask(t, domain.KindDeadline, "return book", "Sunday 6pm")),
		},
		{
			name: "event",
			line: "event project meeting /at Mon 2-4pm",
			want: command.Add(mustTask(t, domain.KindEvent, "project meeting", "Mon 2-4pm")),
		},
		{
			name: "deadline trims parts",
			line: "deadline  essay  /by  friday",
			want: command.Add(mustTask(t, domain.KindDeadline, "essay", "friday")),
		},
		{name: "priority", line: "priority 1 high", size: 1, want: command.SetPriority(1, domain.PriorityHigh)},
		{name: "priority ignores case", line: "priority 2 Low", size: 2, want: command.SetPriority(2, domain.PriorityLow)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parser.Parse(tt.line, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		line        string
		size        int
		wantErr     error
		errContains string
	}{
		{name: "list with argument", line: "list all", wantErr: domain.ErrFormat, errContains: "please just type: list"},
		{name: "mark without index", line: "mark", size: 1, wantErr: domain.ErrFormat, errContains: "mark <index of task>"},
		{name: "mark with two indices", line: "mark 1 2", size: 2, wantErr: domain.ErrFormat},
		{name: "mark non numeric", line: "mark one", size: 1, wantErr: domain.ErrIndexNotNumeric},
		{name: "mark zero", line: "mark 0", size: 1, wantErr: domain.ErrIndexOutOfRange},
		{name: "unmark negative", line: "unmark -1", size: 1, wantErr: domain.ErrIndexOutOfRange},
		{name: "delete past end", line: "delete 4", size: 3, wantErr: domain.ErrIndexOutOfRange},
		{name: "delete on empty list", line: "delete 1", wantErr: domain.ErrIndexOutOfRange, errContains: "empty"},
		{name: "find without term", line: "find", wantErr: domain.ErrFormat},
		{name: "find with two words", line: "find old book", wantErr: domain.ErrFormat, errContains: "find <search term>"},
		{name: "find empty term", line: "find  x", wantErr: domain.ErrFormat},
		{name: "todo without description", line: "todo", wantErr: domain.ErrFormat, errContains: "todo <task description>"},
		{name: "todo blank description", line: "todo   ", wantErr: domain.ErrFormat},
		{
			name:        "deadline without delimiter",
			line:        "deadline return book",
			wantErr:     domain.ErrFormat,
			errContains: "deadline <task description> /by <date description>",
		},
		{name: "deadline without date", line: "deadline return book /by", wantErr: domain.ErrFormat},
		{name: "deadline without description", line: "deadline /by Sunday", wantErr: domain.ErrFormat},
		{name: "deadline blank description", line: "deadline  /by Sunday", wantErr: domain.ErrFormat},
		{name: "deadline delimiter twice", line: "deadline a /by b /by c", wantErr: domain.ErrFormat},
		{name: "deadline with event delimiter", line: "deadline a /at b", wantErr: domain.ErrFormat},
		{
			name:        "event without delimiter",
			line:        "event party",
			wantErr:     domain.ErrFormat,
			errContains: "event <task description> /at <date description>",
		},
		{name: "priority missing value", line: "priority 1", size: 1, wantErr: domain.ErrFormat},
		{name: "priority non numeric", line: "priority x high", size: 1, wantErr: domain.ErrIndexNotNumeric},
		{name: "priority out of range", line: "priority 2 high", size: 1, wantErr: domain.ErrIndexOutOfRange},
		{name: "priority bad value", line: "priority 1 urgent", size: 1, wantErr: domain.ErrInvalidPriority, errContains: "urgent"},
		{name: "unknown keyword", line: "hello", wantErr: domain.ErrUnknownCommand},
		{name: "keyword is case sensitive", line: "List", wantErr: domain.ErrUnknownCommand},
		{name: "bye is case sensitive", line: "bye", wantErr: domain.ErrUnknownCommand},
		{name: "leading space", line: " list", wantErr: domain.ErrUnknownCommand},
		{name: "empty line", line: "", wantErr: domain.ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parser.Parse(tt.line, tt.size)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.errContains != "" {
				assert.ErrorContains(t, err, tt.errContains)
			}
		})
	}
}

func TestParse_DeadlineRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ description, by string }{
		{"return book", "Sunday"},
		{"submit report v2", "2019-12-02 1800"},
		{"a", "b"},
	} {
		got, err := parser.Parse("deadline "+tc.description+" /by "+tc.by, 0)
		require.NoError(t, err)
		assert.Equal(t, command.KindAdd, got.Kind)
		assert.Equal(t, tc.description, got.Task.Description)
		assert.Equal(t, tc.by, got.Task.When)
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	help := parser.Help()
	for _, kw := range parser.Keywords {
		assert.Contains(t, help, kw)
	}
}
