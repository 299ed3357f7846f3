package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mum/internal/core/domain"
)

func newList(t *testing.T, descriptions ...string) *domain.TaskList {
	t.Helper()

	l := domain.NewTaskList()
	for _, d := range descriptions {
		task, err := domain.NewTodo(d)
		require.NoError(t, err)
		l.Append(task)
	}
	return l
}

func TestTaskList_Get(t *testing.T) {
	t.Parallel()

	l := newList(t, "a", "b", "c")
	require.Equal(t, 3, l.Size())

	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Description)

	got, err = l.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Description)

	for _, index := range []int{0, -1, 4} {
		_, err := l.Get(index)
		require.ErrorIs(t, err, domain.ErrIndexOutOfRange, "index %d", index)
	}
}

func TestTaskList_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	l := newList(t, "a")
	got, err := l.Get(1)
	require.NoError(t, err)

	got.Done = true
	got.Description = "changed"

	again, err := l.Get(1)
	require.NoError(t, err)
	assert.False(t, again.Done)
	assert.Equal(t, "a", again.Description)
}

func TestTaskList_RemoveAt(t *testing.T) {
	t.Parallel()

	l := newList(t, "a", "b", "c", "d")

	removed, err := l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Description)
	require.Equal(t, 3, l.Size())

	// Later tasks shift down by one.
	got, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Description)
	got, err = l.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "d", got.Description)

	_, err = l.RemoveAt(4)
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Equal(t, 3, l.Size())
}

func TestTaskList_MarkUnmark(t *testing.T) {
	t.Parallel()

	l := newList(t, "a", "b")

	marked, err := l.Mark(2)
	require.NoError(t, err)
	assert.True(t, marked.Done)

	unmarked, err := l.Unmark(2)
	require.NoError(t, err)
	assert.False(t, unmarked.Done)

	_, err = l.Mark(0)
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	_, err = l.Unmark(3)
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestTaskList_SetPriority(t *testing.T) {
	t.Parallel()

	l := newList(t, "a")

	got, err := l.SetPriority(1, domain.PriorityMedium)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, got.Priority)

	_, err = l.SetPriority(1, domain.PriorityUnset)
	require.ErrorIs(t, err, domain.ErrInvalidPriority)

	_, err = l.SetPriority(2, domain.PriorityHigh)
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	still, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, still.Priority)
}

func TestTaskList_FindContaining(t *testing.T) {
	t.Parallel()

	l := newList(t, "read book", "Book flight", "return book", "buy milk")

	matches := l.FindContaining("book")
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Index)
	assert.Equal(t, "read book", matches[0].Task.Description)
	assert.Equal(t, 3, matches[1].Index)
	assert.Equal(t, "return book", matches[1].Task.Description)

	assert.Empty(t, l.FindContaining("pizza"))
}

func TestTaskList_All(t *testing.T) {
	t.Parallel()

	l := newList(t, "a", "b")
	all := l.All()
	require.Len(t, all, 2)

	all[0].Description = "mutated"
	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Description)
}
