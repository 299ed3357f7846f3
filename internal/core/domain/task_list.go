package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Match is a search hit: a task together with its display index.
type Match struct {
	Index int
	Task  Task
}

// TaskList is an ordered collection of tasks addressed by 1-based display index.
//
// The list owns its tasks. Accessors hand out copies, so a task can only change
// through the list's own methods.
type TaskList struct {
	tasks []Task
}

// NewTaskList creates a list holding the given tasks in order.
func NewTaskList(tasks ...Task) *TaskList {
	l := &TaskList{tasks: make([]Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Size returns the number of tasks in the list.
func (l *TaskList) Size() int {
	return len(l.tasks)
}

// Get returns a copy of the task at the display index.
func (l *TaskList) Get(index int) (Task, error) {
	if err := l.CheckIndex(index); err != nil {
		return Task{}, err
	}
	return l.tasks[index-1], nil
}

// Append adds a task to the end of the list.
func (l *TaskList) Append(task Task) {
	l.tasks = append(l.tasks, task)
}

// RemoveAt deletes the task at the display index and returns it.
// Tasks after it move down by one position.
func (l *TaskList) RemoveAt(index int) (Task, error) {
	if err := l.CheckIndex(index); err != nil {
		return Task{}, err
	}
	removed := l.tasks[index-1]
	l.tasks = append(l.tasks[:index-1], l.tasks[index:]...)
	return removed, nil
}

// Mark flags the task at the display index as done and returns its new state.
func (l *TaskList) Mark(index int) (Task, error) {
	return l.update(index, func(t *Task) { t.Done = true })
}

// Unmark clears the done flag of the task at the display index and returns its new state.
func (l *TaskList) Unmark(index int) (Task, error) {
	return l.update(index, func(t *Task) { t.Done = false })
}

// SetPriority assigns a priority to the task at the display index and returns its new state.
func (l *TaskList) SetPriority(index int, p Priority) (Task, error) {
	if p == PriorityUnset {
		return Task{}, zerr.Wrap(ErrInvalidPriority, "priority must be one of "+PriorityChoices())
	}
	return l.update(index, func(t *Task) { t.Priority = p })
}

// FindContaining returns every task whose description contains substring,
// in list order. The match is case-sensitive.
func (l *TaskList) FindContaining(substring string) []Match {
	var matches []Match
	for i, t := range l.tasks {
		if strings.Contains(t.Description, substring) {
			matches = append(matches, Match{Index: i + 1, Task: t})
		}
	}
	return matches
}

// All returns a copy of every task in order.
func (l *TaskList) All() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// CheckIndex reports whether index is a valid display index for the list.
func (l *TaskList) CheckIndex(index int) error {
	return ValidateIndex(index, len(l.tasks))
}

// ValidateIndex reports whether index is a valid display index for a list of the given size.
func ValidateIndex(index, size int) error {
	if index < 1 || index > size {
		return zerr.With(zerr.Wrap(ErrIndexOutOfRange, outOfRangeMessage(index, size)), "index", index)
	}
	return nil
}

func (l *TaskList) update(index int, fn func(*Task)) (Task, error) {
	if err := l.CheckIndex(index); err != nil {
		return Task{}, err
	}
	fn(&l.tasks[index-1])
	return l.tasks[index-1], nil
}

func outOfRangeMessage(index, size int) string {
	if size == 0 {
		return fmt.Sprintf("there is no task %d, your list is empty", index)
	}
	return fmt.Sprintf("there is no task %d, pick a number from 1 to %d", index, size)
}

// PriorityChoices renders the accepted priority values for messages.
func PriorityChoices() string {
	names := make([]string, len(Priorities))
	for i, p := range Priorities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
