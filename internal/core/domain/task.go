package domain

import (
	"fmt"
	"strings"
)

// Kind identifies which of the fixed task shapes a Task has.
type Kind string

const (
	// KindTodo is a plain task without a date.
	KindTodo Kind = "todo"
	// KindDeadline is a task that is due by a point in time.
	KindDeadline Kind = "deadline"
	// KindEvent is a task that happens at a time or place.
	KindEvent Kind = "event"
)

// Symbol returns the single-letter tag used when rendering a task.
func (k Kind) Symbol() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// whenLabel is the label rendered in front of the When field.
func (k Kind) whenLabel() string {
	switch k {
	case KindDeadline:
		return "by"
	case KindEvent:
		return "at"
	default:
		return ""
	}
}

// Task is a single trackable item.
//
// When is set exactly for deadlines (due text) and events (time or place).
type Task struct {
	Description string
	Done        bool
	Kind        Kind
	When        string
	Priority    Priority
}

// NewTodo creates a Todo task.
func NewTodo(description string) (Task, error) {
	return newTask(KindTodo, description, "")
}

// NewDeadline creates a Deadline task due by the given text.
func NewDeadline(description, by string) (Task, error) {
	return newTask(KindDeadline, description, by)
}

// NewEvent creates an Event task happening at the given text.
func NewEvent(description, at string) (Task, error) {
	return newTask(KindEvent, description, at)
}

// NewTask creates a task of the given kind, enforcing the kind/when invariant.
func NewTask(kind Kind, description, when string) (Task, error) {
	return newTask(kind, description, when)
}

func newTask(kind Kind, description, when string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, ErrEmptyDescription
	}

	switch kind {
	case KindTodo:
		if when != "" {
			return Task{}, ErrUnexpectedWhen
		}
	case KindDeadline, KindEvent:
		if strings.TrimSpace(when) == "" {
			return Task{}, ErrMissingWhen
		}
	default:
		return Task{}, ErrUnknownKind
	}

	return Task{
		Description: description,
		Kind:        kind,
		When:        when,
	}, nil
}

// String renders the task the way it is shown to the user, e.g. "[D][ ] report (by: friday)".
func (t Task) String() string {
	var b strings.Builder

	mark := " "
	if t.Done {
		mark = "X"
	}
	fmt.Fprintf(&b, "[%s][%s] %s", t.Kind.Symbol(), mark, t.Description)

	if label := t.Kind.whenLabel(); label != "" {
		fmt.Fprintf(&b, " (%s: %s)", label, t.When)
	}
	if t.Priority != PriorityUnset {
		fmt.Fprintf(&b, " (priority: %s)", t.Priority)
	}

	return b.String()
}
