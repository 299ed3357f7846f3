// Package command implements the actions a parsed input line can perform on the task list.
package command

import (
	"fmt"

	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kind identifies a command in the fixed vocabulary.
type Kind int

const (
	// KindBye ends the session.
	KindBye Kind = iota + 1
	// KindList renders every task.
	KindList
	// KindMark flags a task as done.
	KindMark
	// KindUnmark clears the done flag of a task.
	KindUnmark
	// KindAdd appends a todo, deadline or event.
	KindAdd
	// KindFind renders the tasks whose description contains a term.
	KindFind
	// KindDelete removes a task.
	KindDelete
	// KindPriority assigns a priority to a task.
	KindPriority
)

// String returns the keyword-like name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBye:
		return "bye"
	case KindList:
		return "list"
	case KindMark:
		return "mark"
	case KindUnmark:
		return "unmark"
	case KindAdd:
		return "add"
	case KindFind:
		return "find"
	case KindDelete:
		return "delete"
	case KindPriority:
		return "priority"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Command is a validated action. Only the fields relevant to Kind are set.
type Command struct {
	Kind Kind

	// Index is the display index for mark, unmark, delete and priority.
	Index int
	// Term is the search term for find.
	Term string
	// Task is the task to append for add.
	Task domain.Task
	// Priority is the value assigned by priority.
	Priority domain.Priority
}

// Bye returns a command that ends the session.
func Bye() Command { return Command{Kind: KindBye} }

// List returns a command that renders every task.
func List() Command { return Command{Kind: KindList} }

// Mark returns a command that flags the task at index as done.
func Mark(index int) Command { return Command{Kind: KindMark, Index: index} }

// Unmark returns a command that clears the done flag of the task at index.
func Unmark(index int) Command { return Command{Kind: KindUnmark, Index: index} }

// Add returns a command that appends task to the list.
func Add(task domain.Task) Command { return Command{Kind: KindAdd, Task: task} }

// Find returns a command that searches descriptions for term.
func Find(term string) Command { return Command{Kind: KindFind, Term: term} }

// Delete returns a command that removes the task at index.
func Delete(index int) Command { return Command{Kind: KindDelete, Index: index} }

// SetPriority returns a command that assigns p to the task at index.
func SetPriority(index int, p domain.Priority) Command {
	return Command{Kind: KindPriority, Index: index, Priority: p}
}

// Mutates reports whether executing the command changes the task list.
func (c Command) Mutates() bool {
	switch c.Kind {
	case KindMark, KindUnmark, KindAdd, KindDelete, KindPriority:
		return true
	case KindBye, KindList, KindFind:
		return false
	default:
		return false
	}
}

// Execute performs the command against tasks and returns the response for the user.
//
// Preconditions are checked again here; a command that no longer fits the
// list fails with an error and leaves the list unchanged.
func Execute(c Command, tasks *domain.TaskList) (domain.Response, error) {
	var (
		text string
		err  error
	)

	switch c.Kind {
	case KindBye:
		return domain.Response{Text: farewell, Continue: false}, nil
	case KindList:
		text = renderList(tasks.All())
	case KindMark:
		text, err = mark(c, tasks)
	case KindUnmark:
		text, err = unmark(c, tasks)
	case KindAdd:
		text, err = add(c, tasks)
	case KindFind:
		text = renderMatches(c.Term, tasks.FindContaining(c.Term))
	case KindDelete:
		text, err = remove(c, tasks)
	case KindPriority:
		text, err = setPriority(c, tasks)
	default:
		return domain.Response{}, zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "cannot execute command"), "kind", c.Kind.String())
	}

	if err != nil {
		return domain.Response{}, err
	}
	return domain.Response{Text: text, Continue: true, Mutated: c.Mutates()}, nil
}

func mark(c Command, tasks *domain.TaskList) (string, error) {
	task, err := tasks.Mark(c.Index)
	if err != nil {
		return "", err
	}
	return "Nice! I've marked this task as done:\n  " + task.String(), nil
}

func unmark(c Command, tasks *domain.TaskList) (string, error) {
	task, err := tasks.Unmark(c.Index)
	if err != nil {
		return "", err
	}
	return "OK, I've marked this task as not done yet:\n  " + task.String(), nil
}

func add(c Command, tasks *domain.TaskList) (string, error) {
	// Commands built outside the parser still have to satisfy the task invariants.
	task, err := domain.NewTask(c.Task.Kind, c.Task.Description, c.Task.When)
	if err != nil {
		return "", err
	}
	tasks.Append(task)
	return "Got it. I've added this task:\n  " + task.String() + "\n" + countLine(tasks.Size()), nil
}

func remove(c Command, tasks *domain.TaskList) (string, error) {
	task, err := tasks.RemoveAt(c.Index)
	if err != nil {
		return "", err
	}
	return "Noted. I've removed this task:\n  " + task.String() + "\n" + countLine(tasks.Size()), nil
}

func setPriority(c Command, tasks *domain.TaskList) (string, error) {
	task, err := tasks.SetPriority(c.Index, c.Priority)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Got it. I've set the priority of this task to %s:\n  %s", c.Priority, task.String()), nil
}
