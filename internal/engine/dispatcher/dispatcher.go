// Package dispatcher runs input lines against the task list it owns.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/core/ports"
	"go.trai.ch/mum/internal/engine/command"
	"go.trai.ch/mum/internal/engine/parser"
)

// messager describes an error that can report its own message without the chain.
// zerr errors implement it; the message is the text written for the user.
type messager interface {
	Message() string
}

// Dispatcher owns a task list and applies one input line at a time to it.
type Dispatcher struct {
	mu     sync.Mutex
	tasks  *domain.TaskList
	logger ports.Logger
}

// New creates a Dispatcher that takes ownership of tasks.
// A nil list starts the session empty.
func New(tasks *domain.TaskList, log ports.Logger) *Dispatcher {
	if tasks == nil {
		tasks = domain.NewTaskList()
	}
	return &Dispatcher{
		tasks:  tasks,
		logger: log,
	}
}

// Handle parses line, executes the resulting command and returns the response.
//
// The whole parse-and-execute cycle runs under one lock. Rejected lines come
// back as failed responses and never change the list; an unknown keyword gets
// the help text.
func (d *Dispatcher) Handle(ctx context.Context, line string) domain.Response {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.Response{Text: "Session cancelled.", Continue: false, Failed: true}
	}

	cmd, err := parser.Parse(line, d.tasks.Size())
	if err != nil {
		return d.reject(line, err)
	}

	resp, err := command.Execute(cmd, d.tasks)
	if err != nil {
		return d.reject(line, err)
	}
	return resp
}

// Size returns the number of tasks currently held.
func (d *Dispatcher) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tasks.Size()
}

// Snapshot returns a copy of the tasks, for persistence.
func (d *Dispatcher) Snapshot() []domain.Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tasks.All()
}

func (d *Dispatcher) reject(line string, err error) domain.Response {
	keyword := parser.Tokenize(line)[0]

	if errors.Is(err, domain.ErrUnknownCommand) {
		d.logger.Debug(fmt.Sprintf("unknown keyword %q", keyword))
		return domain.Response{Text: parser.Help(), Continue: true}
	}

	d.logger.Debug(fmt.Sprintf("rejected %q command: %v", keyword, err))
	return domain.Response{Text: userMessage(err), Continue: true, Failed: true}
}

// userMessage returns the outermost message of err, which is the one written
// for the user, without the sentinel chain beneath it.
func userMessage(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if m, ok := e.(messager); ok && m.Message() != "" {
			return capitalize(m.Message())
		}
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
