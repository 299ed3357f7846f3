// Package console implements a line-oriented frontend for plain terminals and pipes.
package console

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/core/ports"
	"go.trai.ch/mum/internal/engine/command"
	"go.trai.ch/mum/internal/ui/output"
	"go.trai.ch/mum/internal/ui/style"
)

const divider = "____________________________________________________________"

// Console implements ports.Frontend over a reader and a writer.
type Console struct {
	in       io.Reader
	out      *termenv.Output
	prompt   string
	greeting string
}

// Option configures a Console.
type Option func(*Console)

// WithPrompt sets the text printed before each input line.
func WithPrompt(prompt string) Option {
	return func(c *Console) {
		c.prompt = prompt
	}
}

// WithGreeting replaces the message printed when the session starts.
func WithGreeting(greeting string) Option {
	return func(c *Console) {
		c.greeting = greeting
	}
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:       in,
		out:      output.New(out),
		prompt:   domain.DefaultPrompt,
		greeting: command.Greeting,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run reads lines until a response ends the session, the input is exhausted
// or ctx is cancelled. A cancelled context is reported as ctx.Err().
func (c *Console) Run(ctx context.Context, handle ports.Handler) error {
	c.printBlock(c.greeting, false)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go c.scan(ctx, lines, readErr)

	for {
		c.write(c.prompt)

		select {
		case <-ctx.Done():
			c.write("\n")
			return ctx.Err()
		case err := <-readErr:
			c.write("\n")
			return err
		case line := <-lines:
			resp := handle(ctx, line)
			c.printBlock(resp.Text, resp.Failed)
			if !resp.Continue {
				return nil
			}
		}
	}
}

// scan feeds input lines to the channel. EOF is reported as a nil error.
// The goroutine stays blocked in Read if ctx is cancelled mid-line; it exits
// with the process.
func (c *Console) scan(ctx context.Context, lines chan<- string, readErr chan<- error) {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case lines <- strings.TrimRight(scanner.Text(), "\r"):
		case <-ctx.Done():
			return
		}
	}
	readErr <- scanner.Err()
}

func (c *Console) printBlock(text string, failed bool) {
	color := string(style.Slate)
	if failed {
		color = string(style.Red)
		text = style.Cross + " " + text
	}

	var b strings.Builder
	b.WriteString(output.Paint(c.out, divider, string(style.Mist)))
	b.WriteString("\n")
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(" ")
		b.WriteString(output.Paint(c.out, line, color))
		b.WriteString("\n")
	}
	b.WriteString(output.Paint(c.out, divider, string(style.Mist)))
	b.WriteString("\n")

	c.write(b.String())
}

func (c *Console) write(s string) {
	_, _ = c.out.WriteString(s)
}
