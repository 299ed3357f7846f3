// Package app implements the application layer for mum.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/mum/internal/adapters/console"
	"go.trai.ch/mum/internal/adapters/detector"
	"go.trai.ch/mum/internal/adapters/tui"
	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/core/ports"
	"go.trai.ch/mum/internal/engine/dispatcher"
	"go.trai.ch/mum/internal/ui/output"
	"go.trai.ch/mum/internal/ui/style"
	"go.trai.ch/zerr"
)

// logSettings is implemented by loggers whose format can be changed after
// construction.
type logSettings interface {
	SetJSON(enable bool)
	SetLevel(name string) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.TaskStore
	logger       ports.Logger
	in           io.Reader
	out          io.Writer
	cwd          string
	teaOptions   []tea.ProgramOption
	frontendFor  func(domain.Settings) ports.Frontend
}

// New creates a new App instance reading stdin and writing stdout.
func New(loader ports.ConfigLoader, store ports.TaskStore, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		store:        store,
		logger:       log,
		in:           os.Stdin,
		out:          os.Stdout,
	}
}

// WithIO replaces the streams sessions read from and write to.
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.in = in
	a.out = out
	return a
}

// WithWorkingDir sets the directory configuration discovery starts from.
// It defaults to the process working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.cwd = dir
	return a
}

// WithTeaOptions adds bubbletea program options to the chat UI.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithFrontend makes Chat use f instead of choosing a frontend from the
// configured UI mode.
func (a *App) WithFrontend(f ports.Frontend) *App {
	a.frontendFor = func(domain.Settings) ports.Frontend { return f }
	return a
}

// ChatOptions configuration for the Chat method.
type ChatOptions struct {
	// ConfigPath names the config file explicitly.
	ConfigPath string
	// UIMode overrides the configured frontend: auto, tui or line.
	UIMode string
}

// Chat runs an interactive session. The task list is saved after every
// command that changed it.
func (a *App) Chat(ctx context.Context, opts ChatOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.UIMode != "" {
		mode, err := domain.ParseUIMode(opts.UIMode)
		if err != nil {
			return err
		}
		settings.UIMode = mode
	}

	tasks, err := a.store.Load(settings.TasksPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load tasks")
	}

	d := dispatcher.New(tasks, a.logger)

	var saveFailed bool
	handle := func(ctx context.Context, line string) domain.Response {
		resp := d.Handle(ctx, line)
		if !resp.Mutated {
			return resp
		}
		if err := a.store.Save(settings.TasksPath, d.Snapshot()); err != nil {
			saveFailed = true
			a.logger.Error(zerr.Wrap(err, "failed to save tasks"))
		}
		return resp
	}

	runErr := a.frontend(settings).Run(ctx, handle)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	// Retry once so a transient failure during the session does not lose work.
	if saveFailed {
		if err := a.store.Save(settings.TasksPath, d.Snapshot()); err != nil {
			return errors.Join(runErr, zerr.Wrap(err, "failed to save tasks"))
		}
	}

	return runErr
}

// ExecOptions configuration for the Exec method.
type ExecOptions struct {
	// ConfigPath names the config file explicitly.
	ConfigPath string
}

// Exec runs each line as one command and prints the responses. Processing
// stops after a command that ends the session. The task list is saved once at
// the end if anything changed. If any command was rejected the result is
// domain.ErrCommandRejected.
func (a *App) Exec(ctx context.Context, lines []string, opts ExecOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	tasks, err := a.store.Load(settings.TasksPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load tasks")
	}

	d := dispatcher.New(tasks, a.logger)
	out := output.New(a.out)

	var mutated bool
	var processed, rejected int
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		processed++
		resp := d.Handle(ctx, line)
		mutated = mutated || resp.Mutated

		text := resp.Text
		if resp.Failed {
			rejected++
			text = output.Paint(out, style.Cross+" "+text, string(style.Red))
		}
		_, _ = fmt.Fprintln(a.out, text)

		if !resp.Continue {
			break
		}
	}

	if mutated {
		if err := a.store.Save(settings.TasksPath, d.Snapshot()); err != nil {
			return zerr.Wrap(err, "failed to save tasks")
		}
	}

	if rejected > 0 {
		err := zerr.Wrap(domain.ErrCommandRejected, fmt.Sprintf("%d of %d commands rejected", rejected, processed))
		return zerr.With(err, "rejected", rejected)
	}
	return nil
}

func (a *App) loadSettings(configPath string) (domain.Settings, error) {
	cwd := a.cwd
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return domain.Settings{}, zerr.Wrap(err, "failed to get working directory")
		}
	}

	settings, err := a.configLoader.Load(cwd, configPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if l, ok := a.logger.(logSettings); ok {
		l.SetJSON(settings.LogJSON)
		if err := l.SetLevel(settings.LogLevel); err != nil {
			return domain.Settings{}, err
		}
	}

	return settings, nil
}

func (a *App) frontend(settings domain.Settings) ports.Frontend {
	if a.frontendFor != nil {
		return a.frontendFor(settings)
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(a.in, a.out), settings.UIMode)
	if mode == domain.UIModeTUI {
		opts := append([]tea.ProgramOption{tea.WithInput(a.in), tea.WithOutput(a.out)}, a.teaOptions...)
		return tui.NewFrontend(settings.Prompt, opts...)
	}
	return console.New(a.in, a.out, console.WithPrompt(settings.Prompt))
}
