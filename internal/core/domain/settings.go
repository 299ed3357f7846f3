package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// UIMode selects the presentation layer used for an interactive session.
type UIMode string

const (
	// UIModeAuto picks the TUI on an interactive terminal and the line console otherwise.
	UIModeAuto UIMode = "auto"
	// UIModeTUI forces the full-screen chat interface.
	UIModeTUI UIMode = "tui"
	// UIModeLine forces the line-by-line console.
	UIModeLine UIMode = "line"
)

// DefaultPrompt is printed before each line in the console.
const DefaultPrompt = "mum> "

// Settings is the resolved configuration of a session.
type Settings struct {
	// TasksPath is the file the task list is loaded from and saved to.
	TasksPath string
	// LogJSON switches the logger to JSON output.
	LogJSON bool
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
	// UIMode selects the interactive frontend.
	UIMode UIMode
	// Prompt is printed before each input line in the console.
	Prompt string
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		TasksPath: DefaultTasksPath(),
		LogLevel:  "info",
		UIMode:    UIModeAuto,
		Prompt:    DefaultPrompt,
	}
}

// ParseUIMode converts a mode name into a UIMode. The empty string means auto.
func ParseUIMode(name string) (UIMode, error) {
	switch mode := UIMode(strings.ToLower(strings.TrimSpace(name))); mode {
	case "":
		return UIModeAuto, nil
	case UIModeAuto, UIModeTUI, UIModeLine:
		return mode, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidUIMode, "unknown ui mode"), "mode", name)
	}
}
