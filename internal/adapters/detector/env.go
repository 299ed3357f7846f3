// Package detector provides environment detection for frontend selection.
package detector

import (
	"os"

	"golang.org/x/term"
	"go.trai.ch/mum/internal/core/domain"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// DetectEnvironment returns the frontend suited to the given streams.
// The chat UI needs both ends attached to a terminal and no CI environment;
// anything else gets the line console.
func DetectEnvironment(in, out any) domain.UIMode {
	if isCI() || !isTerminal(in) || !isTerminal(out) {
		return domain.UIModeLine
	}
	return domain.UIModeTUI
}

// ResolveMode applies the configured mode to auto-detection.
func ResolveMode(autoDetected, configured domain.UIMode) domain.UIMode {
	switch configured {
	case domain.UIModeTUI, domain.UIModeLine:
		return configured
	default:
		return autoDetected
	}
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

func isTerminal(stream any) bool {
	f, ok := stream.(fder)
	if !ok {
		return false
	}
	//nolint:gosec // file descriptors fit in an int
	return term.IsTerminal(int(f.Fd()))
}
