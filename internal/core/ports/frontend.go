// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mum/internal/core/domain"
)

// Handler turns one input line into a response.
type Handler func(ctx context.Context, line string) domain.Response

// Frontend drives an interactive session: it reads lines from the user,
// passes them to the handler and shows the responses.
//
//go:generate go run go.uber.org/mock/mockgen -source=frontend.go -destination=mocks/mock_frontend.go -package=mocks
type Frontend interface {
	// Run blocks until the handler returns a response with Continue unset,
	// the input is exhausted, or ctx is cancelled.
	Run(ctx context.Context, handle Handler) error
}
