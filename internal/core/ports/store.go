package ports

import "go.trai.ch/mum/internal/core/domain"

// TaskStore defines the interface for persisting the task list between sessions.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type TaskStore interface {
	// Load reads the task list stored at path.
	// A missing file yields an empty list.
	Load(path string) (*domain.TaskList, error)

	// Save writes the tasks to path, replacing what was stored before.
	Save(path string, tasks []domain.Task) error
}
