// Package store persists the task list as a JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/core/ports"
	"go.trai.ch/zerr"
)

// FormatVersion is written into every task file.
const FormatVersion = 1

// Store implements ports.TaskStore with one JSON file per task list.
// It remembers the checksum of the last content read or written per path
// and skips writes that would not change the file.
type Store struct {
	logger ports.Logger

	mu        sync.Mutex
	checksums map[string]uint64
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{
		logger:    logger,
		checksums: make(map[string]uint64),
	}
}

type taskFile struct {
	Version int          `json:"version"`
	Tasks   []taskRecord `json:"tasks"`
}

type taskRecord struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	When        string `json:"when,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// Load reads the task list stored at path. A missing file yields an empty list.
func (s *Store) Load(path string) (*domain.TaskList, error) {
	//nolint:gosec // Path comes from the resolved configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no task file at " + path + ", starting empty")
			return domain.NewTaskList(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	var file taskFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}

	tasks := make([]domain.Task, 0, len(file.Tasks))
	for i, rec := range file.Tasks {
		task, err := rec.toTask()
		if err != nil {
			err = zerr.Wrap(err, domain.ErrStoreInvalidRecord.Error())
			return nil, zerr.With(zerr.With(err, "path", path), "record", i+1)
		}
		tasks = append(tasks, task)
	}

	s.remember(path, xxhash.Sum64(data))
	s.logger.Debug(fmt.Sprintf("loaded %d tasks from %s", len(tasks), path))

	return domain.NewTaskList(tasks...), nil
}

// Save writes tasks to path. The write is skipped when the encoded content
// matches what was last read from or written to the same path.
func (s *Store) Save(path string, tasks []domain.Task) error {
	file := taskFile{
		Version: FormatVersion,
		Tasks:   make([]taskRecord, 0, len(tasks)),
	}
	for _, task := range tasks {
		file.Tasks = append(file.Tasks, fromTask(task))
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	data = append(data, '\n')

	sum := xxhash.Sum64(data)
	if s.unchanged(path, sum) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	if err := writeAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	s.remember(path, sum)
	s.logger.Debug(fmt.Sprintf("saved %d tasks to %s", len(tasks), path))

	return nil
}

func (s *Store) unchanged(path string, sum uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.checksums[path]
	if !ok || prev != sum {
		return false
	}

	// The file may have been removed behind our back.
	_, err := os.Stat(path)
	return err == nil
}

func (s *Store) remember(path string, sum uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checksums[path] = sum
}

// writeAtomic replaces path with data through a temporary file in the same directory.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func fromTask(t domain.Task) taskRecord {
	return taskRecord{
		Kind:        string(t.Kind),
		Description: t.Description,
		Done:        t.Done,
		When:        t.When,
		Priority:    string(t.Priority),
	}
}

func (r taskRecord) toTask() (domain.Task, error) {
	task, err := domain.NewTask(domain.Kind(r.Kind), r.Description, r.When)
	if err != nil {
		return domain.Task{}, err
	}
	task.Done = r.Done

	if r.Priority != "" {
		p, err := domain.ParsePriority(r.Priority)
		if err != nil {
			return domain.Task{}, err
		}
		task.Priority = p
	}

	return task, nil
}
