package domain

import "path/filepath"

const (
	// MumDirName is the name of the directory holding mum's data.
	MumDirName = ".mum"

	// TasksFileName is the name of the file the task list is persisted to.
	TasksFileName = "tasks.json"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "mum.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for task files (rw-------).
	FilePerm = 0o600
)

// DefaultTasksPath returns the default location of the task file, relative to the working directory.
func DefaultTasksPath() string {
	return filepath.Join(MumDirName, TasksFileName)
}
