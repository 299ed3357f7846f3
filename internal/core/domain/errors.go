package domain

import "go.trai.ch/zerr"

var (
	// ErrFormat is returned when a command has the wrong number of arguments or is missing its delimiter.
	ErrFormat = zerr.New("invalid command format")

	// ErrIndexNotNumeric is returned when a task index is not an integer.
	ErrIndexNotNumeric = zerr.New("task index is not a number")

	// ErrIndexOutOfRange is returned when a task index does not refer to a task in the list.
	ErrIndexOutOfRange = zerr.New("task index out of range")

	// ErrUnknownCommand is returned when the keyword of an input line is not recognized.
	ErrUnknownCommand = zerr.New("unknown command")

	// ErrInvalidPriority is returned when a priority value is not one of low, medium or high.
	ErrInvalidPriority = zerr.New("invalid priority")

	// ErrEmptyDescription is returned when a task is created without a description.
	ErrEmptyDescription = zerr.New("task description is empty")

	// ErrMissingWhen is returned when a deadline or event is created without its date text.
	ErrMissingWhen = zerr.New("deadline and event tasks need a date description")

	// ErrUnexpectedWhen is returned when a todo is created with date text.
	ErrUnexpectedWhen = zerr.New("todo tasks cannot have a date description")

	// ErrUnknownKind is returned when a task kind is not todo, deadline or event.
	ErrUnknownKind = zerr.New("unknown task kind")

	// ErrCommandRejected is returned by batch execution when at least one input line was rejected.
	ErrCommandRejected = zerr.New("one or more commands were rejected")

	// ErrStoreCreateFailed is returned when the task store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create task store directory")

	// ErrStoreReadFailed is returned when the task file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read task file")

	// ErrStoreUnmarshalFailed is returned when the task file cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal task file")

	// ErrStoreMarshalFailed is returned when the tasks cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal tasks")

	// ErrStoreWriteFailed is returned when the task file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write task file")

	// ErrStoreInvalidRecord is returned when a stored task violates the task invariants.
	ErrStoreInvalidRecord = zerr.New("invalid task record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidUIMode is returned when the configured UI mode is not auto, tui or line.
	ErrInvalidUIMode = zerr.New("invalid ui mode, expected 'auto', 'tui' or 'line'")

	// ErrInvalidLogLevel is returned when the configured log level is unknown.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")
)
