package domain

import "strings"

// Priority is the optional importance of a task.
type Priority string

const (
	// PriorityUnset is the zero value; a task has no priority until one is assigned.
	PriorityUnset Priority = ""
	// PriorityLow marks a task as low priority.
	PriorityLow Priority = "low"
	// PriorityMedium marks a task as medium priority.
	PriorityMedium Priority = "medium"
	// PriorityHigh marks a task as high priority.
	PriorityHigh Priority = "high"
)

// Priorities lists the values a user may assign, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority converts user input into a Priority. Matching ignores case.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(s)) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return PriorityUnset, ErrInvalidPriority
	}
}
