package command

import (
	"fmt"
	"strings"

	"go.trai.ch/mum/internal/core/domain"
)

// Greeting opens every interactive session.
const Greeting = "Hello! I'm mum.\nWhat can I do for you?"

const (
	farewell  = "Bye. Hope to see you again soon!"
	emptyList = "Your task list is empty."
)

func renderList(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return emptyList
	}

	var b strings.Builder
	b.WriteString("Here are the tasks in your list:")
	for i, t := range tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t)
	}
	return b.String()
}

// renderMatches numbers each match with its position in the full list so the
// number can be used directly with mark, unmark, delete or priority.
func renderMatches(term string, matches []domain.Match) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No tasks match %q.", term)
	}

	var b strings.Builder
	b.WriteString("Here are the matching tasks in your list:")
	for _, m := range matches {
		fmt.Fprintf(&b, "\n%d. %s", m.Index, m.Task)
	}
	return b.String()
}

func countLine(n int) string {
	if n == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", n)
}
