// Package parser turns raw input lines into validated commands.
//
// A line is split on single spaces. The first token is the keyword and
// selects the grammar for the rest of the line:
//
//	Bye
//	list
//	mark <index>
//	unmark <index>
//	delete <index>
//	find <term>
//	todo <description>
//	deadline <description> /by <date>
//	event <description> /at <date>
//	priority <index> <low|medium|high>
//
// Every check runs before a command is built, so a rejected line never
// reaches the task list.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/engine/command"
	"go.trai.ch/zerr"
)

// Keywords of the command vocabulary. Matching is case-sensitive.
const (
	KeywordBye      = "Bye"
	KeywordList     = "list"
	KeywordMark     = "mark"
	KeywordUnmark   = "unmark"
	KeywordTodo     = "todo"
	KeywordDeadline = "deadline"
	KeywordEvent    = "event"
	KeywordFind     = "find"
	KeywordDelete   = "delete"
	KeywordPriority = "priority"
)

// Delimiters separating a description from its date text.
const (
	DelimiterBy = " /by "
	DelimiterAt = " /at "
)

// Keywords lists the vocabulary in the order it is shown in help text.
var Keywords = []string{
	KeywordTodo,
	KeywordDeadline,
	KeywordEvent,
	KeywordList,
	KeywordMark,
	KeywordUnmark,
	KeywordPriority,
	KeywordFind,
	KeywordDelete,
	KeywordBye,
}

// Help returns the message shown for a line with an unknown keyword.
func Help() string {
	return "Sorry, I don't recognise that. Start your line with one of: " + strings.Join(Keywords, ", ")
}

// Parse validates line against the grammar of its keyword and returns the
// matching command. size is the current length of the task list and bounds
// every index argument.
//
// Unknown keywords yield domain.ErrUnknownCommand. Shape problems yield
// domain.ErrFormat, bad indices domain.ErrIndexNotNumeric or
// domain.ErrIndexOutOfRange, and bad priorities domain.ErrInvalidPriority.
func Parse(line string, size int) (command.Command, error) {
	tokens := Tokenize(line)
	keyword := tokens[0]

	switch keyword {
	case KeywordBye:
		return command.Bye(), nil
	case KeywordList:
		return parseList(tokens)
	case KeywordMark:
		return parseIndexed(tokens, size, command.Mark)
	case KeywordUnmark:
		return parseIndexed(tokens, size, command.Unmark)
	case KeywordDelete:
		return parseIndexed(tokens, size, command.Delete)
	case KeywordFind:
		return parseFind(tokens)
	case KeywordTodo:
		return parseTodo(tokens)
	case KeywordDeadline:
		return parseDated(tokens, domain.KindDeadline, DelimiterBy)
	case KeywordEvent:
		return parseDated(tokens, domain.KindEvent, DelimiterAt)
	case KeywordPriority:
		return parsePriority(tokens, size)
	default:
		return command.Command{}, zerr.With(zerr.Wrap(domain.ErrUnknownCommand, Help()), "keyword", keyword)
	}
}

// Tokenize splits line on single spaces. Empty tokens at the end of the line
// are dropped; empty tokens elsewhere are kept, so "todo  a" has an empty
// second token. The result always has at least one element.
func Tokenize(line string) []string {
	tokens := strings.Split(line, " ")
	end := len(tokens)
	for end > 1 && tokens[end-1] == "" {
		end--
	}
	return tokens[:end]
}

func parseList(tokens []string) (command.Command, error) {
	if len(tokens) != 1 {
		return command.Command{}, formatError(KeywordList, "the list command takes no arguments, please just type: list")
	}
	return command.List(), nil
}

func parseIndexed(tokens []string, size int, build func(int) command.Command) (command.Command, error) {
	keyword := tokens[0]
	if len(tokens) != 2 {
		return command.Command{}, formatError(keyword, fmt.Sprintf(
			"your %s command should name exactly one task, like this: %s <index of task>", keyword, keyword))
	}

	index, err := parseIndex(keyword, tokens[1], size)
	if err != nil {
		return command.Command{}, err
	}
	return build(index), nil
}

func parseFind(tokens []string) (command.Command, error) {
	if len(tokens) != 2 || tokens[1] == "" {
		return command.Command{}, formatError(KeywordFind,
			"your find command should have a single search word, like this: find <search term>")
	}
	return command.Find(tokens[1]), nil
}

func parseTodo(tokens []string) (command.Command, error) {
	description := strings.TrimSpace(strings.Join(tokens[1:], " "))
	if description == "" {
		return command.Command{}, formatError(KeywordTodo,
			"your todo command has no description, like this: todo <task description>")
	}

	task, err := domain.NewTodo(description)
	if err != nil {
		return command.Command{}, err
	}
	return command.Add(task), nil
}

// parseDated handles deadline and event lines. The text after the keyword
// must contain the delimiter exactly once with text on both sides. A
// description that itself contains the delimiter is rejected.
func parseDated(tokens []string, kind domain.Kind, delimiter string) (command.Command, error) {
	keyword := tokens[0]
	parts := strings.Split(strings.Join(tokens[1:], " "), delimiter)
	if len(parts) != 2 {
		return command.Command{}, datedFormatError(keyword, delimiter)
	}

	description := strings.TrimSpace(parts[0])
	when := strings.TrimSpace(parts[1])
	if description == "" || when == "" {
		return command.Command{}, datedFormatError(keyword, delimiter)
	}

	task, err := domain.NewTask(kind, description, when)
	if err != nil {
		return command.Command{}, err
	}
	return command.Add(task), nil
}

func parsePriority(tokens []string, size int) (command.Command, error) {
	if len(tokens) != 3 {
		return command.Command{}, formatError(KeywordPriority, fmt.Sprintf(
			"your priority command needs a task and a priority, like this: priority <index of task> <%s>",
			strings.ReplaceAll(domain.PriorityChoices(), ", ", "|")))
	}

	index, err := parseIndex(KeywordPriority, tokens[1], size)
	if err != nil {
		return command.Command{}, err
	}

	p, err := domain.ParsePriority(tokens[2])
	if err != nil {
		return command.Command{}, zerr.With(
			zerr.Wrap(err, fmt.Sprintf("%q is not a priority, pick one of: %s", tokens[2], domain.PriorityChoices())),
			"priority", tokens[2])
	}
	return command.SetPriority(index, p), nil
}

func parseIndex(keyword, token string, size int) (int, error) {
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, zerr.With(
			zerr.Wrap(domain.ErrIndexNotNumeric, fmt.Sprintf("the index for your %s command has to be a whole number", keyword)),
			"index", token)
	}
	if err := domain.ValidateIndex(index, size); err != nil {
		return 0, err
	}
	return index, nil
}

func formatError(keyword, message string) error {
	return zerr.With(zerr.Wrap(domain.ErrFormat, message), "keyword", keyword)
}

func datedFormatError(keyword, delimiter string) error {
	return formatError(keyword, fmt.Sprintf(
		"your %s command does not follow the convention: %s <task description>%s<date description>",
		keyword, keyword, delimiter))
}
