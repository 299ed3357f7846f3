// Package tui implements the full-screen chat frontend.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/engine/command"
)

const (
	// inputHeight is the number of lines below the conversation: input and help.
	inputHeight = 3
	// headerHeight is the number of lines taken by the title bar.
	headerHeight = 2
)

// Speaker identifies who produced an entry in the conversation.
type Speaker int

const (
	// SpeakerUser marks a line typed by the user.
	SpeakerUser Speaker = iota
	// SpeakerMum marks a response.
	SpeakerMum
)

// Entry is one message in the conversation.
type Entry struct {
	Speaker Speaker
	Text    string
	Failed  bool
}

// Model is the bubbletea model of a chat session.
type Model struct {
	Entries  []Entry
	Input    textinput.Model
	Viewport viewport.Model
	Width    int
	Ready    bool
	Quitting bool

	handle func(line string) domain.Response
}

// NewModel creates a chat model that sends submitted lines to handle.
func NewModel(handle func(line string) domain.Response, prompt string) *Model {
	input := textinput.New()
	input.Prompt = promptStyle.Render(prompt)
	input.Placeholder = "todo buy milk"
	input.Focus()

	return &Model{
		Entries: []Entry{{Speaker: SpeakerMum, Text: command.Greeting}},
		Input:   input,
		handle:  handle,
	}
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.Viewport, cmd = m.Viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// submit sends the current input to the handler and records both sides.
func (m *Model) submit() tea.Cmd {
	line := m.Input.Value()
	if strings.TrimSpace(line) == "" {
		return nil
	}
	m.Input.Reset()

	resp := m.handle(line)
	m.Entries = append(m.Entries,
		Entry{Speaker: SpeakerUser, Text: line},
		Entry{Speaker: SpeakerMum, Text: resp.Text, Failed: resp.Failed},
	)
	m.refresh()

	if !resp.Continue {
		m.Quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) resize(width, height int) {
	m.Width = width
	vpHeight := max(height-headerHeight-inputHeight, 1)

	if !m.Ready {
		m.Viewport = viewport.New(width, vpHeight)
		m.Ready = true
	} else {
		m.Viewport.Width = width
		m.Viewport.Height = vpHeight
	}
	m.Input.Width = max(width-lipgloss.Width(m.Input.Prompt)-1, 1)
	m.refresh()
}

func (m *Model) refresh() {
	if !m.Ready {
		return
	}
	m.Viewport.SetContent(renderConversation(m.Entries, m.Width))
	m.Viewport.GotoBottom()
}
