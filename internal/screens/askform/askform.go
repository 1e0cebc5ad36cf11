// Package askform is the interactive ask-a-question screen: subject
// selection, question entry, then the tutor's structured answer.
package askform

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/smartlearn/smartlearn/internal/session"
	"github.com/smartlearn/smartlearn/internal/tutor"
	"github.com/smartlearn/smartlearn/internal/ui/components"
	"github.com/smartlearn/smartlearn/internal/ui/theme"
)

// Subjects offered in the picker, in display order.
var Subjects = []string{
	"Mathematics", "Physics", "Chemistry", "Biology",
	"History", "Geography", "English", "General",
}

type phase int

const (
	phaseSubject phase = iota
	phaseQuestion
	phaseWaiting
	phaseAnswer
)

type answerMsg struct {
	answer *tutor.Answer
}

// Model is the bubbletea model for the ask flow.
type Model struct {
	svc  *tutor.Service
	sess *session.Session

	phase    phase
	selected int
	subject  string
	input    components.TextInput
	answer   *tutor.Answer
}

// New builds the ask form.
func New(svc *tutor.Service, sess *session.Session) *Model {
	return &Model{
		svc:   svc,
		sess:  sess,
		input: components.NewTextInput("Type your question...", 200),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		m.answer = msg.answer
		m.sess.AddQuestion(m.subject, strings.TrimSpace(m.input.Value()), msg.answer.Record)
		m.phase = phaseAnswer
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseQuestion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "esc" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSubject:
		switch key {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(Subjects)-1 {
				m.selected++
			}
		case "enter":
			m.subject = Subjects[m.selected]
			m.phase = phaseQuestion
			return m, m.input.Init()
		}
		return m, nil

	case phaseQuestion:
		if key == "enter" {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.phase = phaseWaiting
			return m, m.ask(question)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseAnswer:
		return m, tea.Quit
	}

	return m, nil
}

// ask fetches the answer off the update loop.
func (m *Model) ask(question string) tea.Cmd {
	subject := m.subject
	return func() tea.Msg {
		return answerMsg{answer: m.svc.Answer(context.Background(), subject, question)}
	}
}

func (m *Model) View() tea.View {
	var b strings.Builder

	switch m.phase {
	case phaseSubject:
		b.WriteString(theme.Title.Render("Ask SmartLearn") + "\n\n")
		b.WriteString(theme.Body.Render("Pick a subject:") + "\n\n")
		for i, subject := range Subjects {
			line := "  " + subject
			if i == m.selected {
				line = "▸ " + subject
				b.WriteString(theme.Selected.Render(line) + "\n")
				continue
			}
			b.WriteString(theme.Unselected.Render(line) + "\n")
		}

	case phaseQuestion:
		b.WriteString(theme.Title.Render(m.subject) + "\n\n")
		b.WriteString(m.input.View() + "\n")

	case phaseWaiting:
		b.WriteString(theme.Hint.Render("Thinking...") + "\n")

	case phaseAnswer:
		b.WriteString(m.answer.Markdown)
		if m.answer.Fallback {
			b.WriteString("\n" + theme.Hint.Render("(offline study notes; the tutor service was unavailable)") + "\n")
		}
		b.WriteString("\n" + theme.Hint.Render("press any key to exit") + "\n")
	}

	return tea.NewView(b.String())
}

// Run drives the ask flow in a terminal program and returns the answer.
func Run(svc *tutor.Service, sess *session.Session) (*tutor.Answer, error) {
	model := New(svc, sess)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("run ask form: %w", err)
	}
	return model.answer, nil
}
