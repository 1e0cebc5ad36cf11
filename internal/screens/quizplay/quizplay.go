// Package quizplay is the interactive quiz-taking screen. It walks a
// generated quiz through its lifecycle: start on entry, one question at
// a time, grade on the final submission.
package quizplay

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/smartlearn/smartlearn/internal/grader"
	"github.com/smartlearn/smartlearn/internal/quizgen"
	"github.com/smartlearn/smartlearn/internal/session"
	"github.com/smartlearn/smartlearn/internal/ui/components"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseReveal
	phaseResult
	phaseError
)

type tickMsg time.Time

// Model is the bubbletea model for one quiz attempt.
type Model struct {
	sess   *session.Session
	quiz   *quizgen.Quiz
	record *session.QuizRecord

	phase    phase
	index    int
	choice   components.MultiChoice
	answers  []string
	result   *grader.Result
	deadline time.Time
	now      time.Time
	errMsg   string
}

// New builds the model. The quiz must already be registered in the
// session (generated state); Init performs the start transition.
func New(sess *session.Session, quiz *quizgen.Quiz) *Model {
	return &Model{sess: sess, quiz: quiz}
}

func (m *Model) Init() tea.Cmd {
	record, err := m.sess.Start(m.quiz.ID)
	if err != nil {
		m.phase = phaseError
		m.errMsg = err.Error()
		return nil
	}
	m.record = record
	if deadline, ok := record.Deadline(); ok {
		m.deadline = deadline
	}
	m.now = time.Now()
	m.choice = newChoice(m.quiz.Questions[0])
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func newChoice(q quizgen.Question) components.MultiChoice {
	correct := 0
	for i, opt := range q.Options {
		if opt == q.CorrectOption {
			correct = i
			break
		}
	}
	return components.NewMultiChoice(q.Text, q.Options, correct)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		if m.phase == phaseResult || m.phase == phaseError {
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "esc" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseQuestion:
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			m.answers = append(m.answers, m.choice.Value())
			m.phase = phaseReveal
		}
		return m, cmd

	case phaseReveal:
		// Any key advances.
		m.index++
		if m.index >= len(m.quiz.Questions) {
			return m.finish()
		}
		m.choice = newChoice(m.quiz.Questions[m.index])
		m.phase = phaseQuestion
		return m, nil

	case phaseResult, phaseError:
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) finish() (tea.Model, tea.Cmd) {
	result, err := m.sess.Complete(m.quiz.ID, m.answers)
	if err != nil {
		m.phase = phaseError
		m.errMsg = err.Error()
		return m, nil
	}
	m.sess.RecordQuizAttempt(m.quiz.Subject, m.quiz, result.ScorePercentage, result.TimeTakenSeconds)
	m.result = result
	m.phase = phaseResult
	return m, nil
}

// Result returns the grade after the quiz completed, or nil.
func (m *Model) Result() *grader.Result {
	return m.result
}

// Run plays the quiz in a terminal program and returns the grade.
func Run(sess *session.Session, quiz *quizgen.Quiz) (*grader.Result, error) {
	model := New(sess, quiz)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("run quiz: %w", err)
	}
	if model.errMsg != "" {
		return nil, fmt.Errorf("quiz aborted: %s", model.errMsg)
	}
	return model.result, nil
}
