package quizplay

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/smartlearn/smartlearn/internal/ui/components"
	"github.com/smartlearn/smartlearn/internal/ui/theme"
)

const viewWidth = 60

func (m *Model) View() tea.View {
	switch m.phase {
	case phaseError:
		return tea.NewView(theme.Incorrect.Render("Error: "+m.errMsg) + "\n" + theme.Hint.Render("press any key to exit") + "\n")
	case phaseResult:
		return tea.NewView(m.resultView())
	default:
		return tea.NewView(m.questionView())
	}
}

func (m *Model) questionView() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(m.quiz.Title) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · %s · %s", m.quiz.Subject, m.quiz.Topic, m.quiz.Difficulty)) + "\n\n")

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", m.index+1, len(m.quiz.Questions)),
		float64(m.index)/float64(len(m.quiz.Questions)),
		false, viewWidth)
	b.WriteString(progress.View() + "\n")

	if !m.deadline.IsZero() {
		remaining := m.deadline.Sub(m.now).Round(time.Second)
		if remaining < 0 {
			remaining = 0
		}
		b.WriteString(theme.Hint.Render("time remaining: "+remaining.String()) + "\n")
	}
	b.WriteString("\n" + m.choice.View())

	if m.phase == phaseReveal {
		q := m.quiz.Questions[m.index]
		b.WriteString("\n" + theme.Body.Render(q.Explanation) + "\n")
		b.WriteString(theme.Hint.Render("press any key to continue") + "\n")
	}

	return b.String()
}

func (m *Model) resultView() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Quiz Complete") + "\n\n")

	score := components.NewProgressBar(
		fmt.Sprintf("Score %d/%d", m.result.Correct, m.result.Total),
		m.result.ScorePercentage/100,
		true, viewWidth)
	b.WriteString(score.View() + "\n\n")

	for _, line := range m.result.Feedback {
		b.WriteString(theme.Body.Render("• "+line) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("press any key to exit") + "\n")
	return b.String()
}
