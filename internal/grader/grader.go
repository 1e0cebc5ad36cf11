// Package grader scores completed quiz attempts and produces tiered
// feedback.
package grader

import (
	"fmt"

	"github.com/smartlearn/smartlearn/internal/quizgen"
)

// AnswerCountMismatchError reports a grading call with the wrong number
// of answers. A validation error for the caller, not fatal to the session.
type AnswerCountMismatchError struct {
	Expected int
	Got      int
}

func (e *AnswerCountMismatchError) Error() string {
	return fmt.Sprintf("answer count mismatch: quiz has %d questions, got %d answers", e.Expected, e.Got)
}

// QuestionResult records the outcome of one question.
type QuestionResult struct {
	Number        int      `json:"number"`
	Question      string   `json:"question"`
	Selected      string   `json:"selected"`
	CorrectAnswer string   `json:"correct_answer"`
	IsCorrect     bool     `json:"is_correct"`
	Explanation   string   `json:"explanation"`
	Options       []string `json:"options"`
}

// Result is the scored outcome of a completed quiz attempt.
type Result struct {
	Total           int                `json:"total"`
	Correct         int                `json:"correct"`
	Incorrect       int                `json:"incorrect"`
	ScorePercentage float64            `json:"score_percentage"`
	PerQuestion     []QuestionResult   `json:"per_question"`
	Feedback        []string           `json:"feedback"`
	Subject         string             `json:"subject"`
	Topic           string             `json:"topic"`
	Difficulty      quizgen.Difficulty `json:"difficulty"`

	// TimeTakenSeconds is filled in by the lifecycle layer, not here.
	TimeTakenSeconds int `json:"time_taken_seconds"`
}

// Grade scores answers against a quiz. Comparison is exact string
// equality with the stored correct option; no normalization, so option
// text must round-trip unchanged from generation to submission.
func Grade(quiz *quizgen.Quiz, answers []string) (*Result, error) {
	if len(answers) != len(quiz.Questions) {
		return nil, &AnswerCountMismatchError{Expected: len(quiz.Questions), Got: len(answers)}
	}

	res := &Result{
		Total:      len(quiz.Questions),
		Subject:    quiz.Subject,
		Topic:      quiz.Topic,
		Difficulty: quiz.Difficulty,
	}

	for i, q := range quiz.Questions {
		correct := answers[i] == q.CorrectOption
		if correct {
			res.Correct++
		} else {
			res.Incorrect++
		}
		res.PerQuestion = append(res.PerQuestion, QuestionResult{
			Number:        i + 1,
			Question:      q.Text,
			Selected:      answers[i],
			CorrectAnswer: q.CorrectOption,
			IsCorrect:     correct,
			Explanation:   q.Explanation,
			Options:       q.Options,
		})
	}

	res.ScorePercentage = 100 * float64(res.Correct) / float64(res.Total)
	res.Feedback = feedbackFor(res.ScorePercentage, quiz.Subject)

	return res, nil
}
