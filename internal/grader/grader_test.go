package grader

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/smartlearn/smartlearn/internal/quizgen"
)

func threeQuestionQuiz(subject string) *quizgen.Quiz {
	return &quizgen.Quiz{
		ID:         "q1",
		Title:      "Test Quiz",
		Subject:    subject,
		Topic:      "Topic",
		Difficulty: quizgen.DifficultyIntermediate,
		Questions: []quizgen.Question{
			{Text: "q1", Options: []string{"a", "x", "y", "z"}, CorrectOption: "a", Explanation: "e1"},
			{Text: "q2", Options: []string{"b", "x", "y", "z"}, CorrectOption: "b", Explanation: "e2"},
			{Text: "q3", Options: []string{"c", "x", "y", "z"}, CorrectOption: "c", Explanation: "e3"},
		},
	}
}

func TestGradePartialCredit(t *testing.T) {
	quiz := threeQuestionQuiz("Geography")

	res, err := Grade(quiz, []string{"a", "x", "c"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	if res.Correct != 2 || res.Total != 3 {
		t.Errorf("correct/total = %d/%d, want 2/3", res.Correct, res.Total)
	}
	if math.Abs(res.ScorePercentage-66.6667) > 0.01 {
		t.Errorf("score = %f, want ~66.67", res.ScorePercentage)
	}
	if res.PerQuestion[1].IsCorrect {
		t.Error("question 2 should be marked incorrect")
	}
	if res.PerQuestion[1].Selected != "x" || res.PerQuestion[1].CorrectAnswer != "b" {
		t.Errorf("per-question record = %+v", res.PerQuestion[1])
	}
	if res.PerQuestion[0].Number != 1 {
		t.Errorf("question numbering starts at %d, want 1", res.PerQuestion[0].Number)
	}
}

func TestGradeAnswerCountMismatch(t *testing.T) {
	quiz := threeQuestionQuiz("History")

	_, err := Grade(quiz, []string{"a", "b"})
	if err == nil {
		t.Fatal("expected error for short answer list")
	}
	var mismatch *AnswerCountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error type = %T", err)
	}
	if mismatch.Expected != 3 || mismatch.Got != 2 {
		t.Errorf("mismatch = %+v", mismatch)
	}
}

func TestGradeExactStringEquality(t *testing.T) {
	quiz := threeQuestionQuiz("History")

	// Case and whitespace differences are misses; no normalization.
	res, err := Grade(quiz, []string{"A", " a", "c "})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Correct != 0 {
		t.Errorf("correct = %d, want 0 under exact comparison", res.Correct)
	}
}

func TestGradePerfectAndZero(t *testing.T) {
	quiz := threeQuestionQuiz("History")

	perfect, err := Grade(quiz, []string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if perfect.ScorePercentage != 100 {
		t.Errorf("perfect score = %f", perfect.ScorePercentage)
	}

	zero, err := Grade(quiz, []string{"z", "z", "z"})
	if err != nil {
		t.Fatal(err)
	}
	if zero.ScorePercentage != 0 {
		t.Errorf("zero score = %f", zero.ScorePercentage)
	}
}

func TestFeedbackTierBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Excellent work"},
		{90, "Excellent work"},
		{89.9, "Great job"},
		{80, "Great job"},
		{79.9, "Good effort"},
		{70, "Good effort"},
		{60, "making progress"},
		{59.9, "needs more attention"},
		{0, "needs more attention"},
	}

	for _, tt := range tests {
		fb := feedbackFor(tt.score, "Geography")
		if len(fb) != 2 {
			t.Fatalf("score %v: feedback lines = %d, want 2", tt.score, len(fb))
		}
		if !strings.Contains(fb[0], tt.want) {
			t.Errorf("score %v: feedback = %q, want prefix containing %q", tt.score, fb[0], tt.want)
		}
	}
}

func TestFeedbackSubjectTip(t *testing.T) {
	fb := feedbackFor(85, "Mathematics")
	if len(fb) != 3 {
		t.Fatalf("feedback lines = %d, want tier pair plus subject tip", len(fb))
	}
	if !strings.Contains(fb[2], "mathematical thinking") {
		t.Errorf("subject tip = %q", fb[2])
	}

	// Unknown subject gets no extra tip.
	if fb := feedbackFor(85, "Geography"); len(fb) != 2 {
		t.Errorf("unknown subject feedback lines = %d, want 2", len(fb))
	}
}
