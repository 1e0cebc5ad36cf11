package quizgen

import "testing"

const wellFormedQuizText = `QUIZ TITLE: Algebra Foundations

QUESTION 1:
What is the value of x in 2x + 5 = 13?
A) x = 3
B) x = 4
C) x = 5
D) x = 6
CORRECT ANSWER: B
EXPLANATION: Subtract 5 then divide by 2.

QUESTION 2:
Which of these is a quadratic equation?
A) 2x + 3 = 7
B) x + 2 = 5
C) x² + 2x + 1 = 0
D) 3x - 5 = 10
CORRECT ANSWER: C
EXPLANATION: The highest power of x is 2.
`

func TestParseQuizWellFormed(t *testing.T) {
	title, questions := ParseQuiz(wellFormedQuizText)

	if title != "Algebra Foundations" {
		t.Errorf("title = %q, want Algebra Foundations", title)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	if !ValidateQuiz(title, questions, 2) {
		t.Fatal("well-formed quiz should validate")
	}

	q := questions[0]
	if q.Text != "What is the value of x in 2x + 5 = 13?" {
		t.Errorf("question text = %q", q.Text)
	}
	if len(q.Options) != 4 {
		t.Fatalf("options = %d, want 4", len(q.Options))
	}
	if q.CorrectOption != "x = 4" {
		t.Errorf("correct option = %q, want letter B resolved to option text", q.CorrectOption)
	}
	if questions[1].CorrectOption != "x² + 2x + 1 = 0" {
		t.Errorf("second correct option = %q", questions[1].CorrectOption)
	}
}

func TestParseQuizCorrectAnswerAsText(t *testing.T) {
	raw := `QUIZ TITLE: Units
QUESTION 1:
What is the SI unit of force?
A) Newton (N)
B) Joule (J)
C) Watt (W)
D) Pascal (Pa)
CORRECT ANSWER: Newton (N)
EXPLANATION: Force is measured in Newtons.
`
	_, questions := ParseQuiz(raw)
	if len(questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(questions))
	}
	if questions[0].CorrectOption != "Newton (N)" {
		t.Errorf("correct option = %q, want full text preserved", questions[0].CorrectOption)
	}
}

func TestParseQuizIgnoresNoiseLines(t *testing.T) {
	raw := `Here is your quiz!

QUIZ TITLE: Cells

QUESTION 1:
What is the powerhouse of the cell?
A) Mitochondria
B) Nucleus
C) Golgi apparatus
D) Ribosome
CORRECT ANSWER: A
EXPLANATION: Mitochondria produce ATP.

Good luck with your studies!
`
	title, questions := ParseQuiz(raw)
	if !ValidateQuiz(title, questions, 1) {
		t.Fatalf("quiz with surrounding prose should still validate, got title=%q questions=%d", title, len(questions))
	}
}

func TestParseQuizIncompleteLastQuestionDropped(t *testing.T) {
	raw := wellFormedQuizText + `
QUESTION 3:
A) only options
B) no text
`
	_, questions := ParseQuiz(raw)
	// Question 3 has no text line so the builder drops it.
	if len(questions) != 2 {
		t.Errorf("questions = %d, want incomplete trailing question dropped", len(questions))
	}
}

func TestParseQuizEmptyInput(t *testing.T) {
	title, questions := ParseQuiz("")
	if title != "" || len(questions) != 0 {
		t.Errorf("empty input: title=%q questions=%d", title, len(questions))
	}
	if ValidateQuiz(title, questions, 1) {
		t.Error("empty parse result should fail validation")
	}
}

func TestValidateQuizRejections(t *testing.T) {
	good := Question{
		Text:          "q",
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: "a",
		Explanation:   "because",
	}

	tests := []struct {
		name     string
		title    string
		qs       []Question
		expected int
	}{
		{name: "empty title", title: "", qs: []Question{good}, expected: 1},
		{name: "count mismatch", title: "t", qs: []Question{good}, expected: 2},
		{
			name:  "three options",
			title: "t",
			qs: []Question{{
				Text: "q", Options: []string{"a", "b", "c"},
				CorrectOption: "a", Explanation: "e",
			}},
			expected: 1,
		},
		{
			name:  "correct answer not among options",
			title: "t",
			qs: []Question{{
				Text: "q", Options: []string{"a", "b", "c", "d"},
				CorrectOption: "z", Explanation: "e",
			}},
			expected: 1,
		},
		{
			name:  "missing explanation",
			title: "t",
			qs: []Question{{
				Text: "q", Options: []string{"a", "b", "c", "d"},
				CorrectOption: "a",
			}},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ValidateQuiz(tt.title, tt.qs, tt.expected) {
				t.Error("expected validation to reject")
			}
		})
	}
}
