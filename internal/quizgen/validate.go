package quizgen

// optionCount is the fixed number of options per question.
const optionCount = 4

// ValidateQuiz reports whether a parsed title and question set form a
// usable quiz of exactly expectedCount questions. Any violation is a
// hard rejection; the caller must fall back.
func ValidateQuiz(title string, questions []Question, expectedCount int) bool {
	if title == "" {
		return false
	}
	if len(questions) != expectedCount {
		return false
	}
	for _, q := range questions {
		if !validQuestion(q) {
			return false
		}
	}
	return true
}

func validQuestion(q Question) bool {
	if q.Text == "" {
		return false
	}
	if len(q.Options) != optionCount {
		return false
	}
	if q.CorrectOption == "" || q.Explanation == "" {
		return false
	}
	for _, opt := range q.Options {
		if opt == q.CorrectOption {
			return true
		}
	}
	return false
}
