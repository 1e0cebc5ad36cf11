package quizgen

import "strings"

// Line markers recognized by the quiz parser. The generation prompt
// instructs the model to emit exactly this shape.
const (
	titleMarker       = "QUIZ TITLE:"
	questionMarker    = "QUESTION"
	correctMarker     = "CORRECT ANSWER:"
	explanationMarker = "EXPLANATION:"
)

var optionMarkers = []string{"A)", "B)", "C)", "D)"}

// ParseQuiz extracts a title and questions from line-oriented provider
// output. Tolerant of blank lines and unrecognized lines; malformed
// input yields a partial result that validation rejects. Never errors.
func ParseQuiz(raw string) (title string, questions []Question) {
	var cur questionBuilder

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if after, ok := strings.CutPrefix(line, titleMarker); ok {
			title = strings.TrimSpace(after)
			continue
		}

		if strings.HasPrefix(line, questionMarker) && strings.Contains(line, ":") {
			if q, ok := cur.flush(); ok {
				questions = append(questions, q)
			}
			cur = questionBuilder{active: true}
			continue
		}

		if isOption(line) {
			cur.options = append(cur.options, strings.TrimSpace(line[2:]))
			continue
		}

		if after, ok := strings.CutPrefix(line, correctMarker); ok {
			cur.correct = strings.TrimSpace(after)
			continue
		}

		if after, ok := strings.CutPrefix(line, explanationMarker); ok {
			cur.explanation = strings.TrimSpace(after)
			continue
		}

		// First unmarked, non-blank line after a question header is the
		// question text. Anything else is ignored.
		if cur.active && cur.text == "" && line != "" {
			cur.text = line
		}
	}

	if q, ok := cur.flush(); ok {
		questions = append(questions, q)
	}

	return title, questions
}

func isOption(line string) bool {
	for _, m := range optionMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

// questionBuilder accumulates one question between QUESTION markers.
type questionBuilder struct {
	active      bool
	text        string
	options     []string
	correct     string
	explanation string
}

// flush finalizes the in-progress question. The correct answer is
// resolved from a bare letter (A-D) to the option text it names; an
// answer already written as option text passes through unchanged.
func (b *questionBuilder) flush() (Question, bool) {
	if !b.active || b.text == "" {
		return Question{}, false
	}

	return Question{
		Text:          b.text,
		Options:       b.options,
		CorrectOption: resolveCorrect(b.correct, b.options),
		Explanation:   b.explanation,
	}, true
}

// resolveCorrect maps a letter answer to its option text. Unresolvable
// answers are returned as-is and left to validation.
func resolveCorrect(answer string, options []string) string {
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) == 1 {
		idx := int(trimmed[0] - 'A')
		if idx < 0 {
			idx = int(trimmed[0] - 'a')
		}
		if idx >= 0 && idx < len(options) {
			return options[idx]
		}
	}
	return trimmed
}
