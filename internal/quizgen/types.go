// Package quizgen generates multiple-choice quizzes from generative-service
// output, with line-oriented parsing, strict validation, and a curated
// fallback bank that always yields a quiz of the exact requested size.
package quizgen

import "time"

// Difficulty is a quiz difficulty level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty normalizes a difficulty string, defaulting to
// intermediate for unrecognized values.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return Difficulty(s)
	}
	return DifficultyIntermediate
}

// QuizType labels the cognitive style of a quiz.
type QuizType string

const (
	TypeConceptCheck     QuizType = "concept_check"
	TypeProblemSolving   QuizType = "problem_solving"
	TypeCriticalThinking QuizType = "critical_thinking"
	TypeApplication      QuizType = "application"
)

// ParseQuizType normalizes a quiz type string, defaulting to
// concept_check for unrecognized values.
func ParseQuizType(s string) QuizType {
	switch QuizType(s) {
	case TypeConceptCheck, TypeProblemSolving, TypeCriticalThinking, TypeApplication:
		return QuizType(s)
	}
	return TypeConceptCheck
}

// quizTypeDescriptions feeds the generation prompt.
var quizTypeDescriptions = map[QuizType]string{
	TypeConceptCheck:     "Test understanding of fundamental concepts",
	TypeProblemSolving:   "Apply knowledge to solve problems",
	TypeCriticalThinking: "Analyze and evaluate information",
	TypeApplication:      "Use knowledge in real-world scenarios",
}

// Question is one multiple-choice question. CorrectOption always equals
// one of Options once the question has passed validation.
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Explanation   string   `json:"explanation"`
}

// Quiz is a titled set of questions. Read-only after creation; lifecycle
// status lives on the session's quiz record, not here.
type Quiz struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Subject          string     `json:"subject"`
	Topic            string     `json:"topic"`
	Difficulty       Difficulty `json:"difficulty"`
	QuizType         QuizType   `json:"quiz_type"`
	Questions        []Question `json:"questions"`
	TimeLimitSeconds int        `json:"time_limit_seconds"`

	// Fallback is true when the curated bank supplied the questions.
	Fallback bool `json:"fallback"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Statistics summarizes a quiz's composition for display.
type Statistics struct {
	TotalQuestions int            `json:"total_questions"`
	QuestionTypes  map[string]int `json:"question_types"`
	Difficulty     Difficulty     `json:"difficulty"`
	EstimatedTime  int            `json:"estimated_time"`
	Subject        string         `json:"subject"`
	Topic          string         `json:"topic"`
}
