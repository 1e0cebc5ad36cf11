package quizgen

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// fallbackQuestions is the curated question catalog keyed by subject and
// topic. Every entry satisfies question validation.
var fallbackQuestions = map[string]map[string][]Question{
	"Mathematics": {
		"Algebra": {
			{
				Text:          "What is the value of x in the equation 2x + 5 = 13?",
				Options:       []string{"x = 3", "x = 4", "x = 5", "x = 6"},
				CorrectOption: "x = 4",
				Explanation:   "Subtract 5 from both sides: 2x = 8, then divide by 2: x = 4",
			},
			{
				Text:          "Which of the following is a quadratic equation?",
				Options:       []string{"2x + 3 = 7", "x² + 2x + 1 = 0", "3x - 5 = 10", "x + 2 = 5"},
				CorrectOption: "x² + 2x + 1 = 0",
				Explanation:   "A quadratic equation has the highest power of x as 2 (x²)",
			},
		},
		"Geometry": {
			{
				Text:          "What is the area of a circle with radius 5 units?",
				Options:       []string{"25π", "50π", "75π", "100π"},
				CorrectOption: "25π",
				Explanation:   "Area = πr² = π × 5² = 25π square units",
			},
		},
	},
	"Physics": {
		"Mechanics": {
			{
				Text:          "What is the SI unit of force?",
				Options:       []string{"Newton (N)", "Joule (J)", "Watt (W)", "Pascal (Pa)"},
				CorrectOption: "Newton (N)",
				Explanation:   "Force is measured in Newtons (N) in the SI system",
			},
			{
				Text:          "A body continues in its state of rest or uniform motion unless acted on by what?",
				Options:       []string{"An external force", "Gravity alone", "Friction alone", "Its own inertia"},
				CorrectOption: "An external force",
				Explanation:   "Newton's first law: only an external force changes a body's state of motion",
			},
		},
	},
	"Biology": {
		"Cell Biology": {
			{
				Text:          "What is the powerhouse of the cell?",
				Options:       []string{"Mitochondria", "Nucleus", "Golgi apparatus", "Endoplasmic reticulum"},
				CorrectOption: "Mitochondria",
				Explanation:   "Mitochondria produce energy through cellular respiration",
			},
		},
		"Genetics": {
			{
				Text:          "What molecule carries genetic information in most living organisms?",
				Options:       []string{"DNA", "RNA", "Protein", "Glucose"},
				CorrectOption: "DNA",
				Explanation:   "DNA stores the hereditary instructions passed from parent to offspring",
			},
		},
	},
	"Chemistry": {
		"Atomic Structure": {
			{
				Text:          "Which particle in an atom carries a negative charge?",
				Options:       []string{"Electron", "Proton", "Neutron", "Nucleus"},
				CorrectOption: "Electron",
				Explanation:   "Electrons orbit the nucleus and carry a single negative charge",
			},
		},
	},
}

// FallbackQuiz builds a quiz from the curated catalog. Topic lookup
// falls through to any topic under the subject, then to a synthesized
// generic question, so the result always has exactly count questions.
func FallbackQuiz(subject, topic string, difficulty Difficulty, count int) *Quiz {
	pool := fallbackPool(subject, topic)

	// Cycle the pool, preserving order, until count is reached.
	questions := make([]Question, 0, count)
	for len(questions) < count {
		questions = append(questions, pool...)
	}
	questions = questions[:count]

	return &Quiz{
		ID:               uuid.NewString(),
		Title:            fmt.Sprintf("%s - %s Quiz (%s)", subject, topic, capitalize(string(difficulty))),
		Subject:          subject,
		Topic:            topic,
		Difficulty:       difficulty,
		QuizType:         TypeConceptCheck,
		Questions:        questions,
		TimeLimitSeconds: TimeLimit(difficulty, count),
		Fallback:         true,
		GeneratedAt:      time.Now().UTC(),
	}
}

// fallbackPool selects the question pool for a subject/topic pair.
func fallbackPool(subject, topic string) []Question {
	byTopic := fallbackQuestions[subject]

	if pool := byTopic[topic]; len(pool) > 0 {
		return pool
	}

	// Any topic under the subject, in a stable order.
	if len(byTopic) > 0 {
		var topics []string
		for t := range byTopic {
			topics = append(topics, t)
		}
		sort.Strings(topics)
		for _, t := range topics {
			if pool := byTopic[t]; len(pool) > 0 {
				return pool
			}
		}
	}

	// Nothing curated for this subject: synthesize one placeholder.
	return []Question{
		{
			Text:          fmt.Sprintf("What is the main focus of %s in %s?", topic, subject),
			Options:       []string{"Basic concepts", "Advanced theories", "Practical applications", "Historical development"},
			CorrectOption: "Basic concepts",
			Explanation:   fmt.Sprintf("%s covers fundamental concepts in %s", topic, subject),
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
