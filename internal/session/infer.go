package session

import "strings"

// Inferred difficulty labels for questions. Distinct from quiz
// difficulty: these classify what the learner asked, not what was
// generated for them.
const (
	DifficultyBasic        = "basic"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// topicKeywords maps each subject to its keyword list. The first keyword
// found in the question text, checked in list order, names the topic.
var topicKeywords = map[string][]string{
	"Mathematics": {"algebra", "geometry", "calculus", "trigonometry", "statistics"},
	"Physics":     {"mechanics", "electricity", "waves", "optics", "thermodynamics"},
	"Biology":     {"cell", "genetics", "ecology", "evolution", "anatomy"},
	"Chemistry":   {"organic", "inorganic", "physical", "analytical", "biochemistry"},
	"History":     {"ancient", "medieval", "modern", "african", "world"},
	"Geography":   {"physical", "human", "economic", "political", "climate"},
}

// advancedVerbs flag a question as advanced regardless of length.
var advancedVerbs = []string{"prove", "derive", "calculate", "solve", "analyze", "compare", "explain why"}

// longQuestionWords is the word count above which an unflagged question
// counts as intermediate rather than basic.
const longQuestionWords = 15

// InferTopic finds the first subject keyword present in the question,
// case-insensitive, defaulting to General.
func InferTopic(subject, question string) string {
	lower := strings.ToLower(question)
	for _, keyword := range topicKeywords[subject] {
		if strings.Contains(lower, keyword) {
			return strings.ToUpper(keyword[:1]) + keyword[1:]
		}
	}
	return "General"
}

// InferDifficulty classifies a question as advanced, intermediate, or
// basic from analytical verbs and length.
func InferDifficulty(question string) string {
	lower := strings.ToLower(question)
	for _, verb := range advancedVerbs {
		if strings.Contains(lower, verb) {
			return DifficultyAdvanced
		}
	}
	if len(strings.Fields(question)) > longQuestionWords {
		return DifficultyIntermediate
	}
	return DifficultyBasic
}
