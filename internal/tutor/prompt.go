package tutor

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are SmartLearn, an expert tutor for African high school students. " +
	"Provide clear, engaging explanations aligned with KCSE/WAEC curricula. " +
	"Respond with a single JSON object and nothing else."

// teachingStyles maps each subject to the pedagogy used in its prompts.
var teachingStyles = map[string]string{
	"Mathematics": "step-by-step problem solving with clear explanations",
	"Physics":     "conceptual understanding with real-world examples",
	"Chemistry":   "molecular visualization with practical applications",
	"Biology":     "life science connections with African context",
	"History":     "narrative storytelling with critical analysis",
	"Geography":   "spatial thinking with local and global perspectives",
	"English":     "language development with cultural context",
	"General":     "interactive learning with practical examples",
}

// curriculumFrameworks names the exam boards the content aligns with.
var curriculumFrameworks = map[string]string{
	"KCSE":  "Kenya Certificate of Secondary Education",
	"WAEC":  "West African Examinations Council",
	"IGCSE": "International General Certificate of Secondary Education",
}

// TeachingStyle returns the teaching style for a subject, defaulting to
// the General style for unknown subjects.
func TeachingStyle(subject string) string {
	if s, ok := teachingStyles[subject]; ok {
		return s
	}
	return teachingStyles["General"]
}

// buildAnswerPrompt assembles the user message for answer generation.
func buildAnswerPrompt(subject, question string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are tutoring %s for African high school students (ages 14-18).\n\n", subject)
	fmt.Fprintf(&b, "STUDENT QUESTION: %s\n\n", question)
	fmt.Fprintf(&b, "Teaching style: %s\n", TeachingStyle(subject))
	fmt.Fprintf(&b, "Curriculum: %s\n\n", curriculumFrameworks["KCSE"])

	b.WriteString(`Teach the concept completely. Do not just acknowledge the question.

Respond with a JSON object containing exactly these fields:
  "key_points": list of 3-4 main concepts (strings)
  "step_by_step": a complete explanation in simple, clear terms with examples and analogies
  "real_world_example": one specific, practical example relevant to African context or daily life
  "common_mistakes": list of 2-3 common errors and how to avoid them
  "additional_tips": list of 1-2 study tips or memory aids`)

	return b.String()
}
