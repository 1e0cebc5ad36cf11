package quizgen

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = "You are SmartLearn, an expert quiz creator for African high school students. " +
	"Create engaging, curriculum-aligned multiple-choice questions."

// difficultyComplexity describes each level for the generation prompt.
var difficultyComplexity = map[Difficulty]string{
	DifficultyBeginner:     "basic",
	DifficultyIntermediate: "moderate",
	DifficultyAdvanced:     "challenging",
}

// buildQuizPrompt assembles the user message for quiz generation. The
// response format section mirrors exactly what ParseQuiz recognizes.
func buildQuizPrompt(subject, topic string, difficulty Difficulty, quizType QuizType, count int) string {
	complexity, ok := difficultyComplexity[difficulty]
	if !ok {
		complexity = difficultyComplexity[DifficultyIntermediate]
	}
	typeDesc, ok := quizTypeDescriptions[quizType]
	if !ok {
		typeDesc = quizTypeDescriptions[TypeConceptCheck]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s level quiz for %s focusing on %s.\n\n", difficulty, subject, topic)

	b.WriteString("QUIZ REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Number of questions: %d\n", count)
	fmt.Fprintf(&b, "- Quiz type: %s (%s)\n", quizType, typeDesc)
	fmt.Fprintf(&b, "- Difficulty: %s (suitable for %s understanding)\n", difficulty, complexity)
	b.WriteString("- Format: Multiple choice with 4 options (A, B, C, D)\n")
	b.WriteString("- Target audience: African high school students (KCSE/WAEC level)\n\n")

	b.WriteString(`QUESTION GUIDELINES:
1. Questions should be clear and unambiguous
2. All options should be plausible but only one correct
3. Include explanations for correct answers
4. Vary question types and cognitive levels
5. Use real-world examples relevant to African context when possible

RESPONSE FORMAT:
Structure your response exactly as follows:

QUIZ TITLE: [Engaging quiz title]

QUESTION 1:
[Question text]
A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]
CORRECT ANSWER: [A/B/C/D]
EXPLANATION: [Brief explanation of why this is correct]

`)
	fmt.Fprintf(&b, "[Continue for all %d questions]\n", count)

	return b.String()
}
