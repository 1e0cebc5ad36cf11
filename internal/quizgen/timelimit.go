package quizgen

// Per-question time allowances in seconds, plus a fixed buffer added to
// every quiz.
var secondsPerQuestion = map[Difficulty]int{
	DifficultyBeginner:     90,
	DifficultyIntermediate: 75,
	DifficultyAdvanced:     60,
}

const bufferSeconds = 300

// TimeLimit computes the time limit in seconds for a quiz. Harder
// quizzes get less time per question; everyone gets the same buffer.
func TimeLimit(difficulty Difficulty, questionCount int) int {
	per, ok := secondsPerQuestion[difficulty]
	if !ok {
		per = secondsPerQuestion[DifficultyIntermediate]
	}
	return questionCount*per + bufferSeconds
}
