package grader

// feedbackTier pairs a minimum score (inclusive) with its two feedback
// lines. Tiers are checked top-down; first match wins.
type feedbackTier struct {
	minScore float64
	lines    [2]string
}

var feedbackTiers = []feedbackTier{
	{
		minScore: 90,
		lines: [2]string{
			"Excellent work! You've mastered this topic.",
			"Consider exploring more advanced concepts in this subject.",
		},
	},
	{
		minScore: 80,
		lines: [2]string{
			"Great job! You have a solid understanding of this topic.",
			"Review the incorrect answers to strengthen your knowledge.",
		},
	},
	{
		minScore: 70,
		lines: [2]string{
			"Good effort! You're on the right track.",
			"Focus on the areas where you made mistakes.",
		},
	},
	{
		minScore: 60,
		lines: [2]string{
			"You're making progress, but there's room for improvement.",
			"Review the fundamental concepts before moving forward.",
		},
	},
	{
		minScore: 0,
		lines: [2]string{
			"This topic needs more attention.",
			"Consider reviewing the basics and asking the tutor for help.",
		},
	},
}

// subjectTips is the extra line appended for known subjects.
var subjectTips = map[string]string{
	"Mathematics": "Practice more problems to improve your mathematical thinking.",
	"Physics":     "Focus on understanding the underlying principles.",
	"Biology":     "Try to connect concepts to real-world examples.",
}

// feedbackFor builds the feedback lines for a score. Tier boundaries are
// inclusive on the lower bound: exactly 80 lands in the 80 tier.
func feedbackFor(score float64, subject string) []string {
	var feedback []string
	for _, tier := range feedbackTiers {
		if score >= tier.minScore {
			feedback = append(feedback, tier.lines[0], tier.lines[1])
			break
		}
	}
	if tip, ok := subjectTips[subject]; ok {
		feedback = append(feedback, tip)
	}
	return feedback
}
