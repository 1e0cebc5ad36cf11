package analytics

import (
	"fmt"
	"sort"

	"github.com/smartlearn/smartlearn/internal/session"
)

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// RecommendationType labels what a recommendation asks the learner to do.
type RecommendationType string

const (
	TypeSubjectFocus     RecommendationType = "subject_focus"
	TypeTopicExploration RecommendationType = "topic_exploration"
	TypeGapFilling       RecommendationType = "gap_filling"
	TypeQuizPractice     RecommendationType = "quiz_practice"
	TypeQuizAdvancement  RecommendationType = "quiz_advancement"
	TypeEngagement       RecommendationType = "engagement"
)

// Recommendation is one ranked suggestion.
type Recommendation struct {
	Type        RecommendationType `json:"type"`
	Priority    Priority           `json:"priority"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Action      string             `json:"action"`
	Subject     string             `json:"subject"`
}

// maxRecommendations caps the ranked list.
const maxRecommendations = 5

// engagementQuestionFloor is the question count below which the
// engagement nudge is added.
const engagementQuestionFloor = 5

// Recommendations builds the ranked suggestion list. Candidates are
// evaluated in a fixed order, stably sorted by priority (high before
// medium, ties keep evaluation order), and truncated to five.
func Recommendations(s *session.Session) []Recommendation {
	var recs []Recommendation

	if weak := WeakSubjects(s); len(weak) > 0 {
		recs = append(recs, Recommendation{
			Type:        TypeSubjectFocus,
			Priority:    PriorityHigh,
			Title:       fmt.Sprintf("Focus on %s", weak[0]),
			Description: fmt.Sprintf("You've shown some challenges in %s. Consider reviewing fundamental concepts.", weak[0]),
			Action:      fmt.Sprintf("Take a beginner quiz on %s basics", weak[0]),
			Subject:     weak[0],
		})
	}

	if unexplored := UnexploredTopics(s); len(unexplored) > 0 {
		recs = append(recs, Recommendation{
			Type:        TypeTopicExploration,
			Priority:    PriorityMedium,
			Title:       fmt.Sprintf("Explore %s", unexplored[0]),
			Description: fmt.Sprintf("You haven't covered %s yet. This could expand your knowledge.", unexplored[0]),
			Action:      fmt.Sprintf("Generate a quiz on %s", unexplored[0]),
			Subject:     "General",
		})
	}

	if gaps := LearningGaps(s); len(gaps) > 0 {
		recs = append(recs, Recommendation{
			Type:        TypeGapFilling,
			Priority:    PriorityHigh,
			Title:       "Fill Knowledge Gaps",
			Description: fmt.Sprintf("Review %s to strengthen your foundation.", gaps[0]),
			Action:      fmt.Sprintf("Practice %s concepts with targeted quizzes", gaps[0]),
			Subject:     "General",
		})
	}

	performance := QuizPerformance(s)
	if len(performance.LowPerformanceAreas) > 0 {
		topic := performance.LowPerformanceAreas[0]
		recs = append(recs, Recommendation{
			Type:        TypeQuizPractice,
			Priority:    PriorityHigh,
			Title:       fmt.Sprintf("Practice %s", topic),
			Description: fmt.Sprintf("Your quiz performance in %s suggests you need more practice.", topic),
			Action:      fmt.Sprintf("Take more quizzes on %s", topic),
			Subject:     "General",
		})
	}
	if len(performance.StrengthAreas) > 0 {
		topic := performance.StrengthAreas[0]
		recs = append(recs, Recommendation{
			Type:        TypeQuizAdvancement,
			Priority:    PriorityMedium,
			Title:       fmt.Sprintf("Advance in %s", topic),
			Description: fmt.Sprintf("You're doing well in %s. Try more challenging questions.", topic),
			Action:      fmt.Sprintf("Take an advanced quiz on %s", topic),
			Subject:     "General",
		})
	}

	if len(s.Questions) < engagementQuestionFloor {
		recs = append(recs, Recommendation{
			Type:        TypeEngagement,
			Priority:    PriorityMedium,
			Title:       "Build Learning Momentum",
			Description: "Start with simple questions to build confidence.",
			Action:      "Ask any question that comes to mind",
			Subject:     "General",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank(recs[i].Priority) > priorityRank(recs[j].Priority)
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	}
	return 1
}
