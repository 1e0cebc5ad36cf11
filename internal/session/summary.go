package session

import (
	"math"
	"sort"
	"time"
)

// ProgressSummary aggregates the session for display.
type ProgressSummary struct {
	TotalQuestions         int      `json:"total_questions"`
	TotalQuizzes           int      `json:"total_quizzes"`
	AverageQuizScore       float64  `json:"average_quiz_score"`
	SubjectsExplored       []string `json:"subjects_explored"`
	Plan                   string   `json:"plan"`
	QuizGenerations        int      `json:"quiz_generations"`
	FreeQuizLimit          int      `json:"free_quiz_limit"`
	SessionDurationMinutes int      `json:"session_duration_minutes"`
	MostActiveSubject      string   `json:"most_active_subject"`
	QuizzesGenerated       int      `json:"quizzes_generated"`
	BestPerformingSubject  string   `json:"best_performing_subject"`
}

// Summary builds the progress summary for the session.
func (s *Session) Summary() ProgressSummary {
	var scoreSum float64
	for _, a := range s.QuizAttempts {
		scoreSum += a.Score
	}
	avg := 0.0
	if len(s.QuizAttempts) > 0 {
		avg = math.Round(scoreSum/float64(len(s.QuizAttempts))*100) / 100
	}

	return ProgressSummary{
		TotalQuestions:         len(s.Questions),
		TotalQuizzes:           len(s.QuizAttempts),
		AverageQuizScore:       avg,
		SubjectsExplored:       append([]string(nil), s.SubjectsExplored...),
		Plan:                   s.Plan(),
		QuizGenerations:        s.QuizGenerations,
		FreeQuizLimit:          s.FreeQuizLimit,
		SessionDurationMinutes: int(s.clock().Sub(s.CreatedAt).Minutes()),
		MostActiveSubject:      s.mostActiveSubject(),
		QuizzesGenerated:       len(s.QuizRecords),
		BestPerformingSubject:  s.bestPerformingSubject(),
	}
}

// mostActiveSubject is the subject with the most questions asked, ties
// broken by first appearance.
func (s *Session) mostActiveSubject() string {
	counts := make(map[string]int)
	for _, q := range s.Questions {
		counts[q.Subject]++
	}

	best, bestCount := "", 0
	for _, subject := range s.SubjectsExplored {
		if counts[subject] > bestCount {
			best, bestCount = subject, counts[subject]
		}
	}
	return best
}

// bestPerformingSubject is the subject with the highest mean score in
// the completed-quiz history.
func (s *Session) bestPerformingSubject() string {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for _, h := range s.QuizHistory {
		if counts[h.Subject] == 0 {
			order = append(order, h.Subject)
		}
		sums[h.Subject] += h.Score
		counts[h.Subject]++
	}

	best, bestAvg := "", 0.0
	for _, subject := range order {
		avg := sums[subject] / float64(counts[subject])
		if avg > bestAvg {
			best, bestAvg = subject, avg
		}
	}
	return best
}

// SubjectStats aggregates one subject's activity.
type SubjectStats struct {
	Subject           string    `json:"subject"`
	QuestionsAsked    int       `json:"questions_asked"`
	QuizAttempts      int       `json:"quiz_attempts"`
	AverageQuizScore  float64   `json:"average_quiz_score"`
	TopicsCovered     []string  `json:"topics_covered"`
	LastActivity      time.Time `json:"last_activity"`
	HighScores        int       `json:"high_scores"`
	ImprovementNeeded int       `json:"improvement_needed"`
}

// SubjectAnalytics breaks activity down per explored subject, in
// first-appearance order.
func (s *Session) SubjectAnalytics() []SubjectStats {
	var out []SubjectStats
	for _, subject := range s.SubjectsExplored {
		stats := SubjectStats{Subject: subject}

		topicsSeen := make(map[string]bool)
		for _, q := range s.Questions {
			if q.Subject != subject {
				continue
			}
			stats.QuestionsAsked++
			if !topicsSeen[q.Topic] {
				topicsSeen[q.Topic] = true
				stats.TopicsCovered = append(stats.TopicsCovered, q.Topic)
			}
			if q.Timestamp.After(stats.LastActivity) {
				stats.LastActivity = q.Timestamp
			}
		}

		var scoreSum float64
		for _, a := range s.QuizAttempts {
			if a.Subject != subject {
				continue
			}
			stats.QuizAttempts++
			scoreSum += a.Score
			if a.Score >= 80 {
				stats.HighScores++
			}
			if a.Score < 60 {
				stats.ImprovementNeeded++
			}
			if a.Timestamp.After(stats.LastActivity) {
				stats.LastActivity = a.Timestamp
			}
		}
		if stats.QuizAttempts > 0 {
			stats.AverageQuizScore = scoreSum / float64(stats.QuizAttempts)
		}

		out = append(out, stats)
	}
	return out
}

// ActivityKind labels a learning-history entry.
type ActivityKind string

const (
	ActivityQuestion ActivityKind = "question"
	ActivityQuiz     ActivityKind = "quiz"
)

// Activity is one entry in the combined learning history.
type Activity struct {
	Kind      ActivityKind   `json:"kind"`
	Timestamp time.Time      `json:"timestamp"`
	Question  *QuestionEntry `json:"question,omitempty"`
	Quiz      *QuizAttempt   `json:"quiz,omitempty"`
}

// LearningHistory merges recent questions and quiz attempts, newest
// first, capped at limit.
func (s *Session) LearningHistory(limit int) []Activity {
	if limit <= 0 {
		limit = 10
	}

	var activities []Activity
	for i := tailStart(len(s.Questions), limit); i < len(s.Questions); i++ {
		q := s.Questions[i]
		activities = append(activities, Activity{Kind: ActivityQuestion, Timestamp: q.Timestamp, Question: &q})
	}
	for i := tailStart(len(s.QuizAttempts), limit); i < len(s.QuizAttempts); i++ {
		a := s.QuizAttempts[i]
		activities = append(activities, Activity{Kind: ActivityQuiz, Timestamp: a.Timestamp, Quiz: &a})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}

func tailStart(n, limit int) int {
	if n > limit {
		return n - limit
	}
	return 0
}

// SortedQuizHistory returns completed-quiz history entries newest first.
func (s *Session) SortedQuizHistory() []HistoryEntry {
	out := append([]HistoryEntry(nil), s.QuizHistory...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
