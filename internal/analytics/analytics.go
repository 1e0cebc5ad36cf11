// Package analytics derives strengths, gaps, and ranked recommendations
// from a session's accumulated history. Every function is a pure read
// over the session; nothing here mutates state.
package analytics

import "github.com/smartlearn/smartlearn/internal/session"

// weakSubjectMinAttempts and weakSubjectScoreCeiling define a weak
// subject: at least this many attempts with a mean score below the
// ceiling.
const (
	weakSubjectMinAttempts  = 2
	weakSubjectScoreCeiling = 70
)

// gapThreshold is the counter value at which a topic becomes a named
// learning gap.
const gapThreshold = 2

// Performance breakdown cutoffs over per-topic mean quiz scores.
const (
	lowPerformanceCeiling = 60
	strengthFloor         = 80
)

// maxUnexploredTopics caps the unexplored-topic suggestion list.
const maxUnexploredTopics = 3

// curriculumTopics is the fixed per-subject topic catalog used to spot
// what a learner has not touched yet.
var curriculumTopics = map[string][]string{
	"Mathematics": {"Algebra", "Geometry", "Calculus", "Trigonometry", "Statistics"},
	"Physics":     {"Mechanics", "Electricity", "Waves", "Optics", "Thermodynamics"},
	"Biology":     {"Cell Biology", "Genetics", "Ecology", "Evolution", "Human Biology"},
	"Chemistry":   {"Organic Chemistry", "Inorganic Chemistry", "Physical Chemistry", "Analytical Chemistry"},
	"History":     {"Ancient History", "Medieval History", "Modern History", "African History", "World History"},
	"Geography":   {"Physical Geography", "Human Geography", "Economic Geography", "Political Geography", "Climate"},
}

// WeakSubjects lists subjects with at least two quiz attempts averaging
// below 70, in first-appearance order.
func WeakSubjects(s *session.Session) []string {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, a := range s.QuizAttempts {
		if counts[a.Subject] == 0 {
			order = append(order, a.Subject)
		}
		sums[a.Subject] += a.Score
		counts[a.Subject]++
	}

	var weak []string
	for _, subject := range order {
		if counts[subject] >= weakSubjectMinAttempts && sums[subject]/float64(counts[subject]) < weakSubjectScoreCeiling {
			weak = append(weak, subject)
		}
	}
	return weak
}

// UnexploredTopics lists up to three catalog topics the learner has not
// asked about, restricted to subjects they have touched.
func UnexploredTopics(s *session.Session) []string {
	explored := make(map[string]bool)
	for _, q := range s.Questions {
		explored[q.Topic] = true
	}

	var unexplored []string
	for _, subject := range s.SubjectsExplored {
		for _, topic := range curriculumTopics[subject] {
			if !explored[topic] {
				unexplored = append(unexplored, topic)
				if len(unexplored) == maxUnexploredTopics {
					return unexplored
				}
			}
		}
	}
	return unexplored
}

// LearningGaps lists topics whose gap counter has reached the threshold,
// in the order the topics first earned a gap increment.
func LearningGaps(s *session.Session) []string {
	var gaps []string
	for _, topic := range s.GapOrder {
		if s.GapCounts[topic] >= gapThreshold {
			gaps = append(gaps, topic)
		}
	}
	return gaps
}

// PerformanceBreakdown splits quiz-history topics into low-performance
// (mean < 60) and strength (mean >= 80) areas.
type PerformanceBreakdown struct {
	LowPerformanceAreas []string           `json:"low_performance_areas"`
	StrengthAreas       []string           `json:"strength_areas"`
	TopicAverages       map[string]float64 `json:"topic_averages"`
}

// QuizPerformance computes the per-topic breakdown over completed-quiz
// history, topics in first-appearance order.
func QuizPerformance(s *session.Session) PerformanceBreakdown {
	breakdown := PerformanceBreakdown{TopicAverages: make(map[string]float64)}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for _, h := range s.QuizHistory {
		if counts[h.Topic] == 0 {
			order = append(order, h.Topic)
		}
		sums[h.Topic] += h.Score
		counts[h.Topic]++
	}

	for _, topic := range order {
		avg := sums[topic] / float64(counts[topic])
		breakdown.TopicAverages[topic] = avg
		switch {
		case avg < lowPerformanceCeiling:
			breakdown.LowPerformanceAreas = append(breakdown.LowPerformanceAreas, topic)
		case avg >= strengthFloor:
			breakdown.StrengthAreas = append(breakdown.StrengthAreas, topic)
		}
	}
	return breakdown
}
