// Package session holds one learner's question and quiz history for the
// lifetime of a session, including the quiz lifecycle state machine and
// the counters that feed analytics. A Session is not safe for concurrent
// use; callers serialize access per session.
package session

import (
	"fmt"
	"time"

	"github.com/smartlearn/smartlearn/internal/grader"
	"github.com/smartlearn/smartlearn/internal/quizgen"
	"github.com/smartlearn/smartlearn/internal/tutor"
)

// Status is a quiz lifecycle state. Transitions only move forward.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
)

// InvalidTransitionError reports a lifecycle method called in the wrong
// state. A protocol error for the caller, fatal to that request only.
type InvalidTransitionError struct {
	QuizID string
	From   Status
	To     Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("quiz %s: invalid transition %s -> %s", e.QuizID, e.From, e.To)
}

// QuizNotFoundError reports an unknown quiz id.
type QuizNotFoundError struct {
	QuizID string
}

func (e *QuizNotFoundError) Error() string {
	return fmt.Sprintf("quiz %s not found in session", e.QuizID)
}

// QuestionEntry records one asked question with its inferred topic and
// difficulty.
type QuestionEntry struct {
	ID         int                `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Subject    string             `json:"subject"`
	Question   string             `json:"question"`
	Answer     tutor.AnswerRecord `json:"answer"`
	Topic      string             `json:"topic"`
	Difficulty string             `json:"difficulty"`
}

// QuizAttempt records one scored quiz outcome.
type QuizAttempt struct {
	ID               int       `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	Subject          string    `json:"subject"`
	Topic            string    `json:"topic"`
	Score            float64   `json:"score"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
}

// QuizRecord wraps a generated quiz with its lifecycle state. Status and
// Results are written exactly once per transition.
type QuizRecord struct {
	Quiz        *quizgen.Quiz  `json:"quiz"`
	Status      Status         `json:"status"`
	GeneratedAt time.Time      `json:"generated_at"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Results     *grader.Result `json:"results,omitempty"`
}

// Deadline returns the answer-collection deadline for a started quiz.
func (r *QuizRecord) Deadline() (time.Time, bool) {
	if r.Status != StatusStarted || r.StartedAt == nil {
		return time.Time{}, false
	}
	return r.StartedAt.Add(time.Duration(r.Quiz.TimeLimitSeconds) * time.Second), true
}

// HistoryEntry summarizes one completed quiz for the history log.
type HistoryEntry struct {
	QuizID           string    `json:"quiz_id"`
	Timestamp        time.Time `json:"timestamp"`
	Subject          string    `json:"subject"`
	Topic            string    `json:"topic"`
	Difficulty       string    `json:"difficulty"`
	Score            float64   `json:"score"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	TotalQuestions   int       `json:"total_questions"`
	CorrectAnswers   int       `json:"correct_answers"`
}

// Session is the aggregate root for one learner's session.
type Session struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`

	Questions    []QuestionEntry `json:"questions"`
	QuizAttempts []QuizAttempt   `json:"quiz_attempts"`

	// SubjectsExplored keeps first-appearance order.
	SubjectsExplored []string `json:"subjects_explored"`

	// StrengthCounts and GapCounts are per-topic tallies. GapOrder keeps
	// the order topics first earned a gap increment, which the analytics
	// layer needs because map iteration is unordered.
	StrengthCounts map[string]int `json:"strength_counts"`
	GapCounts      map[string]int `json:"gap_counts"`
	GapOrder       []string       `json:"gap_order"`

	// QuizRecords holds every generated quiz keyed by id; QuizOrder keeps
	// generation order.
	QuizRecords map[string]*QuizRecord `json:"quiz_records"`
	QuizOrder   []string               `json:"quiz_order"`

	QuizHistory []HistoryEntry `json:"quiz_history"`

	// Subscription counters. FreeQuizLimit quiz generations per session
	// on the free plan; premium is unlimited.
	Premium         bool `json:"premium"`
	QuizGenerations int  `json:"quiz_generations"`
	FreeQuizLimit   int  `json:"free_quiz_limit"`

	now func() time.Time
}

// DefaultFreeQuizLimit is the free-tier quiz generation allowance.
const DefaultFreeQuizLimit = 3

// New creates an empty session.
func New(id string) *Session {
	return NewWithClock(id, time.Now)
}

// NewWithClock creates a session with an injectable clock for tests.
func NewWithClock(id string, now func() time.Time) *Session {
	t := now()
	return &Session{
		ID:             id,
		CreatedAt:      t,
		LastActivity:   t,
		StrengthCounts: make(map[string]int),
		GapCounts:      make(map[string]int),
		QuizRecords:    make(map[string]*QuizRecord),
		FreeQuizLimit:  DefaultFreeQuizLimit,
		now:            now,
	}
}

func (s *Session) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *Session) touch() {
	s.LastActivity = s.clock()
}

// AddQuestion records a question and its answer, infers topic and
// difficulty, and updates the learning counters.
func (s *Session) AddQuestion(subject, question string, answer tutor.AnswerRecord) QuestionEntry {
	entry := QuestionEntry{
		ID:         len(s.Questions) + 1,
		Timestamp:  s.clock(),
		Subject:    subject,
		Question:   question,
		Answer:     answer,
		Topic:      InferTopic(subject, question),
		Difficulty: InferDifficulty(question),
	}
	s.Questions = append(s.Questions, entry)
	s.exploreSubject(subject)
	s.touch()

	// Asking about a topic counts toward strength; an advanced question
	// flags a potential gap.
	s.StrengthCounts[entry.Topic]++
	if entry.Difficulty == DifficultyAdvanced {
		s.bumpGap(entry.Topic, 1)
	}

	return entry
}

// RecordQuizAttempt logs a scored quiz outcome and updates the counters:
// high scores reinforce strengths, low scores widen gaps.
func (s *Session) RecordQuizAttempt(subject string, quiz *quizgen.Quiz, score float64, timeTakenSeconds int) QuizAttempt {
	topic := "General"
	if quiz != nil && quiz.Topic != "" {
		topic = quiz.Topic
	}

	attempt := QuizAttempt{
		ID:               len(s.QuizAttempts) + 1,
		Timestamp:        s.clock(),
		Subject:          subject,
		Topic:            topic,
		Score:            score,
		TimeTakenSeconds: timeTakenSeconds,
	}
	s.QuizAttempts = append(s.QuizAttempts, attempt)
	s.exploreSubject(subject)
	s.touch()

	switch {
	case score >= 80:
		s.StrengthCounts[topic] += 2
	case score < 60:
		s.bumpGap(topic, 2)
	}

	return attempt
}

// GenerateQuizRecord registers a generated quiz in the lifecycle map and
// counts it against the subscription allowance. Returns the quiz id.
func (s *Session) GenerateQuizRecord(quiz *quizgen.Quiz) string {
	record := &QuizRecord{
		Quiz:        quiz,
		Status:      StatusGenerated,
		GeneratedAt: s.clock(),
	}
	s.QuizRecords[quiz.ID] = record
	s.QuizOrder = append(s.QuizOrder, quiz.ID)
	s.QuizGenerations++
	s.touch()
	return quiz.ID
}

// Quiz returns the quiz for an id, if present.
func (s *Session) Quiz(id string) (*quizgen.Quiz, bool) {
	record, ok := s.QuizRecords[id]
	if !ok {
		return nil, false
	}
	return record.Quiz, true
}

// Start moves a quiz from generated to started and stamps the start
// time. Starting a quiz in any other state is an InvalidTransitionError.
func (s *Session) Start(id string) (*QuizRecord, error) {
	record, ok := s.QuizRecords[id]
	if !ok {
		return nil, &QuizNotFoundError{QuizID: id}
	}
	if record.Status != StatusGenerated {
		return nil, &InvalidTransitionError{QuizID: id, From: record.Status, To: StatusStarted}
	}

	t := s.clock()
	record.Status = StatusStarted
	record.StartedAt = &t
	s.touch()
	return record, nil
}

// Complete grades a started quiz, stores the result, appends a history
// entry, and updates the counters. Completing a quiz that is not in the
// started state is an InvalidTransitionError.
func (s *Session) Complete(id string, answers []string) (*grader.Result, error) {
	record, ok := s.QuizRecords[id]
	if !ok {
		return nil, &QuizNotFoundError{QuizID: id}
	}
	if record.Status != StatusStarted {
		return nil, &InvalidTransitionError{QuizID: id, From: record.Status, To: StatusCompleted}
	}

	result, err := grader.Grade(record.Quiz, answers)
	if err != nil {
		return nil, err
	}

	t := s.clock()
	if record.StartedAt != nil {
		result.TimeTakenSeconds = int(t.Sub(*record.StartedAt).Seconds())
	}

	record.Status = StatusCompleted
	record.CompletedAt = &t
	record.Results = result

	entry := HistoryEntry{
		QuizID:           id,
		Timestamp:        t,
		Subject:          record.Quiz.Subject,
		Topic:            record.Quiz.Topic,
		Difficulty:       string(record.Quiz.Difficulty),
		Score:            result.ScorePercentage,
		TimeTakenSeconds: result.TimeTakenSeconds,
		TotalQuestions:   result.Total,
		CorrectAnswers:   result.Correct,
	}
	s.QuizHistory = append(s.QuizHistory, entry)
	s.touch()

	// Completed quizzes move the counters harder than loose attempts.
	switch {
	case entry.Score >= 80:
		s.StrengthCounts[entry.Topic] += 3
	case entry.Score < 60:
		s.bumpGap(entry.Topic, 3)
	}

	return result, nil
}

// ActiveQuizzes lists generated and started quizzes in generation order.
func (s *Session) ActiveQuizzes() []*QuizRecord {
	var active []*QuizRecord
	for _, id := range s.QuizOrder {
		record := s.QuizRecords[id]
		if record.Status == StatusGenerated || record.Status == StatusStarted {
			active = append(active, record)
		}
	}
	return active
}

func (s *Session) exploreSubject(subject string) {
	for _, existing := range s.SubjectsExplored {
		if existing == subject {
			return
		}
	}
	s.SubjectsExplored = append(s.SubjectsExplored, subject)
}

func (s *Session) bumpGap(topic string, n int) {
	if _, seen := s.GapCounts[topic]; !seen {
		s.GapOrder = append(s.GapOrder, topic)
	}
	s.GapCounts[topic] += n
}
