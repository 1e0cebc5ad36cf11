package quizgen

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartlearn/smartlearn/internal/gate"
	"github.com/smartlearn/smartlearn/internal/llm"
)

const (
	quizMaxTokens   = 2000
	quizTemperature = 0.7
)

// Service generates quizzes. Like the tutor service it never fails:
// provider errors and unusable output route to the curated fallback.
type Service struct {
	provider llm.Provider
	gate     *gate.Gate
	logger   *zap.Logger
}

// NewService builds a Service. gate and logger may be nil.
func NewService(provider llm.Provider, g *gate.Gate, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, gate: g, logger: logger}
}

// Generate creates a quiz of exactly count questions. The Fallback field
// on the returned quiz reports whether curated content was used.
func (s *Service) Generate(ctx context.Context, subject, topic string, difficulty Difficulty, quizType QuizType, count int) *Quiz {
	if count < 1 {
		count = 1
	}

	if s.provider == nil || (s.gate != nil && !s.gate.IsAvailable()) {
		s.logger.Info("quiz served from fallback",
			zap.String("subject", subject),
			zap.String("topic", topic),
			zap.String("reason", "provider unavailable"))
		return FallbackQuiz(subject, topic, difficulty, count)
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizPrompt(subject, topic, difficulty, quizType, count)},
		},
		MaxTokens:   quizMaxTokens,
		Temperature: quizTemperature,
	})
	if err != nil {
		kind := gate.FailureOther
		if s.gate != nil {
			kind = s.gate.RecordFailure(err.Error())
		}
		s.logger.Warn("quiz generation failed",
			zap.String("subject", subject),
			zap.String("topic", topic),
			zap.String("failure_kind", string(kind)),
			zap.Error(err))
		return FallbackQuiz(subject, topic, difficulty, count)
	}

	title, questions := ParseQuiz(decodeText(resp.Content))
	if !ValidateQuiz(title, questions, count) {
		s.logger.Warn("quiz output unusable",
			zap.String("subject", subject),
			zap.String("topic", topic),
			zap.Int("parsed_questions", len(questions)),
			zap.String("model", resp.Model))
		return FallbackQuiz(subject, topic, difficulty, count)
	}

	return &Quiz{
		ID:               uuid.NewString(),
		Title:            title,
		Subject:          subject,
		Topic:            topic,
		Difficulty:       difficulty,
		QuizType:         quizType,
		Questions:        questions,
		TimeLimitSeconds: TimeLimit(difficulty, count),
		GeneratedAt:      time.Now().UTC(),
	}
}

// decodeText unwraps free-form provider output. Content may be a JSON
// string (quoted) or raw text; both are accepted.
func decodeText(content []byte) string {
	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
			return s
		}
	}
	return trimmed
}

// Stats summarizes a quiz: question count and a keyword-based breakdown
// of question styles.
func Stats(q *Quiz) Statistics {
	types := make(map[string]int)
	for _, question := range q.Questions {
		types[classifyQuestion(question.Text)]++
	}
	return Statistics{
		TotalQuestions: len(q.Questions),
		QuestionTypes:  types,
		Difficulty:     q.Difficulty,
		EstimatedTime:  q.TimeLimitSeconds,
		Subject:        q.Subject,
		Topic:          q.Topic,
	}
}

// questionStyleKeywords maps keyword sets to question style labels,
// checked in order.
var questionStyleKeywords = []struct {
	words []string
	label string
}{
	{words: []string{"calculate", "solve", "find"}, label: "problem_solving"},
	{words: []string{"explain", "why", "how"}, label: "conceptual"},
	{words: []string{"compare", "analyze", "evaluate"}, label: "critical_thinking"},
}

func classifyQuestion(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range questionStyleKeywords {
		for _, w := range rule.words {
			if strings.Contains(lower, w) {
				return rule.label
			}
		}
	}
	return "recall"
}
