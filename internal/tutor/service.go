package tutor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/smartlearn/smartlearn/internal/gate"
	"github.com/smartlearn/smartlearn/internal/llm"
)

const (
	answerMaxTokens   = 1500
	answerTemperature = 0.7
)

// Service produces answers for student questions. It always returns an
// Answer: provider failures, unparseable output, and validation failures
// all route to the fallback bank instead of surfacing errors.
type Service struct {
	provider llm.Provider
	gate     *gate.Gate
	logger   *zap.Logger
}

// NewService builds a Service. gate and logger may be nil; a nil gate
// means the provider is always consulted.
func NewService(provider llm.Provider, g *gate.Gate, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, gate: g, logger: logger}
}

// Answer generates a structured explanation for a student question.
// Never returns an error; the Fallback field reports whether canned
// content was used.
func (s *Service) Answer(ctx context.Context, subject, question string) *Answer {
	if s.provider == nil || (s.gate != nil && !s.gate.IsAvailable()) {
		s.logger.Info("answer served from fallback",
			zap.String("subject", subject),
			zap.String("reason", "provider unavailable"))
		return s.fallback(subject, question)
	}

	ctx = llm.WithPurpose(ctx, "answer-gen")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnswerPrompt(subject, question)},
		},
		Schema:      AnswerSchema,
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		kind := gate.FailureOther
		if s.gate != nil {
			kind = s.gate.RecordFailure(err.Error())
		}
		s.logger.Warn("answer generation failed",
			zap.String("subject", subject),
			zap.String("failure_kind", string(kind)),
			zap.Error(err))
		return s.fallback(subject, question)
	}

	candidate := ParseAnswer(string(resp.Content))
	if candidate == nil || !ValidateAnswer(candidate) {
		s.logger.Warn("answer output unusable",
			zap.String("subject", subject),
			zap.String("model", resp.Model))
		return s.fallback(subject, question)
	}

	rec, err := DecodeAnswer(candidate)
	if err != nil {
		s.logger.Warn("answer decode failed",
			zap.String("subject", subject), zap.Error(err))
		return s.fallback(subject, question)
	}

	return &Answer{
		Record:    *rec,
		Markdown:  RenderMarkdown(subject, question, *rec),
		Subject:   subject,
		Question:  question,
		Provider:  resp.Model,
		Fallback:  false,
		Timestamp: time.Now().UTC(),
	}
}

func (s *Service) fallback(subject, question string) *Answer {
	rec := FallbackAnswer(subject)
	return &Answer{
		Record:    rec,
		Markdown:  RenderMarkdown(subject, question, rec),
		Subject:   subject,
		Question:  question,
		Provider:  "fallback",
		Fallback:  true,
		Timestamp: time.Now().UTC(),
	}
}
