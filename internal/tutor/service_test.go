package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/smartlearn/smartlearn/internal/gate"
	"github.com/smartlearn/smartlearn/internal/llm"
)

func TestServiceAnswerFromProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validAnswerJSON),
	})
	svc := NewService(mock, gate.New(), nil)

	ans := svc.Answer(context.Background(), "Biology", "What is photosynthesis?")
	if ans.Fallback {
		t.Fatal("expected provider-backed answer, got fallback")
	}
	if ans.Provider != "mock" {
		t.Errorf("provider = %q, want mock", ans.Provider)
	}
	if len(ans.Record.KeyPoints) != 3 {
		t.Errorf("key points = %d, want 3", len(ans.Record.KeyPoints))
	}
	if !strings.Contains(ans.Markdown, "## Key Points") {
		t.Error("markdown missing Key Points section")
	}
	if ans.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestServiceAnswerFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("connection refused"),
	})
	svc := NewService(mock, gate.New(), nil)

	ans := svc.Answer(context.Background(), "Physics", "What is inertia?")
	if !ans.Fallback {
		t.Fatal("expected fallback on provider error")
	}
	if ans.Provider != "fallback" {
		t.Errorf("provider = %q, want fallback", ans.Provider)
	}
	if !ValidateAnswerRecord(&ans.Record) {
		t.Error("fallback record should satisfy the answer contract")
	}
}

func TestServiceAnswerFallsBackOnGarbageOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"I am sorry, I cannot help with that."`),
	})
	svc := NewService(mock, gate.New(), nil)

	ans := svc.Answer(context.Background(), "Mathematics", "Solve 2x+6=14")
	if !ans.Fallback {
		t.Fatal("expected fallback on unparseable output")
	}
}

func TestServiceAnswerFallsBackOnInvalidShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"key_points": ["only this"]}`),
	})
	svc := NewService(mock, gate.New(), nil)

	ans := svc.Answer(context.Background(), "History", "Why did colonialism end?")
	if !ans.Fallback {
		t.Fatal("expected fallback when required fields are missing")
	}
}

func TestServiceQuotaErrorDisablesGate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrQuotaExceeded{}},
		llm.MockResponse{Content: json.RawMessage(validAnswerJSON)},
	)
	g := gate.New()
	svc := NewService(mock, g, nil)

	first := svc.Answer(context.Background(), "Biology", "q1")
	if !first.Fallback {
		t.Fatal("first answer should fall back on quota error")
	}
	if g.IsAvailable() {
		t.Fatal("gate should be closed after quota failure")
	}

	// Second request must not touch the provider while the gate is closed.
	second := svc.Answer(context.Background(), "Biology", "q2")
	if !second.Fallback {
		t.Error("second answer should fall back while gate is closed")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestServiceGateReopensAfterCooldown(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	g := gate.NewWithClock(func() time.Time { return clock() })

	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrQuotaExceeded{}},
		llm.MockResponse{Content: json.RawMessage(validAnswerJSON)},
	)
	svc := NewService(mock, g, nil)

	if ans := svc.Answer(context.Background(), "Physics", "q"); !ans.Fallback {
		t.Fatal("expected fallback on quota error")
	}

	now = now.Add(gate.QuotaCooldown + time.Minute)
	ans := svc.Answer(context.Background(), "Physics", "q again")
	if ans.Fallback {
		t.Fatal("expected provider answer after cooldown elapsed")
	}
}

func TestServiceNilProviderAlwaysFallsBack(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ans := svc.Answer(context.Background(), "English", "How do I write an essay?")
	if !ans.Fallback {
		t.Fatal("nil provider must use fallback")
	}
}

func TestServiceRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validAnswerJSON),
	})
	svc := NewService(mock, nil, nil)

	svc.Answer(context.Background(), "Chemistry", "What is a mole?")

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "tutor-answer" {
		t.Error("request should carry the tutor-answer schema")
	}
	if req.MaxTokens != answerMaxTokens {
		t.Errorf("max tokens = %d, want %d", req.MaxTokens, answerMaxTokens)
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "What is a mole?") {
		t.Error("user message should carry the question")
	}
	if !strings.Contains(req.Messages[0].Content, "Chemistry") {
		t.Error("user message should carry the subject")
	}
}
