package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/smartlearn/smartlearn/internal/gate"
	"github.com/smartlearn/smartlearn/internal/llm"
)

func TestServiceGenerateFromProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(wellFormedQuizText),
	})
	svc := NewService(mock, gate.New(), nil)

	q := svc.Generate(context.Background(), "Mathematics", "Algebra", DifficultyIntermediate, TypeConceptCheck, 2)
	if q.Fallback {
		t.Fatal("expected provider-backed quiz, got fallback")
	}
	if q.Title != "Algebra Foundations" {
		t.Errorf("title = %q", q.Title)
	}
	if len(q.Questions) != 2 {
		t.Errorf("questions = %d, want 2", len(q.Questions))
	}
	if q.ID == "" {
		t.Error("quiz id not assigned")
	}
	if q.TimeLimitSeconds != 2*75+300 {
		t.Errorf("time limit = %d", q.TimeLimitSeconds)
	}
}

func TestServiceGenerateJSONStringContent(t *testing.T) {
	// Free-form output arrives as a JSON-encoded string from some
	// transports; the service must unwrap it before parsing.
	encoded, err := json.Marshal(wellFormedQuizText)
	if err != nil {
		t.Fatal(err)
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: encoded})
	svc := NewService(mock, nil, nil)

	q := svc.Generate(context.Background(), "Mathematics", "Algebra", DifficultyIntermediate, TypeConceptCheck, 2)
	if q.Fallback {
		t.Fatal("expected provider-backed quiz from JSON string content")
	}
}

func TestServiceGenerateFallsBackOnCountMismatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(wellFormedQuizText),
	})
	svc := NewService(mock, gate.New(), nil)

	// Provider text has 2 questions but 5 were requested.
	q := svc.Generate(context.Background(), "Mathematics", "Algebra", DifficultyIntermediate, TypeConceptCheck, 5)
	if !q.Fallback {
		t.Fatal("expected fallback when question count mismatches")
	}
	if len(q.Questions) != 5 {
		t.Errorf("fallback questions = %d, want 5", len(q.Questions))
	}
}

func TestServiceGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("connection reset")})
	svc := NewService(mock, gate.New(), nil)

	q := svc.Generate(context.Background(), "Physics", "Mechanics", DifficultyBeginner, TypeConceptCheck, 3)
	if !q.Fallback {
		t.Fatal("expected fallback on provider error")
	}
	if len(q.Questions) != 3 {
		t.Errorf("questions = %d, want 3", len(q.Questions))
	}
}

func TestServiceAuthErrorDisablesGate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrAuthInvalid{}},
		llm.MockResponse{Content: json.RawMessage(wellFormedQuizText)},
	)
	g := gate.New()
	svc := NewService(mock, g, nil)

	first := svc.Generate(context.Background(), "Biology", "Cell Biology", DifficultyIntermediate, TypeConceptCheck, 1)
	if !first.Fallback {
		t.Fatal("expected fallback on auth error")
	}
	if g.IsAvailable() {
		t.Fatal("gate should be closed after auth failure")
	}

	svc.Generate(context.Background(), "Biology", "Cell Biology", DifficultyIntermediate, TypeConceptCheck, 1)
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1 while gate closed", mock.CallCount())
	}
}

func TestServiceRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(wellFormedQuizText),
	})
	svc := NewService(mock, nil, nil)

	svc.Generate(context.Background(), "Chemistry", "Atomic Structure", DifficultyAdvanced, TypeCriticalThinking, 2)

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("quiz generation should request free-form text, not a schema")
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"Chemistry", "Atomic Structure", "advanced", "critical_thinking", "QUIZ TITLE:", "CORRECT ANSWER:"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestStatsClassification(t *testing.T) {
	q := &Quiz{
		Subject:    "Mathematics",
		Topic:      "Algebra",
		Difficulty: DifficultyIntermediate,
		Questions: []Question{
			{Text: "Calculate the area of a square with side 4."},
			{Text: "Explain why the sky is blue."},
			{Text: "Compare mitosis and meiosis."},
			{Text: "What is the capital of Kenya?"},
		},
		TimeLimitSeconds: 600,
	}

	stats := Stats(q)
	if stats.TotalQuestions != 4 {
		t.Errorf("total = %d", stats.TotalQuestions)
	}
	want := map[string]int{
		"problem_solving":   1,
		"conceptual":        1,
		"critical_thinking": 1,
		"recall":            1,
	}
	for label, n := range want {
		if stats.QuestionTypes[label] != n {
			t.Errorf("type %s = %d, want %d", label, stats.QuestionTypes[label], n)
		}
	}
	if stats.EstimatedTime != 600 {
		t.Errorf("estimated time = %d", stats.EstimatedTime)
	}
}
