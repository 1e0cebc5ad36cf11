package tutor

import (
	"encoding/json"
	"testing"
)

const validAnswerJSON = `{
	"key_points": ["Photosynthesis converts light to chemical energy", "It happens in chloroplasts", "It produces glucose and oxygen"],
	"step_by_step": "Plants absorb sunlight through chlorophyll. The energy splits water and fixes carbon dioxide into glucose.",
	"real_world_example": "Maize in a shamba turning sunlight into the starch stored in its cobs.",
	"common_mistakes": ["Thinking plants do not respire", "Confusing photosynthesis with respiration"],
	"additional_tips": ["Remember the word equation", "Draw the leaf cross-section from memory"]
}`

func TestParseAnswerCleanJSON(t *testing.T) {
	got := ParseAnswer(validAnswerJSON)
	if got == nil {
		t.Fatal("expected candidate from clean JSON, got nil")
	}
	if !ValidateAnswer(got) {
		t.Error("clean JSON candidate should validate")
	}
}

func TestParseAnswerFencedJSON(t *testing.T) {
	raw := "Here is the explanation:\n```json\n" + validAnswerJSON + "\n```\nHope that helps!"
	got := ParseAnswer(raw)
	if got == nil {
		t.Fatal("expected candidate from fenced JSON, got nil")
	}
	if !ValidateAnswer(got) {
		t.Error("fenced JSON candidate should validate")
	}
}

func TestParseAnswerEmbeddedInProse(t *testing.T) {
	raw := "Sure! " + validAnswerJSON + " Let me know if you need more."
	got := ParseAnswer(raw)
	if got == nil {
		t.Fatal("expected candidate from prose-wrapped JSON, got nil")
	}

	rec, err := DecodeAnswer(got)
	if err != nil {
		t.Fatalf("DecodeAnswer: %v", err)
	}
	if len(rec.KeyPoints) != 3 {
		t.Errorf("key points = %d, want 3", len(rec.KeyPoints))
	}
}

func TestParseAnswerSingleQuoted(t *testing.T) {
	raw := `{'key_points': ['a', 'b'], 'step_by_step': 'do the thing', 'real_world_example': 'an example', 'common_mistakes': ['m1'], 'additional_tips': ['t1']}`
	got := ParseAnswer(raw)
	if got == nil {
		t.Fatal("expected single-quote repair to recover candidate")
	}
	if !ValidateAnswer(got) {
		t.Error("repaired candidate should validate")
	}
}

func TestParseAnswerTrailingCommas(t *testing.T) {
	raw := `{
		"key_points": ["a", "b",],
		"step_by_step": "explain",
		"real_world_example": "example",
		"common_mistakes": ["m1", "m2",],
		"additional_tips": ["t1"],
	}`
	got := ParseAnswer(raw)
	if got == nil {
		t.Fatal("expected trailing-comma repair to recover candidate")
	}
	if !ValidateAnswer(got) {
		t.Error("repaired candidate should validate")
	}
}

func TestParseAnswerBracesInsideStrings(t *testing.T) {
	raw := `noise {"key_points": ["use {braces} carefully"], "step_by_step": "s", "real_world_example": "r", "common_mistakes": ["m"], "additional_tips": ["t"]} tail`
	got := ParseAnswer(raw)
	if got == nil {
		t.Fatal("expected candidate despite braces inside string values")
	}

	rec, err := DecodeAnswer(got)
	if err != nil {
		t.Fatalf("DecodeAnswer: %v", err)
	}
	if rec.KeyPoints[0] != "use {braces} carefully" {
		t.Errorf("key point = %q, want brace-containing string preserved", rec.KeyPoints[0])
	}
}

func TestParseAnswerHopeless(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"I cannot answer that question.",
		"{ this is { not json at all",
		"[1, 2, 3]",
	} {
		if got := ParseAnswer(raw); got != nil {
			t.Errorf("ParseAnswer(%q) = %s, want nil", raw, got)
		}
	}
}

func TestValidateAnswerRejectsMissingFields(t *testing.T) {
	raw := json.RawMessage(`{"key_points": ["a"], "step_by_step": "s"}`)
	if ValidateAnswer(raw) {
		t.Error("candidate missing required fields should not validate")
	}
}

func TestValidateAnswerRejectsWrongTypes(t *testing.T) {
	raw := json.RawMessage(`{
		"key_points": "not an array",
		"step_by_step": "s",
		"real_world_example": "r",
		"common_mistakes": ["m"],
		"additional_tips": ["t"]
	}`)
	if ValidateAnswer(raw) {
		t.Error("candidate with string where array expected should not validate")
	}
}

func TestValidateAnswerAllowsExtraFields(t *testing.T) {
	raw := json.RawMessage(`{
		"key_points": ["a"],
		"step_by_step": "s",
		"real_world_example": "r",
		"common_mistakes": ["m"],
		"additional_tips": ["t"],
		"difficulty": "easy"
	}`)
	if !ValidateAnswer(raw) {
		t.Error("extra fields should be tolerated")
	}
}
