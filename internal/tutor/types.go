// Package tutor turns generative-service output into validated, structured
// explanations for student questions, with a deterministic fallback when
// the provider output is unusable.
package tutor

import "time"

// AnswerRecord is the structured explanation produced for a single
// student question. Immutable once returned.
type AnswerRecord struct {
	// KeyPoints lists the main concepts related to the question.
	KeyPoints []string `json:"key_points"`

	// StepByStep is the full walkthrough of the concept.
	StepByStep string `json:"step_by_step"`

	// RealWorldExample grounds the concept in daily life.
	RealWorldExample string `json:"real_world_example"`

	// CommonMistakes lists errors students typically make.
	CommonMistakes []string `json:"common_mistakes"`

	// AdditionalTips holds study tips or memory aids.
	AdditionalTips []string `json:"additional_tips"`
}

// Answer is what the tutor hands back to the caller: the validated record
// plus a rendered form and provenance metadata.
type Answer struct {
	Record   AnswerRecord `json:"record"`
	Markdown string       `json:"markdown"`
	Subject  string       `json:"subject"`
	Question string       `json:"question"`

	// Provider is the model that produced the record, or "fallback".
	Provider string `json:"provider"`

	// Fallback is true when the canned content bank supplied the record.
	Fallback bool `json:"fallback"`

	Timestamp time.Time `json:"timestamp"`
}
