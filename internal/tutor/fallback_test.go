package tutor

import "testing"

func TestFallbackAnswersAllValid(t *testing.T) {
	subjects := []string{
		"Mathematics", "Physics", "Chemistry", "Biology",
		"History", "Geography", "English", "General",
		"Music", // no dedicated entry, routes to General
		"",
	}

	for _, subject := range subjects {
		rec := FallbackAnswer(subject)
		if !ValidateAnswerRecord(&rec) {
			t.Errorf("fallback for %q does not satisfy the answer contract", subject)
		}
	}
}

func TestFallbackAnswerUnknownSubjectIsGeneral(t *testing.T) {
	unknown := FallbackAnswer("Astrophysics")
	general := FallbackAnswer("General")
	if unknown.StepByStep != general.StepByStep {
		t.Error("unknown subject should receive the General fallback")
	}
}

func TestFallbackAnswerDeterministic(t *testing.T) {
	a := FallbackAnswer("Physics")
	b := FallbackAnswer("Physics")
	if a.StepByStep != b.StepByStep || len(a.KeyPoints) != len(b.KeyPoints) {
		t.Error("fallback content should be identical across calls")
	}
}
