package tutor

import "github.com/smartlearn/smartlearn/internal/llm"

// AnswerSchema is the required field/type contract for an AnswerRecord.
// It serves double duty: validation contract for parsed candidates and
// structured-output schema for providers that support one.
var AnswerSchema = &llm.Schema{
	Name:        "tutor-answer",
	Description: "A structured explanation of a concept for a high school student",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-4 main concepts related to the question",
			},
			"step_by_step": map[string]any{
				"type":        "string",
				"description": "Complete explanation broken down in simple, clear terms",
			},
			"real_world_example": map[string]any{
				"type":        "string",
				"description": "A specific, practical example from daily life",
			},
			"common_mistakes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 errors students commonly make and how to avoid them",
			},
			"additional_tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-2 study tips or memory aids",
			},
		},
		"required": []any{
			"key_points", "step_by_step", "real_world_example",
			"common_mistakes", "additional_tips",
		},
		"additionalProperties": true,
	},
}
