package tutor

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	answerSchemaOnce sync.Once
	answerSchema     *jsonschema.Schema
	answerSchemaErr  error
)

func compiledAnswerSchema() (*jsonschema.Schema, error) {
	answerSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(AnswerSchema.Definition)
		if err != nil {
			answerSchemaErr = fmt.Errorf("marshal answer schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			answerSchemaErr = fmt.Errorf("parse answer schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://tutor-answer.json"
		if err := c.AddResource(url, def); err != nil {
			answerSchemaErr = fmt.Errorf("add answer schema resource: %w", err)
			return
		}
		answerSchema, answerSchemaErr = c.Compile(url)
	})
	return answerSchema, answerSchemaErr
}

// ValidateAnswer reports whether a candidate carries every AnswerRecord
// field with its declared container type. Any violation is a hard
// rejection; the caller must fall back.
func ValidateAnswer(candidate json.RawMessage) bool {
	if len(candidate) == 0 {
		return false
	}

	schema, err := compiledAnswerSchema()
	if err != nil {
		return false
	}

	var parsed any
	if err := json.Unmarshal(candidate, &parsed); err != nil {
		return false
	}
	return schema.Validate(parsed) == nil
}

// ValidateAnswerRecord checks an already-typed record against the same
// contract, for callers holding an AnswerRecord rather than raw JSON.
func ValidateAnswerRecord(rec *AnswerRecord) bool {
	if rec == nil {
		return false
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return false
	}
	return ValidateAnswer(raw)
}
