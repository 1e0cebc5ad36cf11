package tutor

import (
	"encoding/json"
	"strings"
)

// ParseAnswer extracts a candidate answer object from raw provider
// output. The input may be clean JSON, JSON wrapped in markdown or
// prose, or near-JSON needing repair. Returns nil when no decodable
// object can be recovered; never panics or returns an error, since
// callers treat nil and a validation failure identically.
func ParseAnswer(raw string) json.RawMessage {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	// Stage 1: the whole payload decodes directly. This also covers the
	// already-deserialized case where the transport re-marshaled an object.
	if obj := tryDecodeObject(raw); obj != nil {
		return obj
	}

	// Stage 2: first balanced {...} block embedded in surrounding text.
	block, ok := firstBalancedBlock(raw)
	if !ok {
		return nil
	}
	if obj := tryDecodeObject(block); obj != nil {
		return obj
	}

	// Stage 3: cumulative repairs, retrying the decode after each.
	repaired := block
	for _, r := range DefaultRepairs() {
		repaired = r.Apply(repaired)
		if obj := tryDecodeObject(repaired); obj != nil {
			return obj
		}
	}

	return nil
}

// tryDecodeObject returns compacted JSON if s decodes to a JSON object,
// nil otherwise.
func tryDecodeObject(s string) json.RawMessage {
	var candidate map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &candidate); err != nil {
		return nil
	}
	return json.RawMessage(s)
}

// firstBalancedBlock scans for the first '{' and returns the substring
// through its matching '}', tracking string literals so embedded braces
// don't unbalance the count.
func firstBalancedBlock(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}

	return "", false
}

// DecodeAnswer unmarshals a validated candidate into an AnswerRecord.
// Call ValidateAnswer first; decoding an unvalidated candidate may
// produce a partially filled record.
func DecodeAnswer(candidate json.RawMessage) (*AnswerRecord, error) {
	var rec AnswerRecord
	if err := json.Unmarshal(candidate, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
