package tutor

import "strings"

// Repair is one best-effort transformation applied to undecodable
// provider output. Repairs are pure text-to-text functions, applied in
// order with a decode attempt after each.
type Repair struct {
	// Name identifies the repair for logging and tests.
	Name string

	// Apply transforms the text. Must not panic on any input.
	Apply func(text string) string
}

// DefaultRepairs returns the repair pipeline in application order.
func DefaultRepairs() []Repair {
	return []Repair{
		{Name: "single-quotes", Apply: repairSingleQuotes},
		{Name: "trailing-commas", Apply: repairTrailingCommas},
	}
}

// repairSingleQuotes rewrites single-quoted keys and values to
// double-quoted ones. Quotes inside double-quoted strings are left
// alone; apostrophes in bare text are not touched because they never
// sit in quote position.
func repairSingleQuotes(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inDouble := false
	inSingle := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		switch c {
		case '\\':
			b.WriteByte(c)
			escaped = true
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
			b.WriteByte(c)
		case '\'':
			if inDouble {
				b.WriteByte(c)
				continue
			}
			if inSingle {
				inSingle = false
				b.WriteByte('"')
				continue
			}
			// Only treat the quote as a string delimiter when it sits
			// where a JSON string can start.
			if prevSignificant(text, i) {
				inSingle = true
				b.WriteByte('"')
			} else {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// prevSignificant reports whether the last non-space byte before index i
// allows a string literal to start there.
func prevSignificant(text string, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch text[j] {
		case ' ', '\t', '\n', '\r':
			continue
		case '{', '[', ',', ':':
			return true
		default:
			return false
		}
	}
	return true
}

// repairTrailingCommas strips commas that directly precede a closing
// bracket or brace, ignoring commas inside strings.
func repairTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		switch c {
		case '\\':
			b.WriteByte(c)
			escaped = true
		case '"':
			inString = !inString
			b.WriteByte(c)
		case ',':
			if inString {
				b.WriteByte(c)
				continue
			}
			// Look ahead past whitespace for a closer.
			j := i + 1
			for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n' || text[j] == '\r') {
				j++
			}
			if j < len(text) && (text[j] == '}' || text[j] == ']') {
				continue // drop the comma
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
