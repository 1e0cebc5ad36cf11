package tutor

import (
	"encoding/json"
	"testing"
)

func TestRepairSingleQuotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "keys and values",
			in:   `{'a': 'b'}`,
			want: `{"a": "b"}`,
		},
		{
			name: "apostrophe inside double-quoted string untouched",
			in:   `{"a": "it's fine"}`,
			want: `{"a": "it's fine"}`,
		},
		{
			name: "already valid passes through",
			in:   `{"a": ["x", "y"]}`,
			want: `{"a": ["x", "y"]}`,
		},
		{
			name: "array of single-quoted strings",
			in:   `{'a': ['x', 'y']}`,
			want: `{"a": ["x", "y"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repairSingleQuotes(tt.in); got != tt.want {
				t.Errorf("repairSingleQuotes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRepairTrailingCommas(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "object",
			in:   `{"a": 1,}`,
			want: `{"a": 1}`,
		},
		{
			name: "array with whitespace before closer",
			in:   "{\"a\": [1, 2,\n]}",
			want: "{\"a\": [1, 2\n]}",
		},
		{
			name: "comma inside string kept",
			in:   `{"a": "one, two,"}`,
			want: `{"a": "one, two,"}`,
		},
		{
			name: "separating commas kept",
			in:   `{"a": 1, "b": 2}`,
			want: `{"a": 1, "b": 2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repairTrailingCommas(tt.in); got != tt.want {
				t.Errorf("repairTrailingCommas(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRepairsAreCumulative(t *testing.T) {
	in := `{'a': ['x', 'y',],}`

	out := in
	for _, r := range DefaultRepairs() {
		out = r.Apply(out)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("cumulative repairs did not yield valid JSON: %v\nout: %s", err, out)
	}
}

func TestDefaultRepairsOrder(t *testing.T) {
	repairs := DefaultRepairs()
	if len(repairs) != 2 {
		t.Fatalf("repair count = %d, want 2", len(repairs))
	}
	if repairs[0].Name != "single-quotes" || repairs[1].Name != "trailing-commas" {
		t.Errorf("repair order = %s, %s", repairs[0].Name, repairs[1].Name)
	}
}
