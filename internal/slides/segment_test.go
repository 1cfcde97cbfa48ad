package slides

import (
	"reflect"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple sentences",
			input:    "First sentence. Second sentence. Third sentence.",
			expected: []string{"First sentence.", "Second sentence.", "Third sentence."},
		},
		{
			name:     "mixed terminators",
			input:    "Really? Yes! Fine.",
			expected: []string{"Really?", "Yes!", "Fine."},
		},
		{
			name:     "no terminal punctuation",
			input:    "a run on fragment with no ending",
			expected: []string{"a run on fragment with no ending"},
		},
		{
			name:     "trailing fragment",
			input:    "Done. and then some",
			expected: []string{"Done.", "and then some"},
		},
		{
			name:     "punctuation run",
			input:    "What?! No way... Really.",
			expected: []string{"What?!", "No way...", "Really."},
		},
		{
			name:     "decimal stays together",
			input:    "Pi is 3.14 roughly. Yes.",
			expected: []string{"Pi is 3.14 roughly.", "Yes."},
		},
		{
			name:     "newlines between sentences",
			input:    "One.\nTwo.\n\nThree.",
			expected: []string{"One.", "Two.", "Three."},
		},
		{
			name:     "abbreviation splits (known limitation)",
			input:    "Dr. Smith arrived.",
			expected: []string{"Dr.", "Smith arrived."},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   \n\t  ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sentences(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Sentences(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"spaced \t out\nwords", 3},
	}

	for _, tt := range tests {
		if got := CountWords(tt.input); got != tt.expected {
			t.Errorf("CountWords(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
