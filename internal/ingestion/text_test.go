package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "normalizes line endings",
			input:    "line one\r\nline two\rline three",
			expected: "line one\nline two\nline three",
		},
		{
			name:     "collapses inline whitespace",
			input:    "Build   data    pipelines",
			expected: "Build data pipelines",
		},
		{
			name:     "keeps bullet markers and indentation",
			input:    "Requirements:\n  - 3 years python\n  * sql fluency",
			expected: "Requirements:\n  - 3 years python\n  * sql fluency",
		},
		{
			name:     "keeps headings",
			input:    "   ## About the role\ncontent",
			expected: "## About the role\ncontent",
		},
		{
			name:     "caps consecutive blank lines at two",
			input:    "first\n\n\n\n\nsecond",
			expected: "first\n\nsecond",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "\n\n  body text  \n\n",
			expected: "body text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
