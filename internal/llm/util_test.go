package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json",
			input:    `[{"keyword": "python"}]`,
			expected: `[{"keyword": "python"}]`,
		},
		{
			name:     "json fence",
			input:    "```json\n[{\"keyword\": \"python\"}]\n```",
			expected: `[{"keyword": "python"}]`,
		},
		{
			name:     "bare fence",
			input:    "```\n[]\n```",
			expected: `[]`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n[]\n  ",
			expected: `[]`,
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestTruncateForPrompt(t *testing.T) {
	assert.Equal(t, "abc", TruncateForPrompt("abc", 10))
	assert.Equal(t, "ab", TruncateForPrompt("abcdef", 2))
	assert.Equal(t, "abcdef", TruncateForPrompt("abcdef", 0))
}

func TestConfig_GetModelFallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"},
	}

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}
