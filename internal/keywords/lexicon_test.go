package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicon_IsStopword(t *testing.T) {
	lexicon := DefaultLexicon()

	assert.True(t, lexicon.IsStopword("the"))
	assert.True(t, lexicon.IsStopword("experience"))
	assert.False(t, lexicon.IsStopword("python"))
}

func TestLexicon_SynonymsForSorted(t *testing.T) {
	lexicon := NewLexicon(nil, map[string][]string{
		"dashboard": {"tableau", "looker", "powerbi"},
	})

	assert.Equal(t, []string{"looker", "powerbi", "tableau"}, lexicon.SynonymsFor("dashboard"))
	assert.Nil(t, lexicon.SynonymsFor("unknown"))
}

func TestLexicon_ExpandSynonyms(t *testing.T) {
	lexicon := DefaultLexicon()

	tests := []struct {
		name     string
		token    string
		supplied []string
		want     []string
	}{
		{
			name:     "curated only",
			token:    "python",
			supplied: nil,
			want:     []string{"numpy", "pandas"},
		},
		{
			name:     "curated first then supplied",
			token:    "python",
			supplied: []string{"scipy"},
			want:     []string{"numpy", "pandas", "scipy"},
		},
		{
			name:     "duplicates and blanks dropped",
			token:    "python",
			supplied: []string{"pandas", "", "scipy", "scipy"},
			want:     []string{"numpy", "pandas", "scipy"},
		},
		{
			name:     "no curated entry",
			token:    "kubernetes",
			supplied: []string{"k8s"},
			want:     []string{"k8s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexicon.ExpandSynonyms(tt.token, tt.supplied))
		})
	}
}

func TestNewLexicon_CopiesSynonymInput(t *testing.T) {
	supplied := []string{"b", "a"}
	lexicon := NewLexicon(nil, map[string][]string{"x": supplied})

	// The input slice must not be mutated or aliased
	assert.Equal(t, []string{"b", "a"}, supplied)
	assert.Equal(t, []string{"a", "b"}, lexicon.SynonymsFor("x"))
}
