package rewriting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rufusnm24/Resume-Optimizer/internal/keywords"
	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

func newTestRewriter() *Rewriter {
	return NewRewriter(keywords.DefaultLexicon())
}

func TestRewrite_StrictReplacesSynonymsWithinBudget(t *testing.T) {
	tex := "\\begin{itemize}\n  \\item Led analytics initiatives with pandas tooling.\n  \\item Drove reporting automation for stakeholders.\n\\end{itemize}"
	candidates := []types.KeywordCandidate{
		{Token: "python", Score: 2.0, Synonyms: []string{"pandas"}},
		{Token: "automation", Score: 1.0},
	}

	result := newTestRewriter().Rewrite(tex, candidates, true)

	assert.Contains(t, strings.ToLower(result.OptimizedTex), "python")

	originalLines := strings.Split(tex, "\n")
	optimizedLines := strings.Split(result.OptimizedTex, "\n")
	require.Equal(t, len(originalLines), len(optimizedLines))
	for i, original := range originalLines {
		if strings.HasPrefix(strings.TrimSpace(original), "\\item") {
			delta := len(original) - len(optimizedLines[i])
			if delta < 0 {
				delta = -delta
			}
			assert.LessOrEqual(t, delta, 10, "strict policy keeps bullet edits small")
		}
	}
}

func TestRewrite_ExistingKeywordNeedsNoEdit(t *testing.T) {
	tex := "\\begin{itemize}\n  \\item Drove reporting automation for stakeholders.\n\\end{itemize}"
	candidates := []types.KeywordCandidate{{Token: "automation"}}

	result := newTestRewriter().Rewrite(tex, candidates, true)

	assert.Equal(t, tex, result.OptimizedTex)
	assert.Equal(t, types.KeywordUsage{Before: 1, After: 1}, result.KeywordMap["automation"])
	assert.Empty(t, result.Diff)
}

func TestRewrite_NonStrictAppendsParenthetical(t *testing.T) {
	tex := "\\begin{itemize}\n  \\item Shipped quarterly reports to leadership.\n\\end{itemize}"
	candidates := []types.KeywordCandidate{{Token: "kubernetes"}}

	result := newTestRewriter().Rewrite(tex, candidates, false)

	assert.Contains(t, result.OptimizedTex, "Shipped quarterly reports to leadership. (kubernetes)")
	assert.Equal(t, types.KeywordUsage{Before: 0, After: 1}, result.KeywordMap["kubernetes"])
}

func TestRewrite_StrictNeverAppends(t *testing.T) {
	tex := "\\begin{itemize}\n  \\item Shipped quarterly reports to leadership.\n\\end{itemize}"
	candidates := []types.KeywordCandidate{{Token: "kubernetes"}}

	result := newTestRewriter().Rewrite(tex, candidates, true)

	assert.Equal(t, tex, result.OptimizedTex)
	assert.Equal(t, types.KeywordUsage{Before: 0, After: 0}, result.KeywordMap["kubernetes"])
}

func TestRewrite_GlobalInsertionCap(t *testing.T) {
	tex := strings.Join([]string{
		"\\begin{itemize}",
		"  \\item First milestone shipped on schedule.",
		"  \\item Second milestone shipped on schedule.",
		"  \\item Third milestone shipped on schedule.",
		"  \\item Fourth milestone shipped on schedule.",
		"\\end{itemize}",
	}, "\n")
	candidates := []types.KeywordCandidate{{Token: "terraform"}}

	result := newTestRewriter().Rewrite(tex, candidates, false)

	assert.Equal(t, 2, strings.Count(result.OptimizedTex, "(terraform)"), "insertions stop at the global cap")
	assert.Equal(t, 2, result.KeywordMap["terraform"].After)
}

func TestRewrite_HigherRankedKeywordEditsFirst(t *testing.T) {
	tex := "\\begin{itemize}\n  \\item Automated pandas workflows for the data team.\n\\end{itemize}"
	candidates := []types.KeywordCandidate{
		{Token: "python", Synonyms: []string{"pandas"}},
		{Token: "numpy", Synonyms: []string{"pandas"}},
	}

	result := newTestRewriter().Rewrite(tex, candidates, true)

	assert.Contains(t, result.OptimizedTex, "python workflows")
	assert.NotContains(t, result.OptimizedTex, "numpy")
}

func TestReplaceSynonym(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		synonym  string
		keyword  string
		expected string
		ok       bool
	}{
		{
			name:     "first occurrence replaced",
			text:     "Used pandas and pandas daily.",
			synonym:  "pandas",
			keyword:  "python",
			expected: "Used python and pandas daily.",
			ok:       true,
		},
		{
			name:     "case insensitive match",
			text:     "Used Pandas daily.",
			synonym:  "pandas",
			keyword:  "python",
			expected: "Used python daily.",
			ok:       true,
		},
		{
			name:     "absent synonym",
			text:     "Used spark daily.",
			synonym:  "pandas",
			keyword:  "python",
			expected: "Used spark daily.",
			ok:       false,
		},
		{
			name:     "macro guard rejects match near backslash",
			text:     "Used \\pandas daily.",
			synonym:  "pandas",
			keyword:  "python",
			expected: "Used \\pandas daily.",
			ok:       false,
		},
		{
			name:     "macro guard window extends past the match",
			text:     "Ran pandas\\% jobs.",
			synonym:  "pandas",
			keyword:  "python",
			expected: "Ran pandas\\% jobs.",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := replaceSynonym(tt.text, tt.synonym, tt.keyword)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRewrite_DiffFormat(t *testing.T) {
	tex := "\\begin{itemize}\n  \\item Led analytics initiatives with pandas tooling.\n\\end{itemize}"
	candidates := []types.KeywordCandidate{{Token: "python", Synonyms: []string{"pandas"}}}

	result := newTestRewriter().Rewrite(tex, candidates, true)

	require.NotEmpty(t, result.Diff)
	assert.Contains(t, result.Diff, "--- original.tex")
	assert.Contains(t, result.Diff, "+++ main_optimized.tex")
	assert.Contains(t, result.Diff, "-  \\item Led analytics initiatives with pandas tooling.")
	assert.Contains(t, result.Diff, "+  \\item Led analytics initiatives with python tooling.")
}

func TestRewrite_NoBullets(t *testing.T) {
	tex := "\\section{Skills}\nPython, SQL"
	candidates := []types.KeywordCandidate{{Token: "terraform"}}

	result := newTestRewriter().Rewrite(tex, candidates, false)

	assert.Equal(t, tex, result.OptimizedTex)
	assert.Equal(t, types.KeywordUsage{Before: 0, After: 0}, result.KeywordMap["terraform"])
}

func TestRewrite_KeywordMapCountsFullText(t *testing.T) {
	tex := "\\section{Skills}\nautomation\n\\begin{itemize}\n  \\item Built workflow orchestration for reporting.\n\\end{itemize}"
	candidates := []types.KeywordCandidate{{Token: "automation"}}

	result := newTestRewriter().Rewrite(tex, candidates, true)

	usage := result.KeywordMap["automation"]
	assert.Equal(t, 1, usage.Before, "before counts include non-bullet text")
	assert.GreaterOrEqual(t, usage.After, usage.Before)
}
