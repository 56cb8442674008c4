package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteResult_JSONRoundTrip(t *testing.T) {
	result := RewriteResult{
		OptimizedTex: "\\item Led python initiatives.",
		KeywordMap: map[string]KeywordUsage{
			"python": {Before: 0, After: 1},
		},
		Diff: "--- original.tex\n+++ main_optimized.tex\n",
	}

	jsonBytes, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded RewriteResult
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, result.OptimizedTex, decoded.OptimizedTex)
	assert.Equal(t, 1, decoded.KeywordMap["python"].After)
}

func TestRewriteResult_Improved(t *testing.T) {
	improved := RewriteResult{
		KeywordMap: map[string]KeywordUsage{
			"python":     {Before: 0, After: 1},
			"automation": {Before: 1, After: 1},
		},
	}
	assert.True(t, improved.Improved())

	unchanged := RewriteResult{
		KeywordMap: map[string]KeywordUsage{
			"automation": {Before: 1, After: 1},
		},
	}
	assert.False(t, unchanged.Improved())
}

func TestManualJob_NormalizeDescriptionTabsAndNewlines(t *testing.T) {
	job := ManualJob{
		Title:       "Data Analyst",
		Company:     "Acme",
		Description: "Build   dashboards\n\tand  reports",
	}
	job.NormalizeDescription()
	assert.Equal(t, "Build dashboards and reports", job.Description)
}
