package keywords

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyStrategy_PrioritizesRelevantTerms(t *testing.T) {
	strategy := &FrequencyStrategy{Lexicon: DefaultLexicon()}

	ranked, err := strategy.Rank(context.Background(), "Python analytics automation python dashboard analytics", 5)
	require.NoError(t, err)
	require.NotEmpty(t, ranked)

	tokens := make([]string, 0, len(ranked))
	for _, candidate := range ranked {
		tokens = append(tokens, candidate.Token)
	}

	assert.Equal(t, "python", tokens[0], "most frequent unigram should rank first")
	assert.Contains(t, tokens, "analytics")
	assert.LessOrEqual(t, len(tokens), 5)
}

func TestFrequencyStrategy_Deterministic(t *testing.T) {
	strategy := &FrequencyStrategy{Lexicon: DefaultLexicon()}
	text := "Build data pipelines in Python. Maintain data pipelines and SQL dashboards for analytics."

	first, err := strategy.Rank(context.Background(), text, 10)
	require.NoError(t, err)
	second, err := strategy.Rank(context.Background(), text, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must yield identical ordered output")
}

func TestFrequencyStrategy_UniqueTokens(t *testing.T) {
	strategy := &FrequencyStrategy{Lexicon: DefaultLexicon()}

	ranked, err := strategy.Rank(context.Background(), "python sql python sql python sql tableau", 20)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, candidate := range ranked {
		assert.False(t, seen[candidate.Token], "duplicate token %q in ranked list", candidate.Token)
		seen[candidate.Token] = true
	}
}

func TestFrequencyStrategy_BigramBonus(t *testing.T) {
	strategy := &FrequencyStrategy{Lexicon: DefaultLexicon()}

	// "machine learning" appears twice as a phrase; at equal frequency the
	// phrase must outrank its component words via the 0.5 bonus.
	ranked, err := strategy.Rank(context.Background(), "machine learning machine learning", 10)
	require.NoError(t, err)
	require.NotEmpty(t, ranked)

	assert.Equal(t, "machine learning", ranked[0].Token)
	assert.Equal(t, 2.5, ranked[0].Score)
}

func TestFrequencyStrategy_CuratedSynonymsAttached(t *testing.T) {
	strategy := &FrequencyStrategy{Lexicon: DefaultLexicon()}

	ranked, err := strategy.Rank(context.Background(), "python dashboards", 10)
	require.NoError(t, err)

	byToken := make(map[string][]string)
	for _, candidate := range ranked {
		byToken[candidate.Token] = candidate.Synonyms
	}

	assert.Equal(t, []string{"numpy", "pandas"}, byToken["python"], "curated synonyms are sorted")
}

func TestFrequencyStrategy_EmptyInput(t *testing.T) {
	strategy := &FrequencyStrategy{Lexicon: DefaultLexicon()}

	ranked, err := strategy.Rank(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestFrequencyStrategy_TruncatesToMax(t *testing.T) {
	strategy := &FrequencyStrategy{Lexicon: DefaultLexicon()}

	ranked, err := strategy.Rank(context.Background(), "alpha bravo charlie delta echo foxtrot golf", 3)
	require.NoError(t, err)
	assert.Len(t, ranked, 3)
}

func TestFrequencyStrategy_UnigramWinsCrossCategoryTie(t *testing.T) {
	strategy := &FrequencyStrategy{Lexicon: DefaultLexicon()}

	// "alpha" (count 1) and the bigram "alpha bravo" (count 1 + 0.5) tie
	// nothing here; but "alpha" vs "bravo" tie at score 1 and break on
	// first occurrence. Bigram first-seen indexes sit past all unigram
	// indexes, so at equal score a unigram always precedes a bigram.
	ranked, err := strategy.Rank(context.Background(), "alpha bravo", 10)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "alpha bravo", ranked[0].Token, "bigram bonus ranks the phrase first")
	assert.Equal(t, "alpha", ranked[1].Token)
	assert.Equal(t, "bravo", ranked[2].Token)
}
