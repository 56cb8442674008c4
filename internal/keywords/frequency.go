package keywords

import (
	"context"
	"sort"
	"strings"

	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

// bigramBonus is added to a two-word phrase's occurrence count so that, at
// equal frequency, a phrase outranks a single word.
const bigramBonus = 0.5

// FrequencyStrategy ranks keywords by occurrence counts over unigrams and
// adjacent two-token phrases. It is deterministic, has no external
// dependencies, and never fails.
type FrequencyStrategy struct {
	Lexicon *Lexicon
}

// Rank implements Strategy.
//
// Unigrams score their occurrence count; bigrams score count + 0.5 and are
// discarded when either half is a stopword. Ties break on first-occurrence
// position, with bigram positions offset past all unigram positions. The
// merged list is deduplicated by token keeping the highest-ranked entry and
// truncated to maxKeywords.
func (s *FrequencyStrategy) Rank(_ context.Context, text string, maxKeywords int) ([]types.KeywordCandidate, error) {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	tokens := Tokenize(text, s.Lexicon)
	if len(tokens) == 0 {
		return []types.KeywordCandidate{}, nil
	}

	unigramCounts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens)*2)
	for idx, token := range tokens {
		unigramCounts[token]++
		if _, ok := firstSeen[token]; !ok {
			firstSeen[token] = idx
		}
	}

	bigrams := make([]string, 0, len(tokens))
	for i := 0; i+1 < len(tokens); i++ {
		bigrams = append(bigrams, tokens[i]+" "+tokens[i+1])
	}
	bigramCounts := make(map[string]int, len(bigrams))
	offset := len(tokens)
	for idx, bigram := range bigrams {
		bigramCounts[bigram]++
		if _, ok := firstSeen[bigram]; !ok {
			firstSeen[bigram] = offset + idx
		}
	}

	candidates := make([]types.KeywordCandidate, 0, len(unigramCounts)+len(bigramCounts))
	for token, count := range unigramCounts {
		candidates = append(candidates, types.KeywordCandidate{
			Token:    token,
			Score:    float64(count),
			Synonyms: s.Lexicon.SynonymsFor(token),
		})
	}
	for bigram, count := range bigramCounts {
		if s.containsStopword(bigram) {
			continue
		}
		candidates = append(candidates, types.KeywordCandidate{
			Token: bigram,
			Score: float64(count) + bigramBonus,
		})
	}

	// Order by descending score, then earliest first occurrence.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return firstSeen[candidates[i].Token] < firstSeen[candidates[j].Token]
	})

	seen := make(map[string]bool, maxKeywords)
	ranked := make([]types.KeywordCandidate, 0, maxKeywords)
	for _, candidate := range candidates {
		if seen[candidate.Token] {
			continue
		}
		seen[candidate.Token] = true
		ranked = append(ranked, candidate)
		if len(ranked) >= maxKeywords {
			break
		}
	}

	return ranked, nil
}

// containsStopword reports whether any word of a phrase is a stopword
func (s *FrequencyStrategy) containsStopword(phrase string) bool {
	for _, part := range strings.Fields(phrase) {
		if s.Lexicon.IsStopword(part) {
			return true
		}
	}
	return false
}
