package keywords

import (
	"context"
	"errors"

	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

// DefaultMaxKeywords is the default ranked-list size when callers pass 0.
const DefaultMaxKeywords = 20

// ErrUnavailable signals that a best-effort ranking strategy could not
// produce usable output and the caller should fall back.
var ErrUnavailable = errors.New("ranking strategy unavailable")

// Strategy ranks keyword candidates from free text.
// Implementations return at most maxKeywords candidates ordered by
// descending importance with unique tokens.
type Strategy interface {
	Rank(ctx context.Context, text string, maxKeywords int) ([]types.KeywordCandidate, error)
}

// Ranker combines a best-effort primary strategy with a deterministic
// fallback. Any primary failure (error or empty output) silently degrades
// to the fallback; errors are never propagated to the caller.
type Ranker struct {
	Primary  Strategy // optional; used first when set
	Fallback Strategy // must always succeed
}

// NewRanker builds a Ranker around the frequency fallback, optionally
// fronted by a primary strategy (pass nil for frequency-only ranking).
func NewRanker(primary Strategy, lexicon *Lexicon) *Ranker {
	return &Ranker{
		Primary:  primary,
		Fallback: &FrequencyStrategy{Lexicon: lexicon},
	}
}

// Rank returns ranked keyword candidates, trying the primary strategy
// first and degrading to the fallback on any failure.
func (r *Ranker) Rank(ctx context.Context, text string, maxKeywords int) []types.KeywordCandidate {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	if r.Primary != nil {
		candidates, err := r.Primary.Rank(ctx, text, maxKeywords)
		if err == nil && len(candidates) > 0 {
			return candidates
		}
	}

	candidates, err := r.Fallback.Rank(ctx, text, maxKeywords)
	if err != nil {
		// The frequency fallback is total; this branch guards against
		// misconfigured custom fallbacks.
		return []types.KeywordCandidate{}
	}
	return candidates
}
