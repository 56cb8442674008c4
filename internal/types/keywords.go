// Package types provides type definitions for structured data passed between optimizer stages.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordCandidate is a ranked keyword extracted from a job posting.
// Token is the canonical lowercase form (one or two words); Synonyms are
// alternate surface forms treated as equivalent when matching resume text.
type KeywordCandidate struct {
	Token    string   `json:"token"`
	Score    float64  `json:"score"`
	Synonyms []string `json:"synonyms"`
}

// RankedKeywords represents an ordered keyword list (wrapper for schema)
type RankedKeywords struct {
	Keywords []KeywordCandidate `json:"keywords"`
}

// Tokens returns the candidate tokens in ranked order
func (rk *RankedKeywords) Tokens() []string {
	tokens := make([]string, 0, len(rk.Keywords))
	for _, kw := range rk.Keywords {
		tokens = append(tokens, kw.Token)
	}
	return tokens
}
