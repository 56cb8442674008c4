// Package rewriting performs constrained keyword optimization of LaTeX
// resume bullets. Edits are greedy, bullet by bullet, bounded by a shared
// usage ledger and an optional strict length budget.
package rewriting

import (
	"strings"

	"github.com/rufusnm24/Resume-Optimizer/internal/document"
	"github.com/rufusnm24/Resume-Optimizer/internal/keywords"
	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

// maxInsertionsPerKeyword caps newly credited occurrences of a keyword
// across the whole document.
const maxInsertionsPerKeyword = 2

// strictLengthBudget is the per-bullet length delta allowed under strict policy
const strictLengthBudget = 10

// macroGuardRadius is how close to a backslash a synonym match may sit
// before the replacement is rejected.
const macroGuardRadius = 2

// Rewriter mutates bullet content to raise keyword coverage. Lexicon
// supplies curated synonyms merged with candidate-supplied ones.
type Rewriter struct {
	Lexicon *keywords.Lexicon
}

// NewRewriter returns a rewriter backed by the given lexicon
func NewRewriter(lexicon *keywords.Lexicon) *Rewriter {
	return &Rewriter{Lexicon: lexicon}
}

// Rewrite optimizes the LaTeX source for the ranked keywords. Under strict
// policy, edits that change a bullet's length by more than the budget are
// reverted and the parenthetical fallback is disabled. Rewrite never fails;
// a keyword with no viable edit is simply left with before == after in the
// keyword map.
func (r *Rewriter) Rewrite(texContent string, candidates []types.KeywordCandidate, strict bool) types.RewriteResult {
	doc := document.Parse(texContent)
	usage := make(map[string]int, len(candidates))

	loweredSource := strings.ToLower(texContent)
	beforeCounts := make(map[string]int, len(candidates))
	for _, candidate := range candidates {
		beforeCounts[candidate.Token] = strings.Count(loweredSource, candidate.Token)
	}

	for idx, bullet := range doc.Bullets {
		original := bullet.Content
		updated := original

		perBullet := make(map[string]int, len(candidates))
		loweredBullet := strings.ToLower(updated)
		for _, candidate := range candidates {
			perBullet[candidate.Token] = strings.Count(loweredBullet, candidate.Token)
		}

		for _, candidate := range candidates {
			token := candidate.Token
			if usage[token] >= maxInsertionsPerKeyword {
				continue
			}
			if perBullet[token] >= 1 {
				// already present; credit existing occurrences to the ledger
				usage[token] += perBullet[token]
				continue
			}

			replaced := false
			for _, synonym := range r.Lexicon.ExpandSynonyms(token, candidate.Synonyms) {
				newText, ok := replaceSynonym(updated, synonym, token)
				if !ok {
					continue
				}
				if strict && absInt(len(newText)-len(original)) > strictLengthBudget {
					continue
				}
				updated = newText
				usage[token]++
				perBullet[token]++
				replaced = true
				break
			}
			if replaced {
				continue
			}

			if !strict && usage[token] < maxInsertionsPerKeyword {
				updated += " (" + token + ")"
				usage[token]++
				perBullet[token]++
			}
		}

		if strict && absInt(len(updated)-len(original)) > strictLengthBudget {
			updated = original
		}
		if updated != original {
			doc.ReplaceBullet(idx, updated)
		}
	}

	optimizedTex := doc.Render()
	loweredOptimized := strings.ToLower(optimizedTex)

	keywordMap := make(map[string]types.KeywordUsage, len(candidates))
	for _, candidate := range candidates {
		keywordMap[candidate.Token] = types.KeywordUsage{
			Before: beforeCounts[candidate.Token],
			After:  strings.Count(loweredOptimized, candidate.Token),
		}
	}

	return types.RewriteResult{
		OptimizedTex: optimizedTex,
		KeywordMap:   keywordMap,
		Diff:         unifiedDiff(texContent, optimizedTex),
	}
}

// replaceSynonym swaps the first occurrence of synonym (matched
// case-insensitively) with the canonical keyword. The replacement is
// rejected when the match sits next to a backslash, so formatting commands
// are never corrupted.
func replaceSynonym(text, synonym, keyword string) (string, bool) {
	lowered := strings.ToLower(text)
	idx := strings.Index(lowered, synonym)
	if idx == -1 {
		return text, false
	}

	start := idx - macroGuardRadius
	if start < 0 {
		start = 0
	}
	end := idx + len(synonym) + macroGuardRadius
	if end > len(text) {
		end = len(text)
	}
	if strings.Contains(text[start:end], "\\") {
		return text, false
	}

	return text[:idx] + keyword + text[idx+len(synonym):], true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
