// Package keywords provides keyword ranking from job posting text.
package keywords

import "sort"

// Lexicon holds the static lookup data used by ranking, scoring, and
// rewriting. Instances are treated as immutable after construction; tests
// can inject custom tables instead of relying on package globals.
type Lexicon struct {
	stopwords map[string]bool
	synonyms  map[string][]string
}

// NewLexicon builds a Lexicon from a stopword list and a synonym table.
// Synonym lists are copied and sorted so lookups are deterministic.
func NewLexicon(stopwords []string, synonyms map[string][]string) *Lexicon {
	lex := &Lexicon{
		stopwords: make(map[string]bool, len(stopwords)),
		synonyms:  make(map[string][]string, len(synonyms)),
	}
	for _, word := range stopwords {
		lex.stopwords[word] = true
	}
	for token, syns := range synonyms {
		copied := make([]string, len(syns))
		copy(copied, syns)
		sort.Strings(copied)
		lex.synonyms[token] = copied
	}
	return lex
}

// DefaultLexicon returns the curated tables for technical/analytical roles.
func DefaultLexicon() *Lexicon {
	return NewLexicon(
		[]string{
			"the", "and", "for", "with", "that", "this", "from", "into",
			"will", "your", "have", "work", "team", "role", "skills",
			"required", "responsibilities", "experience",
		},
		map[string][]string{
			"sql":           {"postgres", "mysql", "redshift"},
			"python":        {"pandas", "numpy"},
			"dashboard":     {"tableau", "looker", "powerbi"},
			"analysis":      {"analytics", "analytical"},
			"manage":        {"lead", "led", "oversaw"},
			"project":       {"program", "initiative"},
			"communication": {"stakeholder", "presentation"},
			"cloud":         {"aws", "gcp", "azure"},
			"automation":    {"workflow", "orchestration"},
			"testing":       {"qa", "quality"},
		},
	)
}

// IsStopword reports whether the lowercased token is in the stopword set
func (l *Lexicon) IsStopword(token string) bool {
	return l.stopwords[token]
}

// SynonymsFor returns the curated synonyms for a token (sorted), or nil
func (l *Lexicon) SynonymsFor(token string) []string {
	return l.synonyms[token]
}

// ExpandSynonyms merges the curated synonyms for a token with
// candidate-supplied ones, preserving curated-first order and dropping
// duplicates. The result is the full set of surface forms considered
// equivalent to the token.
func (l *Lexicon) ExpandSynonyms(token string, supplied []string) []string {
	curated := l.synonyms[token]
	merged := make([]string, 0, len(curated)+len(supplied))
	seen := make(map[string]bool, len(curated)+len(supplied))
	for _, syn := range curated {
		if syn != "" && !seen[syn] {
			merged = append(merged, syn)
			seen[syn] = true
		}
	}
	for _, syn := range supplied {
		if syn != "" && !seen[syn] {
			merged = append(merged, syn)
			seen[syn] = true
		}
	}
	return merged
}
