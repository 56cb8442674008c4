package types

// KeywordUsage tracks keyword occurrences before and after a rewrite pass
type KeywordUsage struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// RewriteResult represents the output of one constrained rewrite pass.
// OptimizedTex is the full rewritten document; KeywordMap records per-keyword
// occurrence counts before and after; Diff is a line-based unified diff for
// human review.
type RewriteResult struct {
	OptimizedTex string                  `json:"optimized_tex"`
	KeywordMap   map[string]KeywordUsage `json:"keyword_map"`
	Diff         string                  `json:"diff"`
}

// Improved reports whether the rewrite added occurrences of any keyword
func (r *RewriteResult) Improved() bool {
	for _, usage := range r.KeywordMap {
		if usage.After > usage.Before {
			return true
		}
	}
	return false
}
