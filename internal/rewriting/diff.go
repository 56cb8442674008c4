package rewriting

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff renders a line-based unified diff between the original and
// optimized sources for human review. Diff failures degrade to an empty
// string; the diff is advisory output, never load-bearing.
func unifiedDiff(original, optimized string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(optimized),
		FromFile: "original.tex",
		ToFile:   "main_optimized.tex",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(diff, "\n")
}
