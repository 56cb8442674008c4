// Package report renders optimization results for humans: a markdown report
// artifact plus formatted console output for verbose mode.
package report

import (
	"fmt"
	"strings"

	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

// RenderMarkdown builds the report.md artifact summarizing the job, the
// keyword focus, and the before/after ATS scores.
func RenderMarkdown(job *types.ManualJob, candidates []types.KeywordCandidate, before, after types.ScoreBreakdown, threshold float64) string {
	location := job.Location
	if location == "" {
		location = "N/A"
	}
	seniority := job.Seniority
	if seniority == "" {
		seniority = "N/A"
	}

	lines := []string{
		fmt.Sprintf("# Resume Optimization Report for %s at %s", job.Title, job.Company),
		"",
		"## Job Summary",
		fmt.Sprintf("- Location: %s", location),
		fmt.Sprintf("- Seniority: %s", seniority),
		fmt.Sprintf("- URL: %s", job.URL),
		"",
		"## ATS Scores",
		fmt.Sprintf("- Target threshold: %g", threshold),
		fmt.Sprintf("- Before: %g (coverage %g, format %g, quality %g, distribution %g)",
			before.Total, before.Coverage, before.Section, before.Quality, before.Distribution),
		fmt.Sprintf("- After: %g (coverage %g, format %g, quality %g, distribution %g)",
			after.Total, after.Coverage, after.Section, after.Quality, after.Distribution),
		"",
		"## Keyword Focus",
	}

	for _, candidate := range candidates {
		synonyms := strings.Join(candidate.Synonyms, ", ")
		if synonyms == "" {
			synonyms = "none"
		}
		lines = append(lines, fmt.Sprintf("- %s (synonyms: %s)", candidate.Token, synonyms))
	}
	lines = append(lines, "", "Generated by resume-optimizer.")

	return strings.Join(lines, "\n")
}

// SummarizeKeywords returns per-keyword occurrence counts across the
// optimized bullets, for reporting.
func SummarizeKeywords(candidates []types.KeywordCandidate, bulletTexts []string) map[string]int {
	summary := make(map[string]int, len(candidates))
	for _, candidate := range candidates {
		summary[candidate.Token] = 0
	}
	for _, bullet := range bulletTexts {
		lowered := strings.ToLower(bullet)
		for _, candidate := range candidates {
			summary[candidate.Token] += strings.Count(lowered, candidate.Token)
		}
	}
	return summary
}
