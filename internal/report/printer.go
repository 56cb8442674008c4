package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxKeywordsToShow is the default number of keywords to display
	maxKeywordsToShow = 5
)

// Printer handles formatted console output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a summary of the job being optimized for
func (p *Printer) PrintJob(job *types.ManualJob) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	if job.Seniority != "" {
		sb.WriteString(fmt.Sprintf("Level:    %s\n", job.Seniority))
	}
	sb.WriteString(fmt.Sprintf("Source:   %s", job.URL))

	p.printBox("JOB POSTING", sb.String())
}

// PrintKeywords outputs the top ranked keywords with scores and synonyms
func (p *Printer) PrintKeywords(candidates []types.KeywordCandidate) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords ranked: %d\n\n", len(candidates)))

	count := len(candidates)
	if count > maxKeywordsToShow {
		count = maxKeywordsToShow
	}
	for i := 0; i < count; i++ {
		candidate := candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, candidate.Token))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", candidate.Score))
		if len(candidate.Synonyms) > 0 {
			synonyms := strings.Join(candidate.Synonyms, ", ")
			if len(synonyms) > 40 {
				synonyms = synonyms[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Synonyms: %s\n", synonyms))
		}
	}
	if len(candidates) > maxKeywordsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(candidates)-maxKeywordsToShow))
	}

	p.printBox("RANKED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScores outputs the before/after score breakdowns side by side
func (p *Printer) PrintScores(before, after types.ScoreBreakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-14s %8s %8s\n", "metric", "before", "after"))
	for _, row := range []struct {
		name          string
		before, after float64
	}{
		{"coverage", before.Coverage, after.Coverage},
		{"section", before.Section, after.Section},
		{"quality", before.Quality, after.Quality},
		{"distribution", before.Distribution, after.Distribution},
		{"total", before.Total, after.Total},
	} {
		sb.WriteString(fmt.Sprintf("%-14s %8.2f %8.2f\n", row.name, row.before, row.after))
	}

	p.printBox("ATS SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywordMap outputs per-keyword before/after occurrence counts
func (p *Printer) PrintKeywordMap(keywordMap map[string]types.KeywordUsage) {
	if len(keywordMap) == 0 {
		return
	}

	tokens := make([]string, 0, len(keywordMap))
	for token := range keywordMap {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	var sb strings.Builder
	for _, token := range tokens {
		usage := keywordMap[token]
		marker := " "
		if usage.After > usage.Before {
			marker = "+"
		}
		sb.WriteString(fmt.Sprintf("%s %-24s %d -> %d\n", marker, token, usage.Before, usage.After))
	}

	p.printBox("KEYWORD USAGE", strings.TrimSuffix(sb.String(), "\n"))
}
