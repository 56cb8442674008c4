package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rufusnm24/Resume-Optimizer/internal/document"
	"github.com/rufusnm24/Resume-Optimizer/internal/keywords"
	"github.com/rufusnm24/Resume-Optimizer/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting without rewriting it",
	Long:  "Parse the LaTeX resume, rank keywords from the job posting, and print the ATS score breakdown.",
	RunE:  runScoreCmd,
}

var (
	scoreResume      string
	scoreJob         string
	scoreJobURL      string
	scoreMaxKeywords int
	scoreUseLLM      bool
	scoreAPIKey      string
	scoreUseBrowser  bool
	scoreVerbose     bool
	scoreJSON        bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to LaTeX resume file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job posting file, text or JSON (mutually exclusive with --job-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	scoreCmd.Flags().IntVar(&scoreMaxKeywords, "max-keywords", 0, "Maximum keyword candidates to rank")
	scoreCmd.Flags().BoolVar(&scoreUseLLM, "use-llm", false, "Use semantic keyword ranking via Gemini")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	scoreCmd.Flags().BoolVar(&scoreUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the score breakdown as JSON")

	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScoreCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	content, err := os.ReadFile(scoreResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	resumeText := string(content)

	job, err := loadJobSource(ctx, scoreJob, scoreJobURL, scoreUseBrowser, scoreVerbose)
	if err != nil {
		return err
	}

	if scoreMaxKeywords <= 0 {
		scoreMaxKeywords = keywords.DefaultMaxKeywords
	}

	ranker := buildCLIRanker(ctx, scoreUseLLM, scoreAPIKey, scoreVerbose)
	ranked := ranker.Rank(ctx, job.Description, scoreMaxKeywords)

	doc := document.Parse(resumeText)
	scorer := scoring.NewScorer(keywords.DefaultLexicon())
	breakdown := scorer.Score(scoring.Input{
		ResumeText:      resumeText,
		BulletTexts:     doc.BulletTexts(),
		Keywords:        ranked,
		SectionsPresent: doc.SectionNames(),
		PageEstimate:    doc.PageEstimate(),
	})

	if scoreJSON {
		encoded, err := json.MarshalIndent(breakdown, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal score: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(encoded))
		return nil
	}

	fmt.Fprintf(os.Stdout, "ATS score for %s at %s:\n", job.Title, job.Company)
	fmt.Fprintf(os.Stdout, "  Coverage:     %6.2f\n", breakdown.Coverage)
	fmt.Fprintf(os.Stdout, "  Section:      %6.2f\n", breakdown.Section)
	fmt.Fprintf(os.Stdout, "  Quality:      %6.2f\n", breakdown.Quality)
	fmt.Fprintf(os.Stdout, "  Distribution: %6.2f\n", breakdown.Distribution)
	fmt.Fprintf(os.Stdout, "  Total:        %6.2f\n", breakdown.Total)

	return nil
}
