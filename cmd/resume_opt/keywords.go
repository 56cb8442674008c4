package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rufusnm24/Resume-Optimizer/internal/ingestion"
	"github.com/rufusnm24/Resume-Optimizer/internal/keywords"
	"github.com/rufusnm24/Resume-Optimizer/internal/llm"
	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Rank keywords from a job posting without optimizing a resume",
	Long:  "Ingest a job posting from a file or URL and print the ranked keyword candidates with their synonyms.",
	RunE:  runKeywordsCmd,
}

var (
	kwJob         string
	kwJobURL      string
	kwMaxKeywords int
	kwUseLLM      bool
	kwAPIKey      string
	kwUseBrowser  bool
	kwVerbose     bool
	kwJSON        bool
)

func init() {
	keywordsCmd.Flags().StringVarP(&kwJob, "job", "j", "", "Path to job posting file, text or JSON (mutually exclusive with --job-url)")
	keywordsCmd.Flags().StringVar(&kwJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	keywordsCmd.Flags().IntVar(&kwMaxKeywords, "max-keywords", 0, "Maximum keyword candidates to rank")
	keywordsCmd.Flags().BoolVar(&kwUseLLM, "use-llm", false, "Use semantic keyword ranking via Gemini")
	keywordsCmd.Flags().StringVar(&kwAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	keywordsCmd.Flags().BoolVar(&kwUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	keywordsCmd.Flags().BoolVarP(&kwVerbose, "verbose", "v", false, "Print detailed debug information")
	keywordsCmd.Flags().BoolVar(&kwJSON, "json", false, "Print ranked keywords as JSON")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywordsCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	job, err := loadJobSource(ctx, kwJob, kwJobURL, kwUseBrowser, kwVerbose)
	if err != nil {
		return err
	}

	if kwMaxKeywords <= 0 {
		kwMaxKeywords = keywords.DefaultMaxKeywords
	}

	ranker := buildCLIRanker(ctx, kwUseLLM, kwAPIKey, kwVerbose)
	ranked := ranker.Rank(ctx, job.Description, kwMaxKeywords)

	if kwJSON {
		encoded, err := json.MarshalIndent(types.RankedKeywords{Keywords: ranked}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal keywords: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(encoded))
		return nil
	}

	fmt.Fprintf(os.Stdout, "Ranked keywords for %s at %s:\n", job.Title, job.Company)
	for i, candidate := range ranked {
		synonyms := "none"
		if len(candidate.Synonyms) > 0 {
			synonyms = strings.Join(candidate.Synonyms, ", ")
		}
		fmt.Fprintf(os.Stdout, "%2d. %s (score %.1f, synonyms: %s)\n", i+1, candidate.Token, candidate.Score, synonyms)
	}

	return nil
}

// loadJobSource resolves a job posting from a file path or a URL for the
// standalone commands that do not run the full pipeline.
func loadJobSource(ctx context.Context, jobPath, jobURL string, useBrowser, verbose bool) (*types.ManualJob, error) {
	if jobPath == "" && jobURL == "" {
		return nil, fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobPath != "" && jobURL != "" {
		return nil, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobURL != "" {
		job, err := ingestion.JobFromURL(ctx, jobURL, useBrowser, verbose)
		if err != nil {
			return nil, fmt.Errorf("job ingestion failed: %w", err)
		}
		return job, nil
	}

	job, err := ingestion.LoadJob(jobPath)
	if err != nil {
		return nil, fmt.Errorf("job ingestion failed: %w", err)
	}
	return job, nil
}

// buildCLIRanker mirrors the pipeline's ranker wiring for standalone commands.
func buildCLIRanker(ctx context.Context, useLLM bool, apiKey string, verbose bool) *keywords.Ranker {
	lexicon := keywords.DefaultLexicon()

	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var primary keywords.Strategy
	if useLLM && apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err == nil {
			primary = &keywords.SemanticStrategy{Client: client, Lexicon: lexicon}
		} else if verbose {
			fmt.Printf("[VERBOSE] LLM client unavailable: %v, using frequency ranking\n", err)
		}
	}
	return keywords.NewRanker(primary, lexicon)
}
