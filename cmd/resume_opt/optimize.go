package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rufusnm24/Resume-Optimizer/internal/config"
	"github.com/rufusnm24/Resume-Optimizer/internal/pipeline"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the full resume optimization pipeline end-to-end",
	Long: `Orchestrates the entire optimization process: ingestion -> keyword ranking -> baseline scoring -> constrained rewriting -> rescoring -> report -> PDF.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runOptimizeCmd,
}

var (
	optConfigPath   string
	optResume       string
	optJob          string
	optJobURL       string
	optOutputDir    string
	optATSThreshold float64
	optStrict       bool
	optMaxKeywords  int
	optUseLLM       bool
	optAPIKey       string
	optUseBrowser   bool
	optVerbose      bool
	optDatabaseURL  string
)

func init() {
	// Config file flag (processed first)
	optimizeCmd.Flags().StringVar(&optConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	optimizeCmd.Flags().StringVarP(&optResume, "resume", "r", "", "Path to LaTeX resume file")
	optimizeCmd.Flags().StringVarP(&optJob, "job", "j", "", "Path to job posting file, text or JSON (mutually exclusive with --job-url)")
	optimizeCmd.Flags().StringVar(&optJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	optimizeCmd.Flags().StringVarP(&optOutputDir, "output-dir", "o", "", "Directory for run artifacts")
	optimizeCmd.Flags().Float64Var(&optATSThreshold, "ats-threshold", 0, "Minimum acceptable ATS score (default 80)")
	optimizeCmd.Flags().BoolVar(&optStrict, "strict", false, "Restrict bullet edits to +/- 10 chars")
	optimizeCmd.Flags().IntVar(&optMaxKeywords, "max-keywords", 0, "Maximum keyword candidates to rank")
	optimizeCmd.Flags().BoolVar(&optUseLLM, "use-llm", false, "Use semantic keyword ranking via Gemini")
	optimizeCmd.Flags().BoolVar(&optUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	optimizeCmd.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	optimizeCmd.Flags().StringVar(&optAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	optimizeCmd.Flags().StringVar(&optDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimizeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if optConfigPath != "" {
		loadedCfg, err := config.LoadConfig(optConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if optVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", optConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = optResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = optJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = optJobURL
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = optOutputDir
	}
	if cmd.Flags().Changed("ats-threshold") {
		cfg.ATSThreshold = optATSThreshold
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = optStrict
	}
	if cmd.Flags().Changed("max-keywords") {
		cfg.MaxKeywords = optMaxKeywords
	}
	if cmd.Flags().Changed("use-llm") {
		cfg.UseLLM = optUseLLM
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = optAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = optUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = optVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = optDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 5: API key handling, only needed when semantic ranking is on
	if cfg.UseLLM && cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.UseLLM && cfg.APIKey == "" {
		fmt.Fprintln(os.Stdout, "Warning: GEMINI_API_KEY not found. Using frequency ranking.")
		cfg.UseLLM = false
	}

	// Step 6: Database URL is optional; persistence is skipped without it
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		ResumePath:   cfg.Resume,
		JobPath:      cfg.Job,
		JobURL:       cfg.JobURL,
		OutputDir:    cfg.OutputDir,
		ATSThreshold: cfg.ATSThreshold,
		Strict:       cfg.Strict,
		MaxKeywords:  cfg.MaxKeywords,
		UseLLM:       cfg.UseLLM,
		APIKey:       cfg.APIKey,
		UseBrowser:   cfg.UseBrowser,
		Verbose:      cfg.Verbose,
		DatabaseURL:  cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "ATS score: %.2f -> %.2f (threshold %.0f)\n",
		result.Before.Total, result.After.Total, cfg.ATSThreshold)
	if !result.MeetsThreshold {
		fmt.Fprintln(os.Stdout, "Warning: optimized resume is below the ATS threshold")
	}
	fmt.Fprintf(os.Stdout, "Optimized resume saved to %s\n", result.Paths.OptimizedTex)
	fmt.Fprintf(os.Stdout, "PDF saved to %s\n", result.Paths.PDF)
	fmt.Fprintf(os.Stdout, "Report saved to %s\n", result.Paths.Report)

	return nil
}
