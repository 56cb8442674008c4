// Package pipeline provides the high-level orchestration for a resume
// optimization run: ingest, rank, score, rewrite, rescore, persist.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/rufusnm24/Resume-Optimizer/internal/compilepdf"
	"github.com/rufusnm24/Resume-Optimizer/internal/db"
	"github.com/rufusnm24/Resume-Optimizer/internal/document"
	"github.com/rufusnm24/Resume-Optimizer/internal/ingestion"
	"github.com/rufusnm24/Resume-Optimizer/internal/keywords"
	"github.com/rufusnm24/Resume-Optimizer/internal/llm"
	"github.com/rufusnm24/Resume-Optimizer/internal/report"
	"github.com/rufusnm24/Resume-Optimizer/internal/rewriting"
	"github.com/rufusnm24/Resume-Optimizer/internal/scoring"
	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath   string
	JobPath      string
	JobURL       string
	OutputDir    string
	ATSThreshold float64
	Strict       bool
	MaxKeywords  int
	UseLLM       bool
	APIKey       string
	UseBrowser   bool
	Verbose      bool
	DatabaseURL  string

	// Ranker overrides the default keyword ranker when set; used by tests
	// and callers that bring their own strategy.
	Ranker *keywords.Ranker

	// OnProgress is called as each stage begins. Optional.
	OnProgress func(stage string)
}

// Pipeline stage names reported through RunOptions.OnProgress
const (
	StageIngest    = "ingest"
	StageRank      = "rank"
	StageScore     = "score"
	StageRewrite   = "rewrite"
	StageRescore   = "rescore"
	StageArtifacts = "artifacts"
	StagePersist   = "persist"
)

// ArtifactPaths lists the files a completed run produced
type ArtifactPaths struct {
	OptimizedTex string `json:"optimized_tex"`
	Diff         string `json:"diff"`
	KeywordMap   string `json:"keyword_map"`
	Report       string `json:"report"`
	PDF          string `json:"pdf"`
}

// Result summarizes a completed optimization run
type Result struct {
	Job            *types.ManualJob              `json:"job"`
	Keywords       []types.KeywordCandidate      `json:"keywords"`
	Before         types.ScoreBreakdown          `json:"before"`
	After          types.ScoreBreakdown          `json:"after"`
	KeywordMap     map[string]types.KeywordUsage `json:"keyword_map"`
	MeetsThreshold bool                          `json:"meets_threshold"`
	Paths          ArtifactPaths                 `json:"paths"`
}

// Run executes the full optimization pipeline and writes all artifacts to
// opts.OutputDir. The resume and the job are loaded in parallel; everything
// downstream is sequential because the rewriter's usage ledger is shared
// mutable state.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = "artifacts"
	}
	if opts.MaxKeywords <= 0 {
		opts.MaxKeywords = keywords.DefaultMaxKeywords
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	printer := report.NewPrinter(os.Stdout)
	lexicon := keywords.DefaultLexicon()

	progress := opts.OnProgress
	if progress == nil {
		progress = func(string) {}
	}

	// Load the resume and the job posting in parallel
	progress(StageIngest)
	var resumeText string
	var job *types.ManualJob

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		content, err := os.ReadFile(opts.ResumePath)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		resumeText = string(content)
		return nil
	})
	g.Go(func() error {
		loaded, err := loadJob(gCtx, opts)
		if err != nil {
			return fmt.Errorf("job ingestion failed: %w", err)
		}
		job = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintJob(job)
	}

	// Rank keywords against the job description
	progress(StageRank)
	ranker := opts.Ranker
	if ranker == nil {
		ranker = buildRanker(opts, lexicon)
	}
	ranked := ranker.Rank(ctx, job.Description, opts.MaxKeywords)
	if opts.Verbose {
		printer.PrintKeywords(ranked)
	}

	scorer := scoring.NewScorer(lexicon)

	// Baseline score
	progress(StageScore)
	doc := document.Parse(resumeText)
	before := scorer.Score(scoring.Input{
		ResumeText:      resumeText,
		BulletTexts:     doc.BulletTexts(),
		Keywords:        ranked,
		SectionsPresent: doc.SectionNames(),
		PageEstimate:    doc.PageEstimate(),
	})

	// Constrained rewrite
	progress(StageRewrite)
	rewriter := rewriting.NewRewriter(lexicon)
	rewrite := rewriter.Rewrite(resumeText, ranked, opts.Strict)

	// Final score over the optimized document
	progress(StageRescore)
	optimizedDoc := document.Parse(rewrite.OptimizedTex)
	after := scorer.Score(scoring.Input{
		ResumeText:      rewrite.OptimizedTex,
		BulletTexts:     optimizedDoc.BulletTexts(),
		Keywords:        ranked,
		SectionsPresent: optimizedDoc.SectionNames(),
		PageEstimate:    optimizedDoc.PageEstimate(),
	})
	if opts.Verbose {
		printer.PrintScores(before, after)
		printer.PrintKeywordMap(rewrite.KeywordMap)
	}

	progress(StageArtifacts)
	paths, err := writeArtifacts(ctx, opts, job, ranked, before, after, &rewrite)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Job:            job,
		Keywords:       ranked,
		Before:         before,
		After:          after,
		KeywordMap:     rewrite.KeywordMap,
		MeetsThreshold: after.Total >= opts.ATSThreshold,
		Paths:          paths,
	}

	progress(StagePersist)
	persistRun(ctx, opts, result, &rewrite)

	return result, nil
}

// loadJob resolves the job posting from a URL or a manual file
func loadJob(ctx context.Context, opts RunOptions) (*types.ManualJob, error) {
	if opts.JobURL != "" {
		return ingestion.JobFromURL(ctx, opts.JobURL, opts.UseBrowser, opts.Verbose)
	}
	return ingestion.LoadJob(opts.JobPath)
}

// buildRanker wires the semantic strategy when LLM use is enabled and an
// API key is present; the frequency fallback is always available.
func buildRanker(opts RunOptions, lexicon *keywords.Lexicon) *keywords.Ranker {
	var primary keywords.Strategy
	if opts.UseLLM && opts.APIKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), opts.APIKey)
		if err == nil {
			primary = &keywords.SemanticStrategy{Client: client, Lexicon: lexicon}
		} else if opts.Verbose {
			fmt.Printf("[VERBOSE] LLM client unavailable: %v, using frequency ranking\n", err)
		}
	}
	return keywords.NewRanker(primary, lexicon)
}

// writeArtifacts materializes every run output under the output directory
func writeArtifacts(ctx context.Context, opts RunOptions, job *types.ManualJob, ranked []types.KeywordCandidate, before, after types.ScoreBreakdown, rewrite *types.RewriteResult) (ArtifactPaths, error) {
	paths := ArtifactPaths{
		OptimizedTex: filepath.Join(opts.OutputDir, "main_optimized.tex"),
		Diff:         filepath.Join(opts.OutputDir, "diff.patch"),
		KeywordMap:   filepath.Join(opts.OutputDir, "keyword_map.json"),
		Report:       filepath.Join(opts.OutputDir, "report.md"),
		PDF:          filepath.Join(opts.OutputDir, "Resume_Optimized.pdf"),
	}

	if err := os.WriteFile(paths.OptimizedTex, []byte(rewrite.OptimizedTex), 0644); err != nil {
		return paths, fmt.Errorf("failed to write optimized tex: %w", err)
	}
	if err := os.WriteFile(paths.Diff, []byte(rewrite.Diff), 0644); err != nil {
		return paths, fmt.Errorf("failed to write diff: %w", err)
	}

	keywordMapJSON, err := json.MarshalIndent(rewrite.KeywordMap, "", "  ")
	if err != nil {
		return paths, fmt.Errorf("failed to marshal keyword map: %w", err)
	}
	if err := os.WriteFile(paths.KeywordMap, keywordMapJSON, 0644); err != nil {
		return paths, fmt.Errorf("failed to write keyword map: %w", err)
	}

	markdown := report.RenderMarkdown(job, ranked, before, after, opts.ATSThreshold)
	if err := os.WriteFile(paths.Report, []byte(markdown), 0644); err != nil {
		return paths, fmt.Errorf("failed to write report: %w", err)
	}

	if err := ingestion.SaveJobArtifact(filepath.Join(opts.OutputDir, "jobs"), job); err != nil {
		return paths, err
	}

	compiler := compilepdf.NewCompiler()
	if _, err := compiler.Compile(ctx, paths.OptimizedTex, paths.PDF); err != nil {
		return paths, fmt.Errorf("pdf compilation failed: %w", err)
	}

	return paths, nil
}

// persistRun stores the run and its artifacts in PostgreSQL when configured.
// Persistence is best-effort: failures are reported but never fail the run.
func persistRun(ctx context.Context, opts RunOptions, result *Result, rewrite *types.RewriteResult) {
	if opts.DatabaseURL == "" {
		return
	}

	database, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		fmt.Printf("Warning: Failed to connect to database: %v\n", err)
		fmt.Printf("Continuing without database persistence...\n")
		return
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		fmt.Printf("Warning: Failed to ensure database schema: %v\n", err)
		return
	}

	runID, err := database.CreateRun(ctx, result.Job.Company, result.Job.Title, result.Job.URL)
	if err != nil {
		fmt.Printf("Warning: Failed to create database run: %v\n", err)
		return
	}
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
	}

	_ = database.SaveTextArtifact(ctx, runID, db.StepJobPosting, result.Job.Description)
	_ = database.SaveArtifact(ctx, runID, db.StepKeywords, result.Keywords)
	_ = database.SaveArtifact(ctx, runID, db.StepScoreBefore, result.Before)
	_ = database.SaveArtifact(ctx, runID, db.StepScoreAfter, result.After)
	_ = database.SaveArtifact(ctx, runID, db.StepKeywordMap, result.KeywordMap)
	_ = database.SaveTextArtifact(ctx, runID, db.StepOptimizedTex, rewrite.OptimizedTex)
	_ = database.SaveTextArtifact(ctx, runID, db.StepDiff, rewrite.Diff)

	// threshold misses are still successful runs
	if err := database.CompleteRun(ctx, runID, db.StatusCompleted); err != nil {
		fmt.Printf("Warning: Failed to complete database run: %v\n", err)
	}
}
