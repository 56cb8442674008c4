package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

// LoadJob reads a manual job description from a JSON or plain text file.
// JSON files must decode into a ManualJob; anything else is treated as raw
// description text with the file stem as the title.
func LoadJob(path string) (*types.ManualJob, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job types.ManualJob
	if err := json.Unmarshal(content, &job); err == nil && job.Description != "" {
		job.NormalizeDescription()
		if job.URL == "" {
			job.URL = "manual://" + fileStem(path)
		}
		return &job, nil
	}

	stem := fileStem(path)
	job = types.ManualJob{
		Title:       stem,
		Company:     "Manual",
		Description: CleanText(string(content)),
		URL:         "manual://" + stem,
	}
	job.NormalizeDescription()
	return &job, nil
}

// LoadJobs loads manual job descriptions from several files
func LoadJobs(paths []string) ([]*types.ManualJob, error) {
	jobs := make([]*types.ManualJob, 0, len(paths))
	for _, path := range paths {
		job, err := LoadJob(path)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// SaveJobArtifact persists a harvested job next to the run's other outputs:
// a structured JSON file named from the job plus the raw description text.
func SaveJobArtifact(dir string, job *types.ManualJob) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create job artifact directory: %w", err)
	}

	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	name := slug(job.Title) + "_" + slug(job.Company) + ".json"
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "job_description.txt"), []byte(job.Description), 0644); err != nil {
		return fmt.Errorf("failed to write job description: %w", err)
	}
	return nil
}

// fileStem returns the file name without directory or extension
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// slug lowercases a value and keeps only alphanumerics and dashes
func slug(value string) string {
	safe := strings.ReplaceAll(strings.ToLower(value), " ", "-")
	var b strings.Builder
	for _, ch := range safe {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '-' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
