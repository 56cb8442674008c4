// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// DefaultATSThreshold is the minimum total score the pipeline aims for
const DefaultATSThreshold = 80.0

// DefaultOutputDir is where run artifacts are written
const DefaultOutputDir = "artifacts"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume    string `json:"resume,omitempty"`     // Path to LaTeX resume
	Job       string `json:"job,omitempty"`        // Path to job description file (text or JSON)
	JobURL    string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch job posting from
	OutputDir string `json:"output_dir,omitempty"` // Directory for run artifacts

	// Behavior
	ATSThreshold float64 `json:"ats_threshold,omitempty" validate:"gte=0,lte=100"` // Minimum acceptable total score
	Strict       bool    `json:"strict,omitempty"`                                 // Restrict bullet edits to +/- 10 chars
	MaxKeywords  int     `json:"max_keywords,omitempty" validate:"gte=0"`          // Keyword candidates to rank
	UseLLM       bool    `json:"use_llm,omitempty"`                                // Use semantic keyword ranking
	APIKey       string  `json:"api_key,omitempty"`                                // Gemini API key
	UseBrowser   bool    `json:"use_browser,omitempty"`                            // Use headless browser for SPA sites
	Verbose      bool    `json:"verbose,omitempty"`                                // Print detailed debug information
	DatabaseURL  string  `json:"database_url,omitempty"`                           // PostgreSQL connection URL
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.OutputDir == "" {
		result.OutputDir = DefaultOutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MaxKeywords == 0 {
		result.MaxKeywords = defaults.MaxKeywords
	}

	if result.ATSThreshold == 0 {
		if defaults.ATSThreshold > 0 {
			result.ATSThreshold = defaults.ATSThreshold
		} else {
			result.ATSThreshold = DefaultATSThreshold
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
