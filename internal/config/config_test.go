package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"resume": "resume.tex",
		"ats_threshold": 85,
		"strict": true,
		"max_keywords": 15
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.tex", cfg.Resume)
	assert.Equal(t, 85.0, cfg.ATSThreshold)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 15, cfg.MaxKeywords)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveJobSources(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/jobs/1"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_ThresholdRange(t *testing.T) {
	cfg := &Config{ATSThreshold: 150}
	assert.Error(t, cfg.Validate())

	cfg = &Config{ATSThreshold: 80}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_InvalidURL(t *testing.T) {
	cfg := &Config{JobURL: "not a url"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "nope.tex")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.tex")
	job := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resume, []byte("tex"), 0644))
	require.NoError(t, os.WriteFile(job, []byte("desc"), 0644))

	cfg := &Config{Resume: resume, Job: job}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.tex"}
	defaults := Config{
		Resume:       "default.tex",
		Job:          "job.txt",
		ATSThreshold: 85,
		MaxKeywords:  10,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.tex", merged.Resume, "explicit value wins")
	assert.Equal(t, "job.txt", merged.Job)
	assert.Equal(t, 85.0, merged.ATSThreshold)
	assert.Equal(t, 10, merged.MaxKeywords)
	assert.Equal(t, DefaultOutputDir, merged.OutputDir)
}

func TestMergeWithDefaults_FallbackThreshold(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultATSThreshold, merged.ATSThreshold)
}
