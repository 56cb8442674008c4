package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResumeTex = `\documentclass{article}
\begin{document}
\section{Experience}
\begin{itemize}
  \item Led analytics initiatives with pandas tooling.
  \item Drove reporting workflows for stakeholders.
\end{itemize}
\section{Education}
\section{Skills}
\end{document}
`

func writeTestInputs(t *testing.T) (resumePath, jobPath, outDir string) {
	t.Helper()
	tmpDir := t.TempDir()
	resumePath = filepath.Join(tmpDir, "resume.tex")
	jobPath = filepath.Join(tmpDir, "job.txt")
	outDir = filepath.Join(tmpDir, "artifacts")

	require.NoError(t, os.WriteFile(resumePath, []byte(testResumeTex), 0644))
	require.NoError(t, os.WriteFile(jobPath, []byte(
		"Looking for python experience plus automation and analytics skills.",
	), 0644))
	return resumePath, jobPath, outDir
}

func TestOptimizeCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, jobPath, outDir := writeTestInputs(t)

	cmd := exec.Command(binaryPath, "optimize",
		"--resume", resumePath, "--job", jobPath, "--output-dir", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	assert.Contains(t, string(output), "ATS score:")
	assert.Contains(t, string(output), "Optimized resume saved to")

	for _, name := range []string{"main_optimized.tex", "diff.patch", "keyword_map.json", "report.md", "Resume_Optimized.pdf"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "artifact %s should exist", name)
	}
}

func TestOptimizeCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, jobPath, _ := writeTestInputs(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --resume",
			args:        []string{"optimize", "--job", jobPath},
			errorString: "--resume is required",
		},
		{
			name:        "Neither --job nor --job-url provided",
			args:        []string{"optimize", "--resume", resumePath},
			errorString: "either --job or --job-url must be provided",
		},
		{
			name:        "Both --job and --job-url provided",
			args:        []string{"optimize", "--resume", resumePath, "--job", jobPath, "--job-url", "https://example.com/posting"},
			errorString: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestOptimizeCommand_ConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, jobPath, outDir := writeTestInputs(t)

	configPath := filepath.Join(filepath.Dir(resumePath), "config.json")
	configJSON := `{"resume": "` + resumePath + `", "job": "` + jobPath + `", "output_dir": "` + outDir + `"}`
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))

	cmd := exec.Command(binaryPath, "optimize", "--config", configPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	assert.Contains(t, string(output), "Optimized resume saved to")
}

func TestOptimizeCommand_InvalidResume(t *testing.T) {
	binaryPath := getBinaryPath(t)
	_, jobPath, outDir := writeTestInputs(t)

	cmd := exec.Command(binaryPath, "optimize",
		"--resume", "/nonexistent/resume.tex", "--job", jobPath, "--output-dir", outDir)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read resume")
}

func TestOptimizeCommand_ExitCode(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath, jobPath, outDir := writeTestInputs(t)

	// Success case
	cmd := exec.Command(binaryPath, "optimize",
		"--resume", resumePath, "--job", jobPath, "--output-dir", outDir)
	assert.NoError(t, cmd.Run())

	// Failure case - missing job file
	cmd = exec.Command(binaryPath, "optimize",
		"--resume", resumePath, "--job", "/nonexistent/job.txt", "--output-dir", outDir)
	err := cmd.Run()
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.NotEqual(t, 0, exitError.ExitCode())
	} else {
		assert.Error(t, err)
	}
}
