// Package schemas embeds the JSON Schema documents that describe the
// optimizer's structured artifacts and the semantic ranking response.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema file names available through Read.
const (
	KeywordCandidates = "keyword_candidates.schema.json"
	ScoreBreakdown    = "score_breakdown.schema.json"
	RewriteResult     = "rewrite_result.schema.json"
)

// Read returns the content of an embedded schema file
func Read(name string) (string, error) {
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded schema %s: %w", name, err)
	}
	return string(data), nil
}

// MustRead returns the content of an embedded schema file, panicking if the
// file is missing. Use only for the compile-time constants above.
func MustRead(name string) string {
	content, err := Read(name)
	if err != nil {
		panic(err)
	}
	return content
}
