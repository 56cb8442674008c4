package types

import "strings"

// ManualJob represents a job posting supplied manually (file or URL ingestion)
type ManualJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Seniority   string `json:"seniority,omitempty"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// NormalizeDescription collapses runs of whitespace in the description to
// single spaces, matching how manually pasted postings are cleaned up.
func (j *ManualJob) NormalizeDescription() {
	j.Description = strings.Join(strings.Fields(j.Description), " ")
}
