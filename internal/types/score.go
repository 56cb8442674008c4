package types

// ScoreBreakdown represents an ATS compatibility score across four metrics.
// Total is the fixed weighted combination of the sub-scores
// (0.4*coverage + 0.2*section + 0.2*quality + 0.2*distribution),
// rounded to two decimals. Details holds each sub-score formatted for
// reporting as "X.XX / 100".
type ScoreBreakdown struct {
	Coverage     float64           `json:"coverage"`
	Section      float64           `json:"section"`
	Quality      float64           `json:"quality"`
	Distribution float64           `json:"distribution"`
	Total        float64           `json:"total"`
	Details      map[string]string `json:"details"`
}
