// Package scoring computes a transparent ATS compatibility score across
// coverage, section structure, bullet quality, and keyword distribution.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/rufusnm24/Resume-Optimizer/internal/keywords"
	"github.com/rufusnm24/Resume-Optimizer/internal/types"
)

// weights of the four metrics in the combined total
const (
	coverageWeight     = 0.4
	sectionWeight      = 0.2
	qualityWeight      = 0.2
	distributionWeight = 0.2
)

// DefaultMaxPages is the page count above which the section metric penalizes
const DefaultMaxPages = 2

// requiredSections are the structural sections an ATS expects to find
var requiredSections = []string{"experience", "education", "skills"}

// actionVerbs are the strong openers the quality metric rewards
var actionVerbs = map[string]bool{
	"accelerated": true,
	"achieved":    true,
	"built":       true,
	"coordinated": true,
	"delivered":   true,
	"designed":    true,
	"developed":   true,
	"drove":       true,
	"enabled":     true,
	"improved":    true,
	"implemented": true,
	"launched":    true,
	"led":         true,
	"managed":     true,
	"optimized":   true,
	"owned":       true,
	"reduced":     true,
	"scaled":      true,
	"spearheaded": true,
	"streamlined": true,
}

// Input carries everything a single scoring pass needs. The scorer is a pure
// function of this struct; it never touches shared state.
type Input struct {
	ResumeText      string
	BulletTexts     []string
	Keywords        []types.KeywordCandidate
	SectionsPresent []string
	PageEstimate    int
}

// Scorer computes score breakdowns. Lexicon supplies the curated synonym
// table consulted alongside candidate-supplied synonyms during coverage.
type Scorer struct {
	MaxPages int
	Lexicon  *keywords.Lexicon
}

// NewScorer returns a scorer with the default page limit
func NewScorer(lexicon *keywords.Lexicon) *Scorer {
	return &Scorer{MaxPages: DefaultMaxPages, Lexicon: lexicon}
}

// Score produces a fresh breakdown for the given input. Every metric has a
// defined neutral value for empty input, so Score never fails.
func (s *Scorer) Score(input Input) types.ScoreBreakdown {
	coverage := s.coverageScore(input.ResumeText, input.Keywords)
	section := s.sectionScore(input.SectionsPresent, input.PageEstimate)
	quality := s.qualityScore(input.BulletTexts)
	distribution := s.distributionScore(input.BulletTexts, input.Keywords)

	total := round2(coverage*coverageWeight + section*sectionWeight + quality*qualityWeight + distribution*distributionWeight)

	return types.ScoreBreakdown{
		Coverage:     coverage,
		Section:      section,
		Quality:      quality,
		Distribution: distribution,
		Total:        total,
		Details: map[string]string{
			"coverage":     fmt.Sprintf("%.2f / 100", coverage),
			"section":      fmt.Sprintf("%.2f / 100", section),
			"quality":      fmt.Sprintf("%.2f / 100", quality),
			"distribution": fmt.Sprintf("%.2f / 100", distribution),
		},
	}
}

// coverageScore measures the fraction of keywords present in the resume,
// counting a keyword as matched if its token or any synonym appears.
func (s *Scorer) coverageScore(resumeText string, candidates []types.KeywordCandidate) float64 {
	if len(candidates) == 0 {
		return 100.0
	}

	text := strings.ToLower(resumeText)
	matched := 0
	for _, candidate := range candidates {
		if strings.Contains(text, candidate.Token) {
			matched++
			continue
		}
		for _, syn := range s.Lexicon.ExpandSynonyms(candidate.Token, candidate.Synonyms) {
			if strings.Contains(text, syn) {
				matched++
				break
			}
		}
	}

	ratio := math.Min(float64(matched)/float64(len(candidates)), 1.0)
	return round2(ratio * 100.0)
}

// sectionScore starts at 100 and penalizes missing required sections and
// documents running past the page limit.
func (s *Scorer) sectionScore(sectionsPresent []string, pageEstimate int) float64 {
	present := make(map[string]bool, len(sectionsPresent))
	for _, section := range sectionsPresent {
		present[strings.ToLower(section)] = true
	}

	score := 100.0
	for _, required := range requiredSections {
		if !present[required] {
			score -= 20.0
		}
	}
	if pageEstimate > s.MaxPages {
		score -= 20.0
	}
	return round2(math.Max(score, 0.0))
}

// qualityScore applies per-bullet heuristics: action-verb openers raise the
// score, out-of-range lengths and mixed tense signals lower it.
func (s *Scorer) qualityScore(bulletTexts []string) float64 {
	if len(bulletTexts) == 0 {
		return 50.0
	}

	verbHits := 0
	lengthPenalties := 0
	tensePenalties := 0
	for _, bullet := range bulletTexts {
		words := strings.Fields(strings.ToLower(bullet))
		if len(words) > 0 && actionVerbs[words[0]] {
			verbHits++
		}
		if len(bullet) < 35 || len(bullet) > 220 {
			lengthPenalties++
		}
		if hasMixedTense(words) {
			tensePenalties++
		}
	}

	verbRatio := float64(verbHits) / float64(len(bulletTexts))
	score := 60.0 + verbRatio*30.0
	score -= float64(lengthPenalties) * 4.0
	score -= float64(tensePenalties) * 4.0
	return round2(math.Max(score, 0.0))
}

// hasMixedTense flags a bullet mixing a past-tense word anywhere with a
// progressive-tense word among its first five words.
func hasMixedTense(words []string) bool {
	pastTense := false
	for _, word := range words {
		if strings.HasSuffix(word, "ed") {
			pastTense = true
			break
		}
	}
	if !pastTense {
		return false
	}
	head := words
	if len(head) > 5 {
		head = head[:5]
	}
	for _, word := range head {
		if strings.HasSuffix(word, "ing") {
			return true
		}
	}
	return false
}

// distributionScore rewards spreading keywords across bullets and penalizes
// both global over-use and clustering within a single bullet.
func (s *Scorer) distributionScore(bulletTexts []string, candidates []types.KeywordCandidate) float64 {
	if len(candidates) == 0 {
		return 100.0
	}

	globalCounts := make(map[string]int, len(candidates))
	perBulletCounts := make([]map[string]int, 0, len(bulletTexts))
	for _, bullet := range bulletTexts {
		lowered := strings.ToLower(bullet)
		bulletCounts := make(map[string]int)
		for _, candidate := range candidates {
			occurrences := strings.Count(lowered, candidate.Token)
			if occurrences > 0 {
				bulletCounts[candidate.Token] += occurrences
				globalCounts[candidate.Token] += occurrences
			}
		}
		perBulletCounts = append(perBulletCounts, bulletCounts)
	}

	penalties := 0
	for _, count := range globalCounts {
		if count > 2 {
			penalties += (count - 2) * 5
		}
	}
	for _, bulletCounts := range perBulletCounts {
		for _, count := range bulletCounts {
			if count > 1 {
				penalties += (count - 1) * 5
			}
		}
	}

	covered := 0
	for _, candidate := range candidates {
		if globalCounts[candidate.Token] > 0 {
			covered++
		}
	}
	diversityRatio := float64(covered) / float64(len(candidates))
	score := 70.0 + diversityRatio*30.0 - float64(penalties)
	return round2(math.Min(math.Max(score, 0.0), 100.0))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
