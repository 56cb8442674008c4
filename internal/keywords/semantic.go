package keywords

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rufusnm24/Resume-Optimizer/internal/llm"
	"github.com/rufusnm24/Resume-Optimizer/internal/prompts"
	internalschemas "github.com/rufusnm24/Resume-Optimizer/internal/schemas"
	"github.com/rufusnm24/Resume-Optimizer/internal/types"
	"github.com/rufusnm24/Resume-Optimizer/schemas"
)

// maxPromptChars caps the job text excerpt sent to the model
const maxPromptChars = 3500

// importanceFloor keeps low-importance semantic keywords above zero after
// scaling, so they still rank in a stable order.
const importanceFloor = 0.1

// importanceScale maps importance in [0,1] onto the same magnitude as
// frequency counts so mixed reports stay readable.
const importanceScale = 10.0

// SemanticStrategy delegates ranking to an LLM with a structured-output
// contract. It is best-effort: any transport error, empty payload, or
// schema violation yields ErrUnavailable so the caller falls back to the
// deterministic frequency strategy.
type SemanticStrategy struct {
	Client  llm.Client
	Lexicon *Lexicon
}

// semanticKeyword mirrors one element of the model's JSON array response
type semanticKeyword struct {
	Keyword    string   `json:"keyword"`
	Synonyms   []string `json:"synonyms"`
	Importance float64  `json:"importance"`
}

// Rank implements Strategy
func (s *SemanticStrategy) Rank(ctx context.Context, text string, maxKeywords int) ([]types.KeywordCandidate, error) {
	if s.Client == nil {
		return nil, ErrUnavailable
	}
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	template := prompts.MustGet("keywords.json", "extract-keywords")
	prompt := prompts.Format(template, map[string]string{
		"MaxKeywords": fmt.Sprintf("%d", maxKeywords),
		"JobText":     llm.TruncateForPrompt(text, maxPromptChars),
	})

	responseText, err := s.Client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	candidates, err := s.parseResponse(responseText, maxKeywords)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrUnavailable
	}
	return candidates, nil
}

// parseResponse validates the model output against the response schema and
// converts it into keyword candidates.
func (s *SemanticStrategy) parseResponse(responseText string, maxKeywords int) ([]types.KeywordCandidate, error) {
	responseText = llm.CleanJSONBlock(responseText)
	if responseText == "" {
		return nil, ErrUnavailable
	}

	schema := schemas.MustRead(schemas.KeywordCandidates)
	if err := internalschemas.ValidateJSONString(schema, responseText); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var items []semanticKeyword
	if err := json.Unmarshal([]byte(responseText), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	seen := make(map[string]bool, len(items))
	candidates := make([]types.KeywordCandidate, 0, len(items))
	for _, item := range items {
		keyword := strings.ToLower(strings.TrimSpace(item.Keyword))
		if keyword == "" || s.Lexicon.IsStopword(keyword) || seen[keyword] {
			continue
		}
		seen[keyword] = true

		synonyms := make([]string, 0, len(item.Synonyms))
		for _, syn := range item.Synonyms {
			syn = strings.ToLower(strings.TrimSpace(syn))
			if syn != "" {
				synonyms = append(synonyms, syn)
			}
		}

		importance := item.Importance
		if importance < importanceFloor {
			importance = importanceFloor
		}

		candidates = append(candidates, types.KeywordCandidate{
			Token:    keyword,
			Score:    importance * importanceScale,
			Synonyms: synonyms,
		})
		if len(candidates) >= maxKeywords {
			break
		}
	}

	return candidates, nil
}
