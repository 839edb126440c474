package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/harukit/mekiki/internal/common"
	"github.com/harukit/mekiki/internal/model"
)

// cleanMarkdownWrapper strips markdown code fences some models wrap
// around JSON output, returning the inner content.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		} else {
			content = strings.TrimPrefix(content, "```json")
			content = strings.TrimPrefix(content, "```")
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	return strings.TrimSpace(content)
}

// looseNumber tolerates numbers arriving as JSON numbers or as strings.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", s)
	}
	*n = looseNumber(v)
	return nil
}

// rawRiskResponse matches the heterogeneous field names the suggestion
// service has been observed to emit. Every field is optional.
type rawRiskResponse struct {
	RiskScore          *looseNumber `json:"riskScore"`
	Reason             string       `json:"reason"`
	ClarityScore       *looseNumber `json:"clarityScore"`
	ClarityReason      string       `json:"clarityReason"`
	AuthenticityScore  *looseNumber `json:"authenticityScore"`
	AuthenticityReason string       `json:"authenticityReason"`
	CategoryFit        string       `json:"categoryFit"`
	CategoryReason     string       `json:"categoryReason"`
	ImageMismatch      *bool        `json:"imageMismatch"`
	Flags              []string     `json:"flags"`
}

// parseRiskResponse normalizes a raw JSON risk payload into the typed
// response. Unknown or malformed optional fields are dropped, never
// escalated to errors: data-shape failures are absence.
func parseRiskResponse(content string) (model.AIRiskResponse, error) {
	content = cleanMarkdownWrapper(content)

	var raw rawRiskResponse
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return model.AIRiskResponse{}, fmt.Errorf("failed to parse risk response: %w", err)
	}

	var resp model.AIRiskResponse
	resp.Reason = raw.Reason
	resp.ClarityReason = raw.ClarityReason
	resp.AuthenticityReason = raw.AuthenticityReason
	resp.CategoryReason = raw.CategoryReason
	resp.ImageMismatch = raw.ImageMismatch
	resp.Flags = raw.Flags

	if raw.RiskScore != nil {
		// The service reports overall risk in [0,1]; some deployments
		// send [0,100]. Normalize to [0,1].
		v := float64(*raw.RiskScore)
		if v > 1 {
			v /= 100
		}
		if v >= 0 && v <= 1 {
			resp.RiskScore = &v
		}
	}
	if raw.ClarityScore != nil {
		v := float64(*raw.ClarityScore)
		resp.ClarityScore = &v
	}
	if raw.AuthenticityScore != nil {
		v := float64(*raw.AuthenticityScore)
		resp.AuthenticityScore = &v
	}

	switch strings.ToLower(strings.TrimSpace(raw.CategoryFit)) {
	case string(model.CategoryFitMatch):
		fit := model.CategoryFitMatch
		resp.CategoryFit = &fit
	case string(model.CategoryFitMismatch):
		fit := model.CategoryFitMismatch
		resp.CategoryFit = &fit
	}

	return resp, nil
}

// parsePriceSuggestion normalizes a raw JSON price payload. A suggestion
// without a usable price is an error; a missing range is synthesized
// around the suggested price.
func parsePriceSuggestion(content string) (model.PriceSuggestion, error) {
	content = cleanMarkdownWrapper(content)

	var raw struct {
		SuggestedPrice *looseNumber `json:"suggestedPrice"`
		Reasoning      string       `json:"reasoning"`
		PriceRange     struct {
			Min *looseNumber `json:"min"`
			Max *looseNumber `json:"max"`
		} `json:"priceRange"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return model.PriceSuggestion{}, fmt.Errorf("failed to parse price suggestion: %w", err)
	}

	if raw.SuggestedPrice == nil || *raw.SuggestedPrice <= 0 {
		return model.PriceSuggestion{}, fmt.Errorf("%w: no suggested price", common.ErrEmptyResponse)
	}

	sug := model.PriceSuggestion{
		SuggestedPrice: float64(*raw.SuggestedPrice),
		Reasoning:      raw.Reasoning,
	}
	if raw.PriceRange.Min != nil {
		sug.PriceRange.Min = float64(*raw.PriceRange.Min)
	}
	if raw.PriceRange.Max != nil {
		sug.PriceRange.Max = float64(*raw.PriceRange.Max)
	}
	if sug.PriceRange.Min <= 0 {
		sug.PriceRange.Min = sug.SuggestedPrice * 0.8
	}
	if sug.PriceRange.Max <= 0 {
		sug.PriceRange.Max = sug.SuggestedPrice * 1.2
	}
	if sug.PriceRange.Min > sug.PriceRange.Max {
		sug.PriceRange.Min, sug.PriceRange.Max = sug.PriceRange.Max, sug.PriceRange.Min
	}

	return sug, nil
}

// parseDescriptionSuggestion normalizes a raw JSON description payload.
func parseDescriptionSuggestion(content string) (model.DescriptionSuggestion, error) {
	content = cleanMarkdownWrapper(content)

	var raw struct {
		Description string   `json:"description"`
		Highlights  []string `json:"highlights"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return model.DescriptionSuggestion{}, fmt.Errorf("failed to parse description suggestion: %w", err)
	}

	if raw.Description == "" {
		return model.DescriptionSuggestion{}, fmt.Errorf("%w: no description", common.ErrEmptyResponse)
	}

	return model.DescriptionSuggestion{
		Description: raw.Description,
		Highlights:  raw.Highlights,
	}, nil
}
