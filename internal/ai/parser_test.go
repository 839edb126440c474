package ai

import (
	"testing"

	"github.com/harukit/mekiki/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "plain json", content: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", content: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", content: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", content: "  \n{\"a\":1}\n  ", want: `{"a":1}`},
		{name: "empty", content: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.content))
		})
	}
}

func TestParseRiskResponse(t *testing.T) {
	resp, err := parseRiskResponse(`{
		"riskScore": 0.35,
		"reason": "minor inconsistencies",
		"clarityScore": 60,
		"clarityReason": "short description",
		"authenticityScore": 45,
		"categoryFit": "mismatch",
		"categoryReason": "text reads as a camera",
		"imageMismatch": false,
		"flags": ["price looks optimistic"]
	}`)

	require.NoError(t, err)
	require.NotNil(t, resp.RiskScore)
	assert.InDelta(t, 0.35, *resp.RiskScore, 0.001)
	assert.Equal(t, "minor inconsistencies", resp.Reason)
	require.NotNil(t, resp.ClarityScore)
	assert.InDelta(t, 60, *resp.ClarityScore, 0.001)
	require.NotNil(t, resp.CategoryFit)
	assert.Equal(t, model.CategoryFitMismatch, *resp.CategoryFit)
	require.NotNil(t, resp.ImageMismatch)
	assert.False(t, *resp.ImageMismatch)
	assert.Equal(t, []string{"price looks optimistic"}, resp.Flags)
}

func TestParseRiskResponse_PercentScaleNormalized(t *testing.T) {
	resp, err := parseRiskResponse(`{"riskScore": 35}`)

	require.NoError(t, err)
	require.NotNil(t, resp.RiskScore)
	assert.InDelta(t, 0.35, *resp.RiskScore, 0.001)
}

func TestParseRiskResponse_StringNumbers(t *testing.T) {
	resp, err := parseRiskResponse(`{"riskScore": "0.5", "clarityScore": "70"}`)

	require.NoError(t, err)
	require.NotNil(t, resp.RiskScore)
	assert.InDelta(t, 0.5, *resp.RiskScore, 0.001)
	require.NotNil(t, resp.ClarityScore)
	assert.InDelta(t, 70, *resp.ClarityScore, 0.001)
}

func TestParseRiskResponse_UnknownCategoryFitDropped(t *testing.T) {
	resp, err := parseRiskResponse(`{"categoryFit": "sort of"}`)

	require.NoError(t, err)
	assert.Nil(t, resp.CategoryFit, "unrecognized value is absence, not error")
}

func TestParseRiskResponse_MarkdownFence(t *testing.T) {
	resp, err := parseRiskResponse("```json\n{\"riskScore\": 0.2}\n```")

	require.NoError(t, err)
	require.NotNil(t, resp.RiskScore)
	assert.InDelta(t, 0.2, *resp.RiskScore, 0.001)
}

func TestParseRiskResponse_EmptyObject(t *testing.T) {
	resp, err := parseRiskResponse(`{}`)

	require.NoError(t, err)
	assert.True(t, resp.Empty())
}

func TestParseRiskResponse_Malformed(t *testing.T) {
	_, err := parseRiskResponse(`not json at all`)
	assert.Error(t, err)
}

func TestParsePriceSuggestion(t *testing.T) {
	sug, err := parsePriceSuggestion(`{
		"suggestedPrice": 12500,
		"reasoning": "recent comparable sales",
		"priceRange": {"min": 11000, "max": 14000}
	}`)

	require.NoError(t, err)
	assert.InDelta(t, 12500, sug.SuggestedPrice, 0.001)
	assert.Equal(t, "recent comparable sales", sug.Reasoning)
	assert.InDelta(t, 11000, sug.PriceRange.Min, 0.001)
	assert.InDelta(t, 14000, sug.PriceRange.Max, 0.001)
}

func TestParsePriceSuggestion_MissingRangeSynthesized(t *testing.T) {
	sug, err := parsePriceSuggestion(`{"suggestedPrice": 10000}`)

	require.NoError(t, err)
	assert.InDelta(t, 8000, sug.PriceRange.Min, 0.001)
	assert.InDelta(t, 12000, sug.PriceRange.Max, 0.001)
}

func TestParsePriceSuggestion_InvertedRangeSwapped(t *testing.T) {
	sug, err := parsePriceSuggestion(`{"suggestedPrice": 10000, "priceRange": {"min": 12000, "max": 9000}}`)

	require.NoError(t, err)
	assert.LessOrEqual(t, sug.PriceRange.Min, sug.PriceRange.Max)
}

func TestParsePriceSuggestion_NoPrice(t *testing.T) {
	_, err := parsePriceSuggestion(`{"reasoning": "unclear"}`)
	assert.Error(t, err)

	_, err = parsePriceSuggestion(`{"suggestedPrice": 0}`)
	assert.Error(t, err)
}

func TestParseDescriptionSuggestion(t *testing.T) {
	sug, err := parseDescriptionSuggestion(`{
		"description": "Clean, complete in box.",
		"highlights": ["boxed", "manual included"]
	}`)

	require.NoError(t, err)
	assert.Equal(t, "Clean, complete in box.", sug.Description)
	assert.Equal(t, []string{"boxed", "manual included"}, sug.Highlights)
}

func TestParseDescriptionSuggestion_Empty(t *testing.T) {
	_, err := parseDescriptionSuggestion(`{}`)
	assert.Error(t, err)
}
