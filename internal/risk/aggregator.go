// Package risk combines per-axis risk signals into a multi-axis listing
// risk assessment. Two aggregation strategies coexist on purpose: locally
// computed axes use a fixed weight vector, while AI-sourced axes use an
// arithmetic mean over however many axes the service returned.
package risk

import (
	"fmt"
	"math"

	"github.com/harukit/mekiki/internal/heuristics"
	"github.com/harukit/mekiki/internal/model"
	"github.com/harukit/mekiki/internal/priceband"
)

// Axis labels for locally computed axes, in weight order.
const (
	LabelClarity      = "Information clarity"
	LabelPriceValid   = "Price validity"
	LabelAuthenticity = "Authenticity"
	LabelSellerTrust  = "Seller trust"
	LabelCategoryFit  = "Category fit"
)

// Axis labels for AI-sourced axes.
const (
	LabelAIOverall          = "Overall risk"
	LabelAIClarity          = "Listing clarity"
	LabelAIAuthenticity     = "Authenticity"
	LabelAICategoryFit      = "Category fit"
	LabelAIImageConsistency = "Image consistency"
)

// localWeights is the fixed weight vector for the five local axes, in
// declaration order: clarity, price, authenticity, trust, category fit.
var localWeights = [5]float64{0.25, 0.25, 0.20, 0.15, 0.15}

// Clarity axis contributions.
const (
	clarityShortTitleRisk   = 20
	clarityShortDescRisk    = 30
	clarityUnstructuredRisk = 30
	clarityTitleThreshold   = 6
	clarityDescThreshold    = 40
	clarityLongDescFloor    = 240
)

// Authenticity axis scores.
const (
	authenticityHedgingRisk = 55
	authenticityBaseline    = 15
)

// Seller trust axis contributions. Reputation data is unavailable at
// authoring time, so the baseline is conservative.
const (
	trustBaseline        = 20
	trustFewImagesRisk   = 20
	trustNoConditionRisk = 20
)

// Category fit axis contributions.
const (
	categoryFitBaseline      = 35
	categoryFitSelectedCut   = 15
	categoryFitSignalWordCut = 10
)

// AI category fit and image consistency mappings.
const (
	aiCategoryMismatchRisk = 80
	aiCategoryMatchRisk    = 20
	aiImageMismatchRisk    = 85
	aiImageMatchRisk       = 15
)

// Aggregator builds risk axes from local heuristics or AI responses and
// combines them into an overall score.
type Aggregator struct {
	hedgingTerms    []string
	categorySignals []string
}

// NewAggregator creates an aggregator with the default term tables.
func NewAggregator() *Aggregator {
	return &Aggregator{
		hedgingTerms:    heuristics.DefaultHedgingTerms(),
		categorySignals: heuristics.DefaultCategorySignals(),
	}
}

// WithHedgingTerms overrides the evasive-phrase table scored by the
// authenticity axis.
func (a *Aggregator) WithHedgingTerms(terms []string) *Aggregator {
	if len(terms) > 0 {
		a.hedgingTerms = terms
	}
	return a
}

// WithCategorySignals overrides the category-signal keyword table.
func (a *Aggregator) WithCategorySignals(terms []string) *Aggregator {
	if len(terms) > 0 {
		a.categorySignals = terms
	}
	return a
}

// LocalAxes computes all five axes from local heuristics. Always returns
// exactly five axes, in weight order.
func (a *Aggregator) LocalAxes(draft model.ListingDraft, sig heuristics.Signal, price priceband.Evaluation, priceHint string) []model.RiskAxis {
	axes := make([]model.RiskAxis, 0, 5)

	// 1. Information clarity.
	var clarity float64
	if sig.TitleLen < clarityTitleThreshold {
		clarity += clarityShortTitleRisk
	}
	if sig.DescriptionLen < clarityDescThreshold {
		clarity += clarityShortDescRisk
	}
	if !sig.Structured() && sig.DescriptionLen > clarityLongDescFloor {
		clarity += clarityUnstructuredRisk
	}
	axes = append(axes, model.RiskAxis{
		Label: LabelClarity,
		Score: clampScore(clarity),
		Hint:  "structure and sufficiency of title and description",
	})

	// 2. Price validity.
	if priceHint == "" {
		priceHint = "deviation from estimated market band"
	}
	axes = append(axes, model.RiskAxis{
		Label: LabelPriceValid,
		Score: clampScore(price.Risk),
		Hint:  priceHint,
	})

	// 3. Authenticity.
	authenticity := float64(authenticityBaseline)
	if heuristics.MatchesDenyList(draft.Description, a.hedgingTerms) {
		authenticity = authenticityHedgingRisk
	}
	axes = append(axes, model.RiskAxis{
		Label: LabelAuthenticity,
		Score: clampScore(authenticity),
		Hint:  "evasive wording or stacked disclaimers",
	})

	// 4. Seller trust.
	trust := float64(trustBaseline)
	if draft.ImageCount < heuristics.MinImages {
		trust += trustFewImagesRisk
	}
	if draft.Condition == "" {
		trust += trustNoConditionRisk
	}
	axes = append(axes, model.RiskAxis{
		Label: LabelSellerTrust,
		Score: clampScore(trust),
		Hint:  "image count and listing metadata completeness",
	})

	// 5. Category fit.
	fit := float64(categoryFitBaseline)
	if draft.CategoryCode != "" {
		fit -= categoryFitSelectedCut
	}
	if heuristics.MatchesDenyList(draft.SearchText(), a.categorySignals) {
		fit -= categoryFitSignalWordCut
	}
	axes = append(axes, model.RiskAxis{
		Label: LabelCategoryFit,
		Score: clampScore(fit),
		Hint:  "agreement between selected category and text",
	})

	return axes
}

// AxesFromAI converts an AI risk response into axes. Each optional field
// contributes its axis only when present; an entirely empty response
// yields no axes.
func (a *Aggregator) AxesFromAI(resp *model.AIRiskResponse) []model.RiskAxis {
	if resp == nil {
		return nil
	}

	var axes []model.RiskAxis
	if resp.RiskScore != nil {
		axes = append(axes, model.RiskAxis{
			Label: LabelAIOverall,
			Score: clampScore(*resp.RiskScore * 100),
			Hint:  resp.Reason,
		})
	}
	if resp.ClarityScore != nil {
		axes = append(axes, model.RiskAxis{
			Label: LabelAIClarity,
			Score: clampScore(*resp.ClarityScore),
			Hint:  resp.ClarityReason,
		})
	}
	if resp.AuthenticityScore != nil {
		axes = append(axes, model.RiskAxis{
			Label: LabelAIAuthenticity,
			Score: clampScore(*resp.AuthenticityScore),
			Hint:  resp.AuthenticityReason,
		})
	}
	if resp.CategoryFit != nil {
		score := float64(aiCategoryMatchRisk)
		if *resp.CategoryFit == model.CategoryFitMismatch {
			score = aiCategoryMismatchRisk
		}
		axes = append(axes, model.RiskAxis{
			Label: LabelAICategoryFit,
			Score: score,
			Hint:  resp.CategoryReason,
		})
	}
	if resp.ImageMismatch != nil {
		score := float64(aiImageMatchRisk)
		hint := "no major mismatch between images and description"
		if *resp.ImageMismatch {
			score = aiImageMismatchRisk
			hint = "possible mismatch or gap between images and description"
		}
		axes = append(axes, model.RiskAxis{Label: LabelAIImageConsistency, Score: score, Hint: hint})
	}

	return axes
}

// WarningsFromAI collects the response's textual findings as warnings.
func (a *Aggregator) WarningsFromAI(resp *model.AIRiskResponse) []string {
	if resp == nil {
		return nil
	}

	var out []string
	if resp.Reason != "" {
		out = append(out, "overall: "+resp.Reason)
	}
	if resp.ClarityScore != nil && resp.ClarityReason != "" {
		out = append(out, fmt.Sprintf("clarity %.0f: %s", *resp.ClarityScore, resp.ClarityReason))
	}
	if resp.AuthenticityScore != nil && resp.AuthenticityReason != "" {
		out = append(out, fmt.Sprintf("authenticity %.0f: %s", *resp.AuthenticityScore, resp.AuthenticityReason))
	}
	if resp.CategoryFit != nil && resp.CategoryReason != "" {
		out = append(out, fmt.Sprintf("category fit: %s (%s)", *resp.CategoryFit, resp.CategoryReason))
	}
	if resp.ImageMismatch != nil && *resp.ImageMismatch {
		out = append(out, "possible mismatch or gap between images and description")
	}
	out = append(out, resp.Flags...)
	return out
}

// Aggregate derives the overall score from the axis set. Local axes use
// the fixed weight vector; AI-sourced axes use an arithmetic mean across
// however many axes are present. The overall is always recomputed from
// the given axes, never carried over from a previous evaluation.
func (a *Aggregator) Aggregate(axes []model.RiskAxis, source model.RiskSource) float64 {
	if len(axes) == 0 {
		return 0
	}

	var overall float64
	switch source {
	case model.RiskSourceAI:
		var sum float64
		for _, ax := range axes {
			sum += clampScore(ax.Score)
		}
		overall = sum / float64(len(axes))
	default:
		for i, ax := range axes {
			var w float64
			if i < len(localWeights) {
				w = localWeights[i]
			}
			overall += clampScore(ax.Score) * w
		}
	}

	return clampScore(math.Round(overall))
}

// BuildResult assembles a complete assessment result with a freshly
// aggregated overall score.
func (a *Aggregator) BuildResult(axes []model.RiskAxis, warnings []string, source model.RiskSource) model.RiskAssessmentResult {
	clamped := make([]model.RiskAxis, len(axes))
	for i, ax := range axes {
		ax.Score = clampScore(ax.Score)
		clamped[i] = ax
	}
	return model.RiskAssessmentResult{
		Overall:  a.Aggregate(clamped, source),
		Axes:     clamped,
		Warnings: warnings,
		Source:   source,
	}
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
