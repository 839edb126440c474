// Package engine orchestrates listing risk assessment: local heuristics run
// synchronously, AI refinement is the single suspension point, and every AI
// or category-source failure degrades to the best locally computable result.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/harukit/mekiki/internal/heuristics"
	"github.com/harukit/mekiki/internal/model"
	"github.com/harukit/mekiki/internal/pattern"
	"github.com/harukit/mekiki/internal/priceband"
	"github.com/harukit/mekiki/internal/risk"
	"github.com/harukit/mekiki/internal/service"
	"github.com/harukit/mekiki/internal/taxonomy"
)

// WarnAIUnavailable is surfaced when AI refinement fails and the result
// falls back to local heuristics only.
const WarnAIUnavailable = "AI diagnosis unavailable, showing basic checks only"

// Fee preview constants for the seller-side proceeds estimate.
const (
	// FeeRate is the marketplace commission on the sale price.
	FeeRate = 0.10
	// FlatShippingFee applies below the free-shipping threshold.
	FlatShippingFee = 880
	// FreeShippingThreshold is the price at which shipping becomes free.
	FreeShippingThreshold = 50000
)

// Config holds configuration options for the assessor.
type Config struct {
	AITimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		AITimeout: 30 * time.Second,
	}
}

// Assessor runs the full assessment pipeline over a listing draft. All
// dependencies are injected; Suggester may be nil for local-only operation.
type Assessor struct {
	analyzer  *heuristics.Analyzer
	patterns  *pattern.Suggester
	prices    *priceband.Evaluator
	risks     *risk.Aggregator
	index     *taxonomy.Index
	suggester service.Suggester
	logger    *slog.Logger
	aiTimeout time.Duration
}

// New creates an assessor with default component wiring.
func New(index *taxonomy.Index, suggester service.Suggester, logger *slog.Logger) *Assessor {
	return NewWithConfig(index, suggester, logger, DefaultConfig())
}

// NewWithConfig creates an assessor with custom configuration.
func NewWithConfig(index *taxonomy.Index, suggester service.Suggester, logger *slog.Logger, cfg Config) *Assessor {
	if index == nil {
		index = taxonomy.NewIndex(taxonomy.DefaultTree())
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = DefaultConfig().AITimeout
	}
	return &Assessor{
		analyzer:  heuristics.NewAnalyzer(),
		patterns:  pattern.NewSuggester(pattern.NewMatcher(pattern.DefaultRules())),
		prices:    priceband.NewEvaluator(),
		risks:     risk.NewAggregator(),
		index:     index,
		suggester: suggester,
		logger:    logger,
		aiTimeout: cfg.AITimeout,
	}
}

// WithComponents overrides the analysis components, used when term tables
// come from configuration.
func (a *Assessor) WithComponents(an *heuristics.Analyzer, ps *pattern.Suggester, pe *priceband.Evaluator, rg *risk.Aggregator) *Assessor {
	if an != nil {
		a.analyzer = an
	}
	if ps != nil {
		a.patterns = ps
	}
	if pe != nil {
		a.prices = pe
	}
	if rg != nil {
		a.risks = rg
	}
	return a
}

// Index returns the classification index the assessor was built with.
func (a *Assessor) Index() *taxonomy.Index {
	return a.index
}

// Assess runs local heuristics only. It is pure computation with no I/O
// and never fails.
func (a *Assessor) Assess(draft model.ListingDraft) model.RiskAssessmentResult {
	report := a.analyzer.Analyze(draft)
	priceEval := a.prices.FromHeuristics(draft.Price, draft.SearchText())
	axes := a.risks.LocalAxes(draft, report.Signal, priceEval, "")
	return a.risks.BuildResult(axes, report.Warnings, model.RiskSourceLocal)
}

// AssessWithSuggestion runs the weighted local assessment with the price
// axis computed from an AI-suggested band instead of the static reference,
// including the wide-spread escalation and its warning.
func (a *Assessor) AssessWithSuggestion(draft model.ListingDraft, sug model.PriceSuggestion) model.RiskAssessmentResult {
	report := a.analyzer.Analyze(draft)
	priceEval := a.prices.FromSuggestion(draft.Price, sug)

	warnings := report.Warnings
	if w, ok := heuristics.SpreadWarning(sug.PriceRange); ok {
		warnings = append(warnings, w)
	}

	axes := a.risks.LocalAxes(draft, report.Signal, priceEval, "deviation from AI-suggested price band")
	return a.risks.BuildResult(axes, warnings, model.RiskSourceLocal)
}

// AssessWithAI runs local heuristics, then refines the result with the AI
// risk assessment. When a price suggestion is obtainable the local base is
// recomputed against the suggested band first, so the price axis reflects
// the market band whether or not the risk call succeeds. On AI failure,
// timeout, or an empty response the local result is returned with a
// soft-failure warning; the error is never propagated.
func (a *Assessor) AssessWithAI(ctx context.Context, draft model.ListingDraft) model.RiskAssessmentResult {
	local := a.Assess(draft)
	if a.suggester == nil {
		return local
	}

	aiCtx, cancel := context.WithTimeout(ctx, a.aiTimeout)
	defer cancel()

	sug, err := a.suggester.SuggestPrice(aiCtx, a.suggestionRequest(draft))
	if err == nil && sug != nil && sug.SuggestedPrice > 0 {
		local = a.AssessWithSuggestion(draft, *sug)
	} else if err != nil {
		a.logger.Warn("AI price suggestion failed, price axis uses static reference band",
			"title", draft.Title, "error", err)
	}

	resp, err := a.suggester.AssessRisk(aiCtx, a.riskRequest(draft))
	if err != nil || resp.Empty() {
		if err != nil {
			a.logger.Warn("AI risk assessment failed, using local result",
				"title", draft.Title, "error", err)
		} else {
			a.logger.Warn("AI risk assessment returned no usable fields, using local result",
				"title", draft.Title)
		}
		local.Warnings = append(local.Warnings, WarnAIUnavailable)
		return local
	}

	axes := a.risks.AxesFromAI(resp)
	warnings := append(append([]string{}, local.Warnings...), a.risks.WarningsFromAI(resp)...)
	result := a.risks.BuildResult(axes, warnings, model.RiskSourceAI)

	a.logger.Debug("AI risk assessment applied",
		"title", draft.Title,
		"axes", len(result.Axes),
		"overall", result.Overall)
	return result
}

// EvaluatePrice checks the draft price against the AI-suggested band when
// the AI service is available, falling back to the static reference band.
// The returned warnings include the wide-spread warning when it applies.
func (a *Assessor) EvaluatePrice(ctx context.Context, draft model.ListingDraft) (priceband.Evaluation, []string) {
	if a.suggester != nil {
		aiCtx, cancel := context.WithTimeout(ctx, a.aiTimeout)
		defer cancel()

		sug, err := a.suggester.SuggestPrice(aiCtx, a.suggestionRequest(draft))
		if err == nil && sug != nil && sug.SuggestedPrice > 0 {
			ev := a.prices.FromSuggestion(draft.Price, *sug)
			var warnings []string
			if w, ok := heuristics.SpreadWarning(sug.PriceRange); ok {
				warnings = append(warnings, w)
			}
			return ev, warnings
		}
		if err != nil {
			a.logger.Warn("AI price suggestion failed, using static reference band",
				"title", draft.Title, "error", err)
		}
	}
	return a.prices.FromHeuristics(draft.Price, draft.SearchText()), nil
}

// PriceInsight produces the buyer-facing fairness summary for a published
// listing. The condition is inferred from the text when not set.
func (a *Assessor) PriceInsight(ctx context.Context, draft model.ListingDraft) (model.PriceInsight, error) {
	if a.suggester == nil {
		return a.staticInsight(draft), nil
	}

	aiCtx, cancel := context.WithTimeout(ctx, a.aiTimeout)
	defer cancel()

	req := a.suggestionRequest(draft)
	if req.Condition == "" {
		req.Condition = string(InferCondition(draft.SearchText()))
	}

	sug, err := a.suggester.SuggestPrice(aiCtx, req)
	if err != nil || sug == nil || sug.SuggestedPrice <= 0 {
		if err != nil {
			a.logger.Warn("AI price suggestion failed, using static insight",
				"title", draft.Title, "error", err)
		}
		return a.staticInsight(draft), nil
	}

	return a.prices.Insight(draft.Price, *sug), nil
}

// SuggestCategory proposes a category for the draft text, suppressing a
// suggestion equal to the currently selected code. The label resolves
// through the classification index.
func (a *Assessor) SuggestCategory(draft model.ListingDraft) (code, label string, ok bool) {
	code, ok = a.patterns.SuggestCategory(draft.SearchText(), draft.CategoryCode)
	if !ok {
		return "", "", false
	}
	return code, a.index.LabelOf(code), true
}

// SuggestCategoryFromHint maps an external image-analysis hint label to a
// category code.
func (a *Assessor) SuggestCategoryFromHint(hint string) (code, label string, ok bool) {
	code, ok = a.patterns.SuggestFromHint(hint)
	if !ok {
		return "", "", false
	}
	return code, a.index.LabelOf(code), true
}

// SuggestTags proposes up to MaxTags tags from the draft text.
func (a *Assessor) SuggestTags(draft model.ListingDraft) []string {
	return a.patterns.SuggestTags(draft.Title, draft.Description)
}

// SuggestDescription asks the AI service for an improved description. AI
// highlights are folded into the tag candidates.
func (a *Assessor) SuggestDescription(ctx context.Context, draft model.ListingDraft) (*model.DescriptionSuggestion, error) {
	if a.suggester == nil {
		return nil, nil
	}

	aiCtx, cancel := context.WithTimeout(ctx, a.aiTimeout)
	defer cancel()

	return a.suggester.SuggestDescription(aiCtx, a.suggestionRequest(draft))
}

// ProfitPreview estimates the seller's proceeds: price minus commission
// and shipping. Shipping is free at or above the threshold.
func ProfitPreview(price int64) (fee, shipping, profit int64) {
	if price <= 0 {
		return 0, 0, 0
	}
	fee = int64(float64(price) * FeeRate)
	if price < FreeShippingThreshold {
		shipping = FlatShippingFee
	}
	profit = price - fee - shipping
	if profit < 0 {
		profit = 0
	}
	return fee, shipping, profit
}

// InferCondition guesses an item condition from free text, for published
// listings that never set one.
func InferCondition(text string) model.Condition {
	s := strings.ToLower(text)
	switch {
	case strings.Contains(s, "new") || strings.Contains(s, "unused") || strings.Contains(s, "sealed"):
		return model.ConditionNew
	case strings.Contains(s, "mint") || strings.Contains(s, "barely used"):
		return model.ConditionGood
	case strings.Contains(s, "scratch") || strings.Contains(s, "worn") || strings.Contains(s, "used"):
		return model.ConditionFair
	}
	return model.ConditionGood
}

func (a *Assessor) suggestionRequest(draft model.ListingDraft) model.SuggestionRequest {
	return model.SuggestionRequest{
		Title:         draft.Title,
		Condition:     string(draft.Condition),
		CategoryLabel: a.index.PathLabel(draft.CategoryCode),
		Description:   draft.Description,
	}
}

func (a *Assessor) riskRequest(draft model.ListingDraft) model.RiskRequest {
	return model.RiskRequest{
		Title:            draft.Title,
		Category:         a.index.PathLabel(draft.CategoryCode),
		Condition:        string(draft.Condition),
		Description:      draft.Description,
		Price:            draft.Price,
		Tags:             draft.Tags,
		ImageDescription: draft.ImageDescription,
	}
}

func (a *Assessor) staticInsight(draft model.ListingDraft) model.PriceInsight {
	ev := a.prices.FromHeuristics(draft.Price, draft.SearchText())
	return model.PriceInsight{
		Verdict:   ev.Verdict,
		Suggested: ev.Target,
		Range:     model.PriceRange{Min: ev.Lower, Max: ev.Upper},
		Reasoning: "estimated from reference prices for similar listings",
	}
}
