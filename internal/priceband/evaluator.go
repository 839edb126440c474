// Package priceband computes price fairness verdicts and the price-risk
// contribution from either an AI-suggested price band or a static
// reference price.
package priceband

import (
	"math"

	"github.com/harukit/mekiki/internal/heuristics"
	"github.com/harukit/mekiki/internal/model"
)

// Risk constants for the price axis.
const (
	// ZeroPriceRisk is the fixed contribution for a missing or zero price.
	// It is an automatic warning, not a computed deviation.
	ZeroPriceRisk = 60

	// WideSpreadBump escalates the risk when the suggested range is too
	// dispersed to trust.
	WideSpreadBump = 15

	// OutOfBandPenaltySlope scales the fractional overshoot past the
	// nearer band bound into a risk score.
	OutOfBandPenaltySlope = 60

	// HeuristicOutOfBandRisk is the flat contribution when the price sits
	// outside the static reference band.
	HeuristicOutOfBandRisk = 25

	// Static reference prices for the no-AI path.
	investmentReferencePrice = 40000
	genericReferencePrice    = 8000
)

// In-band deviation steps: |price-target|/target below 0.1 reads as close,
// below 0.25 as loose, anything further as stretched.
const (
	closeDeviationRisk   = 10
	looseDeviationRisk   = 25
	stretchDeviationRisk = 45
)

// Evaluation is the outcome of a single price check.
type Evaluation struct {
	Verdict   model.Verdict
	Risk      float64 // [0,100] contribution to the price validity axis
	Target    float64 // reference or suggested price the band centers on
	Lower     float64
	Upper     float64
	Deviation float64 // |price-target|/target, 0 when price or target is 0
}

// Evaluator computes price bands. Stateless once constructed.
type Evaluator struct {
	investmentSignals []string
}

// NewEvaluator creates an evaluator with the default investment keyword
// table.
func NewEvaluator() *Evaluator {
	return &Evaluator{investmentSignals: heuristics.DefaultInvestmentSignals()}
}

// WithInvestmentSignals overrides the keyword table that selects the
// higher static reference price.
func (e *Evaluator) WithInvestmentSignals(terms []string) *Evaluator {
	if len(terms) > 0 {
		e.investmentSignals = terms
	}
	return e
}

// FromSuggestion evaluates a listing price against an AI-provided
// suggestion. The tolerance band widens with the suggested price:
// tol = 0.08 + 0.04*clamp(suggested/100000, 0, 1).
func (e *Evaluator) FromSuggestion(price int64, sug model.PriceSuggestion) Evaluation {
	if price <= 0 {
		return Evaluation{Verdict: model.VerdictLow, Risk: ZeroPriceRisk}
	}

	target := sug.SuggestedPrice
	if target <= 0 {
		target = (sug.PriceRange.Min + sug.PriceRange.Max) / 2
	}
	if target <= 0 {
		target = float64(price)
	}

	tol := 0.08 + 0.04*clamp01(sug.SuggestedPrice/100000)
	upper := math.Max(sug.PriceRange.Max, sug.SuggestedPrice*(1+tol))
	lower := math.Min(sug.PriceRange.Min, sug.SuggestedPrice*(1-tol))
	if lower <= 0 {
		lower = target * 0.8
	}
	if upper <= 0 {
		upper = target * 1.2
	}

	p := float64(price)
	ev := Evaluation{Target: target, Lower: lower, Upper: upper}

	switch {
	case p > upper:
		ev.Verdict = model.VerdictHigh
		ev.Risk = math.Min(100, OutOfBandPenaltySlope*((p-upper)/upper))
	case p < lower:
		ev.Verdict = model.VerdictLow
		ev.Risk = math.Min(100, OutOfBandPenaltySlope*((lower-p)/lower))
	default:
		ev.Verdict = model.VerdictFair
		ev.Deviation = math.Abs(p-target) / target
		switch {
		case ev.Deviation < 0.1:
			ev.Risk = closeDeviationRisk
		case ev.Deviation < 0.25:
			ev.Risk = looseDeviationRisk
		default:
			ev.Risk = stretchDeviationRisk
		}
	}

	if sug.PriceRange.Spread() > heuristics.WideSpreadThreshold {
		ev.Risk = math.Min(100, ev.Risk+WideSpreadBump)
	}

	return ev
}

// FromHeuristics evaluates a listing price against a static reference
// chosen by a coarse text signal: grading/investment keywords select the
// higher reference. The tolerance band is fixed by price magnitude.
func (e *Evaluator) FromHeuristics(price int64, text string) Evaluation {
	if price <= 0 {
		return Evaluation{Verdict: model.VerdictLow, Risk: ZeroPriceRisk}
	}

	var tol float64
	switch {
	case price < 10000:
		tol = 0.15
	case price < 50000:
		tol = 0.25
	default:
		tol = 0.35
	}

	ref := float64(genericReferencePrice)
	if heuristics.MatchesDenyList(text, e.investmentSignals) {
		ref = investmentReferencePrice
	}

	lower := ref * (1 - tol)
	upper := ref * (1 + tol)

	p := float64(price)
	ev := Evaluation{Target: ref, Lower: lower, Upper: upper}
	ev.Deviation = math.Abs(p-ref) / ref

	switch {
	case p > upper:
		ev.Verdict = model.VerdictHigh
		ev.Risk = HeuristicOutOfBandRisk
	case p < lower:
		ev.Verdict = model.VerdictLow
		ev.Risk = HeuristicOutOfBandRisk
	default:
		ev.Verdict = model.VerdictFair
	}

	return ev
}

// Insight packages an AI-band evaluation as the buyer-facing price
// insight.
func (e *Evaluator) Insight(price int64, sug model.PriceSuggestion) model.PriceInsight {
	ev := e.FromSuggestion(price, sug)
	return model.PriceInsight{
		Verdict:   ev.Verdict,
		Suggested: sug.SuggestedPrice,
		Range:     sug.PriceRange,
		Reasoning: sug.Reasoning,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
