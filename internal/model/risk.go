package model

import "time"

// RiskSource identifies which data source populated a set of risk axes.
// Local heuristics and AI-sourced axes use different aggregation strategies,
// so results must remember where their axes came from.
type RiskSource string

const (
	// RiskSourceLocal marks axes computed from local heuristics.
	RiskSourceLocal RiskSource = "local"
	// RiskSourceAI marks axes built from an AI risk response.
	RiskSourceAI RiskSource = "ai"
)

// RiskAxis is one named dimension of listing risk. Higher score means
// higher risk; scores are always within [0,100].
type RiskAxis struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Hint  string  `json:"hint,omitempty"`
}

// RiskAssessmentResult is the final output of an evaluation. Overall is
// always derived fresh from the current axis set, never carried over.
type RiskAssessmentResult struct {
	Overall  float64    `json:"overall"`
	Axes     []RiskAxis `json:"axes"`
	Warnings []string   `json:"warnings,omitempty"`
	Source   RiskSource `json:"source"`
}

// AssessmentRecord is a persisted evaluation, kept as engine telemetry in
// the assessment history store.
type AssessmentRecord struct {
	CreatedAt   time.Time            `json:"created_at"`
	ListingHash string               `json:"listing_hash"`
	Title       string               `json:"title"`
	Result      RiskAssessmentResult `json:"result"`
	Verdict     string               `json:"verdict,omitempty"`
	ID          int64                `json:"id"`
}
