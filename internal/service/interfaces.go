// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/harukit/mekiki/internal/model"
)

// AssessmentFilter defines filtering options for assessment history queries.
type AssessmentFilter struct {
	ListingHash string
	Limit       int
	Offset      int
}

// Storage defines the contract for the assessment history layer.
type Storage interface {
	SaveAssessment(ctx context.Context, record *model.AssessmentRecord) error
	GetAssessments(ctx context.Context, filter AssessmentFilter) ([]model.AssessmentRecord, error)
	GetLatestAssessment(ctx context.Context, listingHash string) (*model.AssessmentRecord, error)
	Migrate(ctx context.Context) error
	Close() error
}

// Suggester defines the contract for the AI suggestion service boundary.
// Implementations must never panic on malformed responses; data-shape
// failures are reported as errors that callers treat as absence.
type Suggester interface {
	SuggestPrice(ctx context.Context, req model.SuggestionRequest) (*model.PriceSuggestion, error)
	SuggestDescription(ctx context.Context, req model.SuggestionRequest) (*model.DescriptionSuggestion, error)
	AssessRisk(ctx context.Context, req model.RiskRequest) (*model.AIRiskResponse, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
