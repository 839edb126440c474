package ai

import (
	"context"

	"github.com/harukit/mekiki/internal/model"
)

// Client defines the interface for AI suggestion providers.
type Client interface {
	SuggestPrice(ctx context.Context, req model.SuggestionRequest) (model.PriceSuggestion, error)
	SuggestDescription(ctx context.Context, req model.SuggestionRequest) (model.DescriptionSuggestion, error)
	AssessRisk(ctx context.Context, req model.RiskRequest) (model.AIRiskResponse, error)
}
