package engine

import (
	"context"
	"sync"
	"time"

	"github.com/harukit/mekiki/internal/model"
)

// MockSuggester is a test implementation of the service.Suggester
// interface with scriptable responses, per-call errors, and an optional
// artificial delay for racing evaluations against each other.
type MockSuggester struct {
	PriceResponse       *model.PriceSuggestion
	DescriptionResponse *model.DescriptionSuggestion
	RiskResponse        *model.AIRiskResponse
	Err                 error
	Delay               time.Duration

	mu        sync.Mutex
	riskCalls []model.RiskRequest
	callCount int
}

// NewMockSuggester creates a mock with a plausible default risk response.
func NewMockSuggester() *MockSuggester {
	riskScore := 0.3
	clarity := 40.0
	return &MockSuggester{
		PriceResponse: &model.PriceSuggestion{
			SuggestedPrice: 10000,
			Reasoning:      "recent sales of comparable items",
			PriceRange:     model.PriceRange{Min: 9000, Max: 11000},
		},
		DescriptionResponse: &model.DescriptionSuggestion{
			Description: "Improved listing description.",
			Highlights:  []string{"complete", "smoke-free"},
		},
		RiskResponse: &model.AIRiskResponse{
			RiskScore:    &riskScore,
			Reason:       "listing looks consistent",
			ClarityScore: &clarity,
		},
	}
}

// SuggestPrice returns the scripted price response.
func (m *MockSuggester) SuggestPrice(ctx context.Context, _ model.SuggestionRequest) (*model.PriceSuggestion, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.PriceResponse, nil
}

// SuggestDescription returns the scripted description response.
func (m *MockSuggester) SuggestDescription(ctx context.Context, _ model.SuggestionRequest) (*model.DescriptionSuggestion, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.DescriptionResponse, nil
}

// AssessRisk returns the scripted risk response and records the request.
func (m *MockSuggester) AssessRisk(ctx context.Context, req model.RiskRequest) (*model.AIRiskResponse, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.riskCalls = append(m.riskCalls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.RiskResponse, nil
}

// CallCount returns the total number of calls across all operations.
func (m *MockSuggester) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// RiskCalls returns the recorded risk assessment requests.
func (m *MockSuggester) RiskCalls() []model.RiskRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.RiskRequest, len(m.riskCalls))
	copy(out, m.riskCalls)
	return out
}

func (m *MockSuggester) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.Delay):
		return nil
	}
}
