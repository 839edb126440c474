package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/harukit/mekiki/internal/model"
)

// gatewayClient implements the Client interface against a marketplace
// backend that proxies the AI suggestion service behind plain JSON
// endpoints: /ai/suggest-price, /ai/suggest-description,
// /ai/risk-assessment.
type gatewayClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// newGatewayClient creates a provider for a backend AI gateway.
func newGatewayClient(cfg Config) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway base URL is required")
	}

	return &gatewayClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

func (c *gatewayClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// SuggestPrice requests a price proposal from the gateway.
func (c *gatewayClient) SuggestPrice(ctx context.Context, req model.SuggestionRequest) (model.PriceSuggestion, error) {
	body, err := c.post(ctx, "/ai/suggest-price", req)
	if err != nil {
		return model.PriceSuggestion{}, err
	}
	return parsePriceSuggestion(string(body))
}

// SuggestDescription requests a description proposal from the gateway.
func (c *gatewayClient) SuggestDescription(ctx context.Context, req model.SuggestionRequest) (model.DescriptionSuggestion, error) {
	body, err := c.post(ctx, "/ai/suggest-description", req)
	if err != nil {
		return model.DescriptionSuggestion{}, err
	}
	return parseDescriptionSuggestion(string(body))
}

// AssessRisk requests a structured risk opinion from the gateway.
func (c *gatewayClient) AssessRisk(ctx context.Context, req model.RiskRequest) (model.AIRiskResponse, error) {
	body, err := c.post(ctx, "/ai/risk-assessment", req)
	if err != nil {
		return model.AIRiskResponse{}, err
	}
	return parseRiskResponse(string(body))
}
