package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harukit/mekiki/internal/model"
)

const openAISystemPrompt = "You are a marketplace listing analyst. You MUST respond with ONLY a valid JSON object. Do not include any explanatory text, markdown formatting, or commentary before or after the JSON. Start your response directly with { and end with }."

// openAIClient implements the Client interface on the OpenAI chat API.
type openAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// newOpenAIClient creates a new OpenAI-backed provider.
func newOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	m := cfg.Model
	if m == "" {
		m = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 400
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &openAIClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       m,
		temperature: float32(temperature),
		maxTokens:   maxTokens,
	}, nil
}

func (c *openAIClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// SuggestPrice asks the model for a market price proposal.
func (c *openAIClient) SuggestPrice(ctx context.Context, req model.SuggestionRequest) (model.PriceSuggestion, error) {
	prompt := fmt.Sprintf(`Suggest a fair secondhand market price for this listing.

Title: %s
Condition: %s
Category: %s
Description: %s

Respond with JSON: {"suggestedPrice": <number>, "reasoning": "<one sentence>", "priceRange": {"min": <number>, "max": <number>}}`,
		req.Title, req.Condition, req.CategoryLabel, req.Description)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return model.PriceSuggestion{}, err
	}
	return parsePriceSuggestion(content)
}

// SuggestDescription asks the model for an improved listing description.
func (c *openAIClient) SuggestDescription(ctx context.Context, req model.SuggestionRequest) (model.DescriptionSuggestion, error) {
	prompt := fmt.Sprintf(`Write an improved marketplace listing description.

Title: %s
Condition: %s
Category: %s
Current description: %s

Respond with JSON: {"description": "<improved description>", "highlights": ["<selling point>", ...]}`,
		req.Title, req.Condition, req.CategoryLabel, req.Description)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return model.DescriptionSuggestion{}, err
	}
	return parseDescriptionSuggestion(content)
}

// AssessRisk asks the model for a structured risk opinion on the listing.
func (c *openAIClient) AssessRisk(ctx context.Context, req model.RiskRequest) (model.AIRiskResponse, error) {
	prompt := fmt.Sprintf(`Assess the buyer risk of this marketplace listing.

Title: %s
Category: %s
Condition: %s
Description: %s
Price: %d
Tags: %s
Image analysis: %s

Respond with JSON. All fields optional; omit what you cannot judge:
{"riskScore": <0..1>, "reason": "<summary>", "clarityScore": <0..100>, "clarityReason": "<why>", "authenticityScore": <0..100>, "authenticityReason": "<why>", "categoryFit": "match"|"mismatch", "categoryReason": "<why>", "imageMismatch": <bool>, "flags": ["<finding>", ...]}`,
		req.Title, req.Category, req.Condition, req.Description, req.Price,
		strings.Join(req.Tags, ", "), req.ImageDescription)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return model.AIRiskResponse{}, err
	}
	return parseRiskResponse(content)
}
