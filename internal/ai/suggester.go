package ai

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/harukit/mekiki/internal/common"
	"github.com/harukit/mekiki/internal/model"
	"github.com/harukit/mekiki/internal/service"
)

// Ensure Suggester implements the service boundary.
var _ service.Suggester = (*Suggester)(nil)

// Config holds configuration for the AI suggestion client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}

// Suggester implements service.Suggester with caching, rate limiting and
// retries around a provider client.
type Suggester struct {
	client      Client
	cache       *suggestionCache
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   service.RetryOptions
}

// NewSuggester creates a new AI suggestion client for the configured
// provider.
func NewSuggester(cfg Config, logger *slog.Logger) (*Suggester, error) {
	var client Client
	var err error

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		client, err = newOpenAIClient(cfg)
	case "gateway":
		client, err = newGatewayClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Suggester{
		client:      client,
		cache:       newSuggestionCache(cfg.CacheTTL),
		logger:      logger,
		retryOpts:   retryOpts,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}, nil
}

// NewSuggesterWithClient wraps an existing provider client; used by tests.
func NewSuggesterWithClient(client Client, logger *slog.Logger) *Suggester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Suggester{
		client:      client,
		cache:       newSuggestionCache(0),
		logger:      logger,
		retryOpts:   service.RetryOptions{MaxAttempts: 1},
		rateLimiter: newRateLimiter(0),
	}
}

// SuggestPrice returns the AI's price proposal for the listing.
func (s *Suggester) SuggestPrice(ctx context.Context, req model.SuggestionRequest) (*model.PriceSuggestion, error) {
	key := cacheKey("price", req.Title, req.Condition, req.CategoryLabel, req.Description)
	if v, found := s.cache.get(key); found {
		if sug, ok := v.(model.PriceSuggestion); ok {
			s.logger.Debug("price suggestion cache hit", "title", req.Title)
			return &sug, nil
		}
	}

	var sug model.PriceSuggestion
	err := s.withGuards(ctx, func() error {
		var callErr error
		sug, callErr = s.client.SuggestPrice(ctx, req)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	s.cache.set(key, sug)
	return &sug, nil
}

// SuggestDescription returns the AI's description proposal for the listing.
func (s *Suggester) SuggestDescription(ctx context.Context, req model.SuggestionRequest) (*model.DescriptionSuggestion, error) {
	key := cacheKey("description", req.Title, req.Condition, req.CategoryLabel, req.Description)
	if v, found := s.cache.get(key); found {
		if sug, ok := v.(model.DescriptionSuggestion); ok {
			s.logger.Debug("description suggestion cache hit", "title", req.Title)
			return &sug, nil
		}
	}

	var sug model.DescriptionSuggestion
	err := s.withGuards(ctx, func() error {
		var callErr error
		sug, callErr = s.client.SuggestDescription(ctx, req)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	s.cache.set(key, sug)
	return &sug, nil
}

// AssessRisk returns the AI's structured risk opinion for the listing.
func (s *Suggester) AssessRisk(ctx context.Context, req model.RiskRequest) (*model.AIRiskResponse, error) {
	key := cacheKey("risk", req.Title, req.Category, req.Condition, req.Description,
		fmt.Sprintf("%d", req.Price), strings.Join(req.Tags, ","), req.ImageDescription)
	if v, found := s.cache.get(key); found {
		if resp, ok := v.(model.AIRiskResponse); ok {
			s.logger.Debug("risk assessment cache hit", "title", req.Title)
			return &resp, nil
		}
	}

	var resp model.AIRiskResponse
	err := s.withGuards(ctx, func() error {
		var callErr error
		resp, callErr = s.client.AssessRisk(ctx, req)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	s.cache.set(key, resp)
	return &resp, nil
}

// withGuards runs an operation behind the rate limiter and retry policy.
func (s *Suggester) withGuards(ctx context.Context, op func() error) error {
	if err := s.rateLimiter.wait(ctx); err != nil {
		return err
	}
	return common.WithRetry(ctx, op, s.retryOpts)
}

// Close releases background goroutines held by the cache and rate limiter.
func (s *Suggester) Close() {
	s.cache.Close()
	s.rateLimiter.Close()
}

func cacheKey(op string, parts ...string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s", op, strings.Join(parts, "|"))
	return fmt.Sprintf("%x", h.Sum(nil))
}
