package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/harukit/mekiki/internal/ai"
	"github.com/harukit/mekiki/internal/common"
	"github.com/harukit/mekiki/internal/config"
	"github.com/harukit/mekiki/internal/engine"
	"github.com/harukit/mekiki/internal/heuristics"
	"github.com/harukit/mekiki/internal/pattern"
	"github.com/harukit/mekiki/internal/priceband"
	"github.com/harukit/mekiki/internal/risk"
	"github.com/harukit/mekiki/internal/service"
	"github.com/harukit/mekiki/internal/storage"
	"github.com/harukit/mekiki/internal/taxonomy"
	"github.com/spf13/viper"
)

// createSuggester creates an AI suggestion client based on configuration.
// Shared by every command that takes the --ai flag.
func createSuggester() (service.Suggester, error) {
	provider := viper.GetString("ai.provider")
	if provider == "" {
		provider = "openai" // default provider
	}

	cfg := ai.Config{
		Provider:    provider,
		Model:       viper.GetString("ai.model"),
		BaseURL:     viper.GetString("ai.base_url"),
		Temperature: viper.GetFloat64("ai.temperature"),
		MaxTokens:   viper.GetInt("ai.max_tokens"),
		MaxRetries:  viper.GetInt("ai.max_retries"),
		RetryDelay:  viper.GetDuration("ai.retry_delay"),
		CacheTTL:    viper.GetDuration("ai.cache_ttl"),
		RateLimit:   viper.GetInt("ai.rate_limit"),
	}

	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 60 // requests per minute
	}

	switch provider {
	case "openai":
		apiKey := viper.GetString("ai.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("%w: OpenAI API key not found in config or OPENAI_API_KEY environment variable", common.ErrMissingConfig)
		}
		cfg.APIKey = apiKey

	case "gateway":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("%w: gateway provider requires ai.base_url", common.ErrMissingConfig)
		}
		cfg.APIKey = viper.GetString("ai.gateway_api_key")

	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", provider)
	}

	suggester, err := ai.NewSuggester(cfg, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to create AI suggestion client: %w", err)
	}

	return suggester, nil
}

// loadIndex builds the classification index. The remote category source is
// fetched whenever one is configured; Load never fails, the built-in tree
// is the fallback.
func loadIndex(ctx context.Context) *taxonomy.Index {
	if url := viper.GetString("category_source_url"); url != "" {
		return taxonomy.NewLoader(url).Load(ctx)
	}
	return taxonomy.NewIndex(taxonomy.DefaultTree())
}

// buildAssessor wires the assessment pipeline with term tables from
// configuration.
func buildAssessor(ctx context.Context, useAI bool) (*engine.Assessor, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var suggester service.Suggester
	if useAI {
		suggester, err = createSuggester()
		if err != nil {
			return nil, err
		}
	}

	index := loadIndex(ctx)
	assessor := engine.New(index, suggester, slog.Default())

	terms := cfg.Terms
	if len(terms.DenyList) > 0 || len(terms.SectionKeywords) > 0 ||
		len(terms.HedgingTerms) > 0 || len(terms.CategorySignals) > 0 ||
		len(terms.InvestmentSignals) > 0 {
		assessor.WithComponents(
			heuristics.NewAnalyzer(
				heuristics.WithDenyList(terms.DenyList),
				heuristics.WithSectionKeywords(terms.SectionKeywords),
			),
			pattern.NewSuggester(pattern.NewMatcher(pattern.DefaultRules())),
			priceband.NewEvaluator().WithInvestmentSignals(terms.InvestmentSignals),
			risk.NewAggregator().
				WithHedgingTerms(terms.HedgingTerms).
				WithCategorySignals(terms.CategorySignals),
		)
	}

	return assessor, nil
}

// initStorage opens the assessment history database and applies pending
// migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		closeErr := store.Close()
		if closeErr != nil {
			slog.Warn("Failed to close storage after migration error", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return store, nil
}
