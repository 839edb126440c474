// Package config holds the typed application configuration decoded from
// viper. Term tables are product data, swappable per deployment, so they
// live here rather than in code.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Terms are the keyword tables driving the text heuristics. Empty slices
// fall back to the built-in defaults.
type Terms struct {
	DenyList          []string `mapstructure:"deny_list"`
	SectionKeywords   []string `mapstructure:"section_keywords"`
	HedgingTerms      []string `mapstructure:"hedging_terms"`
	CategorySignals   []string `mapstructure:"category_signals"`
	InvestmentSignals []string `mapstructure:"investment_signals"`
}

// Config is the full application configuration.
type Config struct {
	DatabasePath      string `mapstructure:"database_path"`
	CategorySourceURL string `mapstructure:"category_source_url"`
	Terms             Terms  `mapstructure:"terms"`
}

// Load decodes the application configuration from viper's current state.
func Load() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.DatabasePath == "" {
		path, err := DefaultDatabasePath()
		if err != nil {
			return Config{}, err
		}
		cfg.DatabasePath = path
	}

	return cfg, nil
}

// DefaultDatabasePath returns the standard location for the assessment
// history database.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "mekiki", "mekiki.db"), nil
}
