// Package config provides configuration loading and validation for the match
// engine. Weights and quota passes are static configuration, not learned.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/internodyssey/intern-match/internal/scoring"
	"github.com/internodyssey/intern-match/internal/selection"
)

// weightSumEpsilon is the tolerance applied when checking that the base
// utility weights sum to 1.0.
const weightSumEpsilon = 1e-9

// Config represents the engine configuration that can be loaded from a JSON
// file. Missing values use defaults; the API key always comes from the
// environment, never from the file.
type Config struct {
	// Server
	Port int `json:"port,omitempty"`

	// Models
	EmbeddingModel string `json:"embedding_model,omitempty"`
	ParseModel     string `json:"parse_model,omitempty"`

	// Scoring
	Weights     *scoring.Weights     `json:"weights,omitempty"`
	Adjustments *scoring.Adjustments `json:"adjustments,omitempty"`

	// Selection: category passes in order, after the rural pass.
	CategoryQuotas []selection.CategoryQuota `json:"category_quotas,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	weights := scoring.DefaultWeights()
	adjustments := scoring.DefaultAdjustments()
	return &Config{
		Port:           8080,
		EmbeddingModel: "",
		ParseModel:     "",
		Weights:        &weights,
		Adjustments:    &adjustments,
		CategoryQuotas: selection.DefaultCategoryQuotas(),
	}
}

// Load loads configuration from a JSON file, filling unset fields from the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	if c.Weights != nil {
		sum := c.Weights.Skill + c.Weights.Semantic + c.Weights.Location + c.Weights.Experience
		if math.Abs(sum-1.0) > weightSumEpsilon {
			return fmt.Errorf("config error: weights must sum to 1.0, got %v", sum)
		}
		for name, w := range map[string]float64{
			"skill":      c.Weights.Skill,
			"semantic":   c.Weights.Semantic,
			"location":   c.Weights.Location,
			"experience": c.Weights.Experience,
		} {
			if w < 0 {
				return fmt.Errorf("config error: weight %q must be non-negative", name)
			}
		}
	}

	if c.Adjustments != nil {
		if c.Adjustments.RuralBonus < 0 {
			return fmt.Errorf("config error: 'rural_bonus' must be non-negative")
		}
		if c.Adjustments.PastPenalty < 0 {
			return fmt.Errorf("config error: 'past_penalty' must be non-negative (it is subtracted)")
		}
		if c.Adjustments.TargetedBonus < 0 {
			return fmt.Errorf("config error: 'targeted_bonus' must be non-negative")
		}
	}

	for i, cq := range c.CategoryQuotas {
		if cq.Category == "" || cq.QuotaKey == "" {
			return fmt.Errorf("config error: category_quotas[%d] must set both category and quota_key", i)
		}
	}

	return nil
}

// Scorer builds a scorer from the configured weights and adjustments.
func (c *Config) Scorer() *scoring.Scorer {
	weights := scoring.DefaultWeights()
	if c.Weights != nil {
		weights = *c.Weights
	}
	adjustments := scoring.DefaultAdjustments()
	if c.Adjustments != nil {
		adjustments = *c.Adjustments
	}
	return scoring.NewScorer(weights, adjustments)
}

// Selector builds a selector from the configured category passes.
func (c *Config) Selector() *selection.Selector {
	return selection.NewSelector(c.CategoryQuotas)
}
