package llm

import (
	"os"
	"strconv"
)

// Config holds LLM provider configuration.
//
// The credential is deliberately not validated here: the provider checks
// it lazily on first use, so a missing key fails the first operation
// rather than process startup.
type Config struct {
	Anthropic AnthropicConfig

	// MaxTokens is the default response token ceiling.
	MaxTokens int

	// Temperature is the default sampling temperature.
	Temperature float64
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-sonnet"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet",
		},
		MaxTokens:   1500,
		Temperature: 0.7,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. The API key is taken from
// INKMENTOR_ANTHROPIC_API_KEY, or the conventional ANTHROPIC_API_KEY when
// the former is unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("INKMENTOR_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	} else if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("INKMENTOR_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if v := os.Getenv("INKMENTOR_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("INKMENTOR_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.Temperature = f
		}
	}

	return cfg
}
