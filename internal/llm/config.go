package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all model provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	Provider string

	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single model request
	// including retries. Default: 60s, sized for dense PDF attachments.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-pro"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// default backend: it handles large inline PDF payloads best.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-pro",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("ZAEON_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("ZAEON_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("ZAEON_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("ZAEON_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("ZAEON_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("ZAEON_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("ZAEON_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("ZAEON_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("ZAEON_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("ZAEON_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	return cfg
}

// DiscoverConfig probes the standard API key env vars in strict priority
// order (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config
// for the first provider whose key is found. This is the ordered
// credential-resolution chain: each step is independently testable and
// the final miss is a single answer, not a silent fallback.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("ZAEON_GEMINI_API_KEY is required for the gemini provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ZAEON_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("ZAEON_OPENAI_API_KEY is required for the openai provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("ZAEON_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown model provider: %q", c.Provider)
	}
	return nil
}
