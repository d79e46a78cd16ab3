package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/zaeon-io/zaeon-core/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from the environment, preferring
// an explicit ZAEON_LLM_PROVIDER and otherwise probing the standard API
// key variables in priority order.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	if os.Getenv("ZAEON_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return NewProvider(ctx, cfg, eventRepo)
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no LLM API key found: set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY")
	}
	return NewProvider(ctx, cfg, eventRepo)
}
