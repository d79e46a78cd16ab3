package llm

import "testing"

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ZAEON_LLM_PROVIDER",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"ZAEON_GEMINI_API_KEY", "ZAEON_OPENAI_API_KEY", "ZAEON_ANTHROPIC_API_KEY", "ZAEON_OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	clearKeyEnv(t)
	_, ok := DiscoverConfig()
	if ok {
		t.Fatal("expected no config when no API keys are set")
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearKeyEnv(t)

	// Lowest priority first.
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "openrouter" {
		t.Fatalf("expected openrouter, got %q (ok=%v)", cfg.Provider, ok)
	}

	t.Setenv("ANTHROPIC_API_KEY", "ant-key")
	cfg, _ = DiscoverConfig()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic to win over openrouter, got %q", cfg.Provider)
	}

	t.Setenv("OPENAI_API_KEY", "oai-key")
	cfg, _ = DiscoverConfig()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai to win over anthropic, got %q", cfg.Provider)
	}

	t.Setenv("GEMINI_API_KEY", "gem-key")
	cfg, _ = DiscoverConfig()
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini to win over all, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "gem-key" {
		t.Errorf("Gemini key = %q", cfg.Gemini.APIKey)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ZAEON_LLM_PROVIDER", "anthropic")
	t.Setenv("ZAEON_ANTHROPIC_API_KEY", "ant-key")
	t.Setenv("ZAEON_ANTHROPIC_MODEL", "claude-opus-4-5")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-opus-4-5" {
		t.Errorf("Model = %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	cfg.Gemini.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing key")
	}
}

func TestDefaultConfigRetry(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Retry.MaxAttempts < 1 {
		t.Errorf("MaxAttempts = %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout <= 0 {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}
