package llm

import "testing"

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := ConfigFromEnv()
	if cfg.Provider == "" {
		t.Error("provider should have a default")
	}
	if cfg.Retry.MaxAttempts < 1 {
		t.Errorf("got MaxAttempts %d, want >= 1", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Override(t *testing.T) {
	t.Setenv("KIDDAN_LLM_PROVIDER", "openai")
	t.Setenv("KIDDAN_OPENAI_API_KEY", "test-key")
	t.Setenv("KIDDAN_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("got provider %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "test-key" {
		t.Errorf("got key %q, want test-key", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("got model %q, want gpt-4o", cfg.OpenAI.Model)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	cfg.Gemini.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing gemini key")
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDiscoverConfig_GeminiPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("got provider %q, want gemini (highest priority)", cfg.Provider)
	}
}
