package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configEnvVars = []string{
	"COPILOT_CONFIG_FILE",
	"COPILOT_ADDR",
	"LLM_PROVIDER",
	"LLM_MODEL",
	"LLM_BASE_URL",
	"OPENAI_API_KEY",
	"LLM_TIMEOUT",
	"DATABASE_PATH",
	"SAVE_HISTORY",
	"CORS_ORIGINS",
	"DEBUG",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":8000" {
		t.Fatalf("Addr = %q", cfg.Addr)
	}
	if cfg.LLMProvider != "ollama" || cfg.LLMModel != "llama3" {
		t.Fatalf("provider = %q, model = %q", cfg.LLMProvider, cfg.LLMModel)
	}
	if cfg.LLMBaseURL != "http://localhost:11434" {
		t.Fatalf("base url = %q", cfg.LLMBaseURL)
	}
	if cfg.LLMTimeout != 180*time.Second {
		t.Fatalf("timeout = %v", cfg.LLMTimeout)
	}
	if cfg.DatabasePath != "copilot.db" {
		t.Fatalf("database path = %q", cfg.DatabasePath)
	}
	if !cfg.SaveHistory {
		t.Fatal("history should be enabled by default")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
	if cfg.Debug {
		t.Fatal("debug should be off by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("COPILOT_ADDR", ":9090")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DATABASE_PATH", "/tmp/copilot.db")
	t.Setenv("SAVE_HISTORY", "false")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("Addr = %q", cfg.Addr)
	}
	if cfg.LLMProvider != "openai" || cfg.LLMAPIKey != "sk-test" {
		t.Fatalf("provider = %q, key = %q", cfg.LLMProvider, cfg.LLMAPIKey)
	}
	if cfg.LLMBaseURL != "" {
		t.Fatalf("base url = %q, ollama default must not leak to openai", cfg.LLMBaseURL)
	}
	if cfg.SaveHistory {
		t.Fatal("SAVE_HISTORY=false was not honored")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
	if !cfg.Debug {
		t.Fatal("DEBUG=true was not honored")
	}
}

func TestLoadTimeoutFormats(t *testing.T) {
	cases := []struct {
		value string
		want  time.Duration
	}{
		{"60", 60 * time.Second},
		{"2m", 2 * time.Minute},
		{"1500ms", 1500 * time.Millisecond},
	}
	for _, tc := range cases {
		clearConfigEnv(t)
		t.Setenv("LLM_TIMEOUT", tc.value)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("LLM_TIMEOUT=%q: %v", tc.value, err)
		}
		if cfg.LLMTimeout != tc.want {
			t.Fatalf("LLM_TIMEOUT=%q: timeout = %v, want %v", tc.value, cfg.LLMTimeout, tc.want)
		}
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LLM_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable LLM_TIMEOUT")
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"addr": ":7070",
		"llm_model": "mistral",
		"llm_timeout": "90",
		"cors_origins": ["https://file.example.com"]
	}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("COPILOT_CONFIG_FILE", path)
	// Environment still wins over the file.
	t.Setenv("LLM_MODEL", "llama3.1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("Addr = %q", cfg.Addr)
	}
	if cfg.LLMModel != "llama3.1" {
		t.Fatalf("model = %q, env must override file", cfg.LLMModel)
	}
	if cfg.LLMTimeout != 90*time.Second {
		t.Fatalf("timeout = %v", cfg.LLMTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://file.example.com" {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigFileBooleanOverrides(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{"save_history": false, "debug": true}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("COPILOT_CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SaveHistory {
		t.Fatal("save_history=false in config file ignored")
	}
	if !cfg.Debug {
		t.Fatal("debug=true in config file ignored")
	}

	// An absent key still falls back to the default.
	if err := os.WriteFile(path, []byte(`{"addr": ":7070"}`), 0o600); err != nil {
		t.Fatalf("rewrite config file: %v", err)
	}
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.SaveHistory {
		t.Fatal("history default lost when the file omits save_history")
	}
}

func TestMergeKeepsBaseWhenOverrideEmpty(t *testing.T) {
	base := Config{Addr: ":8000", LLMProvider: "ollama", SaveHistory: true, saveHistorySet: true}
	merged := base.Merge(Config{LLMProvider: "openai"})
	if merged.Addr != ":8000" {
		t.Fatalf("Addr = %q", merged.Addr)
	}
	if merged.LLMProvider != "openai" {
		t.Fatalf("provider = %q", merged.LLMProvider)
	}
	if !merged.SaveHistory {
		t.Fatal("SaveHistory lost in merge")
	}
}
