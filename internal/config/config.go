package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	AppName    = "AI Copilot for Small Business"
	AppVersion = "1.0.0"
)

// Config holds the process-wide settings. Values are read once at startup and
// treated as immutable afterwards.
type Config struct {
	Addr string

	LLMProvider string
	LLMModel    string
	LLMBaseURL  string
	LLMAPIKey   string

	LLMTimeout       time.Duration
	LLMTimeoutString string

	DatabasePath string
	SaveHistory  bool

	CORSOrigins []string

	Debug bool

	saveHistorySet bool
	debugSet       bool
}

// Merge overlays non-empty fields from the override onto the base config.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.Addr) != "" {
		result.Addr = strings.TrimSpace(override.Addr)
	}
	if strings.TrimSpace(override.LLMProvider) != "" {
		result.LLMProvider = strings.TrimSpace(override.LLMProvider)
	}
	if strings.TrimSpace(override.LLMModel) != "" {
		result.LLMModel = strings.TrimSpace(override.LLMModel)
	}
	if strings.TrimSpace(override.LLMBaseURL) != "" {
		result.LLMBaseURL = strings.TrimSpace(override.LLMBaseURL)
	}
	if strings.TrimSpace(override.LLMAPIKey) != "" {
		result.LLMAPIKey = strings.TrimSpace(override.LLMAPIKey)
	}
	if override.LLMTimeout > 0 {
		result.LLMTimeout = override.LLMTimeout
	}
	if strings.TrimSpace(override.LLMTimeoutString) != "" {
		result.LLMTimeoutString = strings.TrimSpace(override.LLMTimeoutString)
	}
	if strings.TrimSpace(override.DatabasePath) != "" {
		result.DatabasePath = strings.TrimSpace(override.DatabasePath)
	}
	if override.saveHistorySet {
		result.SaveHistory = override.SaveHistory
		result.saveHistorySet = true
	}
	if len(override.CORSOrigins) > 0 {
		result.CORSOrigins = append([]string(nil), override.CORSOrigins...)
	}
	if override.debugSet {
		result.Debug = override.Debug
		result.debugSet = true
	}
	return result
}

// Load assembles the configuration from an optional JSON config file
// (COPILOT_CONFIG_FILE) overlaid with environment variables, then applies
// defaults.
func Load() (Config, error) {
	cfg := Config{}
	if path := strings.TrimSpace(os.Getenv("COPILOT_CONFIG_FILE")); path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	envCfg, err := loadConfigEnv()
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.Merge(envCfg)
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = ":8000"
	}
	if strings.TrimSpace(c.LLMProvider) == "" {
		c.LLMProvider = "ollama"
	}
	if strings.TrimSpace(c.LLMModel) == "" {
		c.LLMModel = "llama3"
	}
	if strings.TrimSpace(c.LLMBaseURL) == "" && c.LLMProvider == "ollama" {
		c.LLMBaseURL = "http://localhost:11434"
	}
	if c.LLMTimeout <= 0 {
		if c.LLMTimeoutString != "" {
			c.LLMTimeout = parseTimeout(c.LLMTimeoutString)
		}
		if c.LLMTimeout <= 0 {
			c.LLMTimeout = 180 * time.Second
		}
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		c.DatabasePath = "copilot.db"
	}
	if !c.saveHistorySet {
		c.SaveHistory = true
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"http://localhost:3000"}
	}
}

// loadConfigFile decodes the JSON file through a shadow struct with pointer
// booleans so that an explicit "save_history": false survives the merge and
// is not mistaken for an absent key.
func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	var raw struct {
		Addr         string   `json:"addr"`
		LLMProvider  string   `json:"llm_provider"`
		LLMModel     string   `json:"llm_model"`
		LLMBaseURL   string   `json:"llm_base_url"`
		LLMTimeout   string   `json:"llm_timeout"`
		DatabasePath string   `json:"database_path"`
		SaveHistory  *bool    `json:"save_history"`
		CORSOrigins  []string `json:"cors_origins"`
		Debug        *bool    `json:"debug"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	cfg := Config{
		Addr:             raw.Addr,
		LLMProvider:      raw.LLMProvider,
		LLMModel:         raw.LLMModel,
		LLMBaseURL:       raw.LLMBaseURL,
		LLMTimeoutString: raw.LLMTimeout,
		DatabasePath:     raw.DatabasePath,
		CORSOrigins:      raw.CORSOrigins,
	}
	if raw.SaveHistory != nil {
		cfg.SaveHistory = *raw.SaveHistory
		cfg.saveHistorySet = true
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
		cfg.debugSet = true
	}
	return cfg, nil
}

func loadConfigEnv() (Config, error) {
	cfg := Config{}
	cfg.Addr = strings.TrimSpace(os.Getenv("COPILOT_ADDR"))
	cfg.LLMProvider = strings.TrimSpace(os.Getenv("LLM_PROVIDER"))
	cfg.LLMModel = strings.TrimSpace(os.Getenv("LLM_MODEL"))
	cfg.LLMBaseURL = strings.TrimSpace(os.Getenv("LLM_BASE_URL"))
	cfg.LLMAPIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if timeout := strings.TrimSpace(os.Getenv("LLM_TIMEOUT")); timeout != "" {
		cfg.LLMTimeoutString = timeout
		cfg.LLMTimeout = parseTimeout(timeout)
		if cfg.LLMTimeout <= 0 {
			return Config{}, fmt.Errorf("parse LLM_TIMEOUT: invalid value %q", timeout)
		}
	}
	cfg.DatabasePath = strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if save := strings.TrimSpace(os.Getenv("SAVE_HISTORY")); save != "" {
		parsed, err := strconv.ParseBool(save)
		if err != nil {
			return Config{}, fmt.Errorf("parse SAVE_HISTORY: %w", err)
		}
		cfg.SaveHistory = parsed
		cfg.saveHistorySet = true
	}
	if origins := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); origins != "" {
		cfg.CORSOrigins = splitOrigins(origins)
	}
	if debug := strings.TrimSpace(os.Getenv("DEBUG")); debug != "" {
		parsed, err := strconv.ParseBool(debug)
		if err != nil {
			return Config{}, fmt.Errorf("parse DEBUG: %w", err)
		}
		cfg.Debug = parsed
		cfg.debugSet = true
	}
	return cfg, nil
}

// parseTimeout accepts either a Go duration ("3m") or a bare number of
// seconds ("180").
func parseTimeout(value string) time.Duration {
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if dur, err := time.ParseDuration(value); err == nil && dur > 0 {
		return dur
	}
	return 0
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
