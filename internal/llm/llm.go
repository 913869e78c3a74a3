// Package llm owns the connection to the language-model backend: provider
// selection plus the timeout-bounded gateway the rest of the service calls.
package llm

import (
	"fmt"
	"strings"

	"github.com/bizcopilot/backend/internal/common"
	"github.com/bizcopilot/backend/internal/config"
	"github.com/bizcopilot/backend/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

const (
	RoleSystem    = providers.RoleSystem
	RoleUser      = providers.RoleUser
	RoleAssistant = providers.RoleAssistant
)

// NewProvider constructs the provider named by the configuration. Unknown
// provider names are rejected.
func NewProvider(cfg config.Config) (Provider, error) {
	logger := common.Logger()
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "", "ollama":
		provider, err := providers.NewOllamaProvider(cfg.LLMModel, cfg.LLMBaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("llm: ollama provider selected")
		return provider, nil
	case "openai":
		if strings.TrimSpace(cfg.LLMAPIKey) == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		logger.Info("llm: OpenAI provider selected")
		return providers.NewOpenAIProvider(cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL), nil
	case "local":
		logger.Warn("llm: local stub provider selected; responses are canned")
		return providers.NewLocalProvider(), nil
	}
	return nil, fmt.Errorf("unsupported llm provider: %s", cfg.LLMProvider)
}
