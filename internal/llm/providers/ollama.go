package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/bizcopilot/backend/internal/common"
)

// OllamaProvider talks to a local Ollama server through langchaingo.
type OllamaProvider struct {
	model   *ollama.LLM
	name    string
	baseURL string
	probe   *http.Client
}

func NewOllamaProvider(modelName, serverURL string) (*OllamaProvider, error) {
	logger := common.Logger()
	model, err := ollama.New(
		ollama.WithModel(modelName),
		ollama.WithServerURL(serverURL),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama model: %w", err)
	}
	logger.Info("llm: ollama provider configured", "model", modelName, "base_url", serverURL)
	return &OllamaProvider{
		model:   model,
		name:    modelName,
		baseURL: strings.TrimRight(serverURL, "/"),
		probe:   &http.Client{},
	}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	logger := common.Logger()
	logger.Debug("llm: sending ollama chat request", "model", p.name, "messages", len(messages))
	content := make([]llms.MessageContent, 0, len(messages)+1)
	if systemPrompt != "" {
		content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	}
	for _, msg := range messages {
		role := llms.ChatMessageTypeHuman
		if msg.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, msg.Content))
	}
	resp, err := p.model.GenerateContent(ctx, content)
	if err != nil {
		logger.Error("llm: ollama chat request failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	logger.Debug("llm: ollama chat request succeeded")
	return resp.Choices[0].Content, nil
}

// CheckHealth issues a GET against the server root; a running Ollama answers
// 200 there.
func (p *OllamaProvider) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := p.probe.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

func (p *OllamaProvider) Name() string {
	return "ollama"
}

func (p *OllamaProvider) Close() error {
	p.probe.CloseIdleConnections()
	return nil
}
