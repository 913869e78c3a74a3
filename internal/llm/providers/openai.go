package providers

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/bizcopilot/backend/internal/common"
)

// OpenAIProvider talks to the OpenAI API or any compatible endpoint.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, modelName, baseURL string) *OpenAIProvider {
	logger := common.Logger()
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		logger.Info("llm: configuring OpenAI client with custom endpoint", "endpoint", baseURL)
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	logger.Info("llm: OpenAI provider configured", "model", modelName)
	return &OpenAIProvider{client: openai.NewClient(opts...), model: modelName}
}

func (p *OpenAIProvider) Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	logger := common.Logger()
	logger.Debug("llm: sending chat completion request", "model", p.model, "messages", len(messages))
	params := openai.ChatCompletionNewParams{Model: openai.ChatModel(p.model)}
	if systemPrompt != "" {
		params.Messages = append(params.Messages, openai.SystemMessage(systemPrompt))
	}
	for _, msg := range messages {
		if msg.Role == RoleAssistant {
			params.Messages = append(params.Messages, openai.AssistantMessage(msg.Content))
			continue
		}
		params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
	}
	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("llm: chat completion failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	logger.Debug("llm: chat completion succeeded")
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) CheckHealth(ctx context.Context) bool {
	_, err := p.client.Models.List(ctx)
	return err == nil
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Close() error {
	return nil
}
