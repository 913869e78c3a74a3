package providers

import (
	"context"
	"fmt"
	"strings"
)

// LocalProvider is a deterministic stub used for development and tests when
// no model backend is reachable.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	last := messages[len(messages)-1].Content
	return "[local-stub] " + strings.TrimSpace(last), nil
}

func (l *LocalProvider) CheckHealth(ctx context.Context) bool {
	return true
}

func (l *LocalProvider) Name() string {
	return "local"
}

func (l *LocalProvider) Close() error {
	return nil
}
