package providers

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged turn passed to a model backend.
type Message struct {
	Role    string
	Content string
}

// Provider is a connection to one language-model backend.
type Provider interface {
	// Generate runs a chat completion. The system prompt may be empty;
	// messages must not be.
	Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error)
	// CheckHealth probes backend reachability. It reports false for an
	// unreachable backend instead of returning an error.
	CheckHealth(ctx context.Context) bool
	Name() string
	// Close releases any pooled connection held by the provider.
	Close() error
}
