package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bizcopilot/backend/internal/common"
)

const healthProbeTimeout = 5 * time.Second

// GenerationError reports a failed model call with the upstream detail
// attached for diagnostics.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Gateway wraps a provider with the call policy shared by every invocation:
// a bounded timeout, at most one attempt, and no partial results.
type Gateway struct {
	provider Provider
	timeout  time.Duration
}

func NewGateway(provider Provider, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 180 * time.Second
	}
	return &Gateway{provider: provider, timeout: timeout}
}

// Generate runs a single chat completion bounded by the configured timeout.
// The caller's context is honoured as well, so a client disconnect cancels
// the upstream call.
func (g *Gateway) Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("no messages provided")
	}
	logger := common.Logger()
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	start := time.Now()
	text, err := g.provider.Generate(ctx, systemPrompt, messages)
	if err != nil {
		logger.Error("llm: generation failed", "provider", g.provider.Name(), "error", err, "dur", time.Since(start))
		return "", &GenerationError{Provider: g.provider.Name(), Err: err}
	}
	if strings.TrimSpace(text) == "" {
		logger.Error("llm: generation returned empty response", "provider", g.provider.Name())
		return "", &GenerationError{Provider: g.provider.Name(), Err: errors.New("empty response from model")}
	}
	logger.Debug("llm: generation succeeded", "provider", g.provider.Name(), "dur", time.Since(start))
	return text, nil
}

// CheckHealth probes the backend with a short deadline; it never fails the
// caller, it only reports reachability.
func (g *Gateway) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()
	return g.provider.CheckHealth(ctx)
}

func (g *Gateway) ProviderName() string {
	return g.provider.Name()
}

func (g *Gateway) Close() error {
	return g.provider.Close()
}
