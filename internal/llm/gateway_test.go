package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubProvider struct {
	response string
	err      error
	waitCtx  bool
	calls    int
	lastSys  string
	lastMsgs []Message
}

func (s *stubProvider) Generate(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	s.calls++
	s.lastSys = systemPrompt
	s.lastMsgs = append([]Message(nil), messages...)
	if s.waitCtx {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubProvider) CheckHealth(ctx context.Context) bool { return true }

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Close() error { return nil }

func TestGatewayGenerate(t *testing.T) {
	provider := &stubProvider{response: "ответ"}
	gateway := NewGateway(provider, time.Second)
	text, err := gateway.Generate(context.Background(), "system", []Message{{Role: RoleUser, Content: "привет"}})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if text != "ответ" {
		t.Fatalf("text = %q", text)
	}
	if provider.lastSys != "system" {
		t.Fatalf("system prompt = %q", provider.lastSys)
	}
	if provider.calls != 1 {
		t.Fatalf("calls = %d, want exactly one attempt", provider.calls)
	}
}

func TestGatewayGenerateRequiresMessages(t *testing.T) {
	gateway := NewGateway(&stubProvider{response: "x"}, time.Second)
	if _, err := gateway.Generate(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty message list")
	}
}

func TestGatewayGenerateWrapsUpstreamError(t *testing.T) {
	upstream := errors.New("connection refused")
	provider := &stubProvider{err: upstream}
	gateway := NewGateway(provider, time.Second)
	_, err := gateway.Generate(context.Background(), "", []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("expected error")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error %T is not a GenerationError", err)
	}
	if genErr.Provider != "stub" {
		t.Fatalf("provider = %q", genErr.Provider)
	}
	if !errors.Is(err, upstream) {
		t.Fatal("upstream error detail not preserved")
	}
	if provider.calls != 1 {
		t.Fatalf("calls = %d, want no retry", provider.calls)
	}
}

func TestGatewayGenerateRejectsEmptyResponse(t *testing.T) {
	gateway := NewGateway(&stubProvider{response: "   "}, time.Second)
	_, err := gateway.Generate(context.Background(), "", []Message{{Role: RoleUser, Content: "hi"}})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGatewayGenerateTimeout(t *testing.T) {
	gateway := NewGateway(&stubProvider{waitCtx: true}, 20*time.Millisecond)
	_, err := gateway.Generate(context.Background(), "", []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
