package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestMockProvider_HealthCheck(t *testing.T) {
	mock := NewMockProvider()
	if !mock.HealthCheck(context.Background()) {
		t.Fatal("expected healthy by default")
	}
	mock.Healthy = false
	if mock.HealthCheck(context.Background()) {
		t.Fatal("expected unhealthy after flag flip")
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"abcd", 1},
		{"twelve chars", 3},
	}
	for _, tt := range tests {
		if got := estimateTokens(tt.text); got != tt.want {
			t.Errorf("estimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestEstimateUsage_KnownModel(t *testing.T) {
	prompt := "aaaaaaaa"     // 8 chars -> 2 tokens
	completion := "bbbbbbbb" // 8 chars -> 2 tokens

	u := EstimateUsage("claude-sonnet-4-20250514", prompt, completion)
	if u.InputTokens != 2 || u.OutputTokens != 2 || u.TotalTokens != 4 {
		t.Fatalf("unexpected token counts: %+v", u)
	}
	// 2 tokens at $3/MTok in + 2 tokens at $15/MTok out.
	want := 2*3.0/1_000_000 + 2*15.0/1_000_000
	if u.EstimatedCost != want {
		t.Fatalf("expected cost %v, got %v", want, u.EstimatedCost)
	}
}

func TestEstimateUsage_UnknownModelUsesDefaultPricing(t *testing.T) {
	u := EstimateUsage("some-future-model", "aaaaaaaa", "bbbbbbbb")
	if u.EstimatedCost <= 0 {
		t.Fatal("expected a positive cost estimate for unknown models")
	}
}

func TestLookupCost(t *testing.T) {
	if LookupCost("claude-haiku-4-5") == nil {
		t.Fatal("expected pricing for claude-haiku-4-5")
	}
	if LookupCost("not-a-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
