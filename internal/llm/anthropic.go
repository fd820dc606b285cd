package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// healthCheckMarker is the literal the health-check prompt asks the model
// to echo back. The check succeeds iff the first text block contains it.
const healthCheckMarker = "OK"

const healthCheckPrompt = `Respond with the single word OK.`

// AnthropicProvider implements Provider using the Anthropic SDK.
//
// The underlying client is initialized lazily on first use so that a
// missing credential surfaces as an error on the first operation rather
// than at construction time. Initialization happens at most once and the
// provider is safe for concurrent use.
type AnthropicProvider struct {
	cfg   AnthropicConfig
	model string

	initOnce sync.Once
	client   *anthropic.Client
	initErr  error

	// baseURL overrides the API endpoint. Used by tests.
	baseURL string
}

// NewAnthropicProvider creates a new Anthropic provider. The credential is
// not checked here; it is resolved on the first Generate or HealthCheck
// call.
func NewAnthropicProvider(cfg AnthropicConfig) *AnthropicProvider {
	return &AnthropicProvider{
		cfg:   cfg,
		model: resolveModel(cfg.Model, anthropicModels),
	}
}

// ensureClient performs the one-shot lazy initialization. A missing API
// key is recorded as ErrMissingCredential and returned on this and every
// subsequent call.
func (p *AnthropicProvider) ensureClient() error {
	p.initOnce.Do(func() {
		if p.cfg.APIKey == "" {
			p.initErr = &ErrMissingCredential{EnvVar: "INKMENTOR_ANTHROPIC_API_KEY"}
			return
		}

		opts := []option.RequestOption{
			option.WithAPIKey(p.cfg.APIKey),
		}
		if p.baseURL != "" {
			opts = append(opts, option.WithBaseURL(p.baseURL))
		}

		client := anthropic.NewClient(opts...)
		p.client = &client
	})
	return p.initErr
}

func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := p.ensureClient(); err != nil {
		return nil, err
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  buildAnthropicMessages(req.Messages),
	}

	if req.System != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.System},
		}
	}

	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	start := time.Now()
	msg, err := p.client.Messages.New(ctx, params)
	elapsed := time.Since(start)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	content, err := extractAnthropicContent(msg)
	if err != nil {
		return nil, err
	}

	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:        content,
		Usage:          EstimateUsage(string(msg.Model), promptText(req), string(content)),
		Model:          string(msg.Model),
		Timestamp:      start,
		ProcessingTime: elapsed,
		StopReason:     mapAnthropicStopReason(msg.StopReason),
	}, nil
}

// HealthCheck sends the fixed minimal prompt and looks for the marker in
// the first text block. Every failure path, including a missing
// credential, reports false.
func (p *AnthropicProvider) HealthCheck(ctx context.Context) bool {
	if err := p.ensureClient(); err != nil {
		return false
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 16,
		Messages: buildAnthropicMessages([]Message{
			{Role: RoleUser, Content: healthCheckPrompt},
		}),
	})
	if err != nil {
		return false
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return strings.Contains(block.Text, healthCheckMarker)
		}
	}
	return false
}

func (p *AnthropicProvider) ModelID() string {
	return p.model
}

func buildAnthropicMessages(msgs []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, len(msgs))
	for i, m := range msgs {
		role := anthropic.MessageParamRoleUser
		if m.Role == RoleAssistant {
			role = anthropic.MessageParamRoleAssistant
		}
		out[i] = anthropic.MessageParam{
			Role: role,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(m.Content),
			},
		}
	}
	return out
}

func extractAnthropicContent(msg *anthropic.Message) (json.RawMessage, error) {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return json.RawMessage(block.Text), nil
		}
	}
	return nil, &ErrInvalidResponse{
		Err: fmt.Errorf("no text content in Anthropic response"),
	}
}

// promptText concatenates the request text for token estimation.
func promptText(req Request) string {
	var b strings.Builder
	b.WriteString(req.System)
	for _, m := range req.Messages {
		b.WriteString(m.Content)
	}
	return b.String()
}

func mapAnthropicStopReason(reason anthropic.StopReason) string {
	switch reason {
	case "max_tokens":
		return "max_tokens"
	default:
		return "end"
	}
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return &ErrRateLimit{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	// Not in the map: use as-is (allows direct model IDs).
	return name
}
