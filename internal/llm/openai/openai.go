// Package openai implements the completion gateway against an
// OpenAI-compatible chat-completions API.
package openai

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Pkra99/persona-ai/internal/llm"
)

// Sampling parameters are fixed per deployment; only the model is chosen at
// startup.
const (
	maxResponseTokens = 150
	temperature       = 0.8

	defaultTimeout = 30 * time.Second
	retryBackoff   = 500 * time.Millisecond
)

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the provider endpoint, for compatible providers and
	// tests. Empty means the official API.
	BaseURL string
	// Timeout bounds a single Complete call, retry included.
	Timeout time.Duration
}

// Gateway sends one chat-completion request per Complete call. Transient
// provider failures are retried once after a short backoff; nothing is
// cached.
type Gateway struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewGateway(cfg Config) *Gateway {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Gateway{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: timeout,
	}
}

func (g *Gateway) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    toChatMessages(messages),
		MaxTokens:   maxResponseTokens,
		Temperature: temperature,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && retryable(err) {
		select {
		case <-time.After(retryBackoff):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func toChatMessages(messages []llm.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

// retryable reports whether a failure is worth one more attempt: rate limits,
// provider 5xx, or a transport error before any HTTP status was seen. Client
// errors and expired contexts are not retried.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= http.StatusInternalServerError
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= http.StatusInternalServerError
	}
	return true
}
