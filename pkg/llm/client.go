// Package llm provides the OpenRouter-backed chat and embedding client and
// the model router that records every agent call as an LLMRun audit row.
package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

const (
	// ProviderName is recorded on successful LLMRun rows.
	ProviderName = "openrouter"

	requestTimeout = 180 * time.Second

	// Per-model retry policy: 3 attempts with jittered exponential backoff
	// between 1s and 10s.
	maxAttempts     = 3
	retryInitial    = 1 * time.Second
	retryMaxBackoff = 10 * time.Second
)

// Request is a single-turn chat completion ask.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Response carries the model output and token usage.
type Response struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// ChatProvider executes one chat completion against one named model.
type ChatProvider interface {
	// Name identifies the upstream provider for audit rows.
	Name() string
	Chat(ctx context.Context, model string, req Request) (*Response, error)
}

// Client talks to OpenRouter through its OpenAI-compatible API.
type Client struct {
	client oai.Client
}

var _ ChatProvider = (*Client)(nil)

// NewClient builds an OpenRouter client. baseURL is normally
// https://openrouter.ai/api/v1.
func NewClient(apiKey, baseURL string) *Client {
	client := oai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHeader("X-Title", "SubtitleAI-MVP"),
		option.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	)
	return &Client{client: client}
}

// Name implements ChatProvider.
func (c *Client) Name() string { return ProviderName }

// Chat implements ChatProvider. The temperature is always sent explicitly
// because several agents depend on deterministic zero-temperature output.
func (c *Client) Chat(ctx context.Context, model string, req Request) (*Response, error) {
	var messages []oai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, oai.SystemMessage(req.System))
	}
	messages = append(messages, oai.UserMessage(req.User))

	params := oai.ChatCompletionNewParams{
		Model:       shared.ChatModel(model),
		Messages:    messages,
		Temperature: param.NewOpt(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = param.NewOpt(int64(req.MaxTokens))
	}

	var resp *oai.ChatCompletion
	err := withRetry(ctx, func() error {
		var callErr error
		resp, callErr = c.client.Chat.Completions.New(ctx, params)
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty choices in completion response")
	}

	out := &Response{Content: resp.Choices[0].Message.Content}
	out.PromptTokens = int(resp.Usage.PromptTokens)
	out.CompletionTokens = int(resp.Usage.CompletionTokens)
	return out, nil
}

// Embed returns one vector per input text, in input order. Embedding calls
// share the chat retry policy but have no model fallback and are not
// recorded as LLMRun rows.
func (c *Client) Embed(ctx context.Context, model string, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var resp *oai.CreateEmbeddingResponse
	err := withRetry(ctx, func() error {
		var callErr error
		resp, callErr = c.client.Embeddings.New(ctx, oai.EmbeddingNewParams{
			Model: model,
			Input: oai.EmbeddingNewParamsInputUnion{
				OfArrayOfStrings: texts,
			},
		})
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if int(d.Index) >= len(texts) {
			return nil, fmt.Errorf("unexpected embedding index %d", d.Index)
		}
		vec := make([]float32, len(d.Embedding))
		for i, v := range d.Embedding {
			vec[i] = float32(v)
		}
		out[d.Index] = vec
	}
	return out, nil
}

func withRetry(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitial
	bo.MaxInterval = retryMaxBackoff
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, maxAttempts-1), ctx))
}

// SHA256Hex returns the lowercase hex SHA-256 digest of s. Audit rows store
// prompt and output digests instead of raw text.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
