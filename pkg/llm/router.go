package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// chatMessage is the wire shape hashed into input_sha. Keeping the exact
// role/content ordering makes the digest stable across runs.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CallInput describes one routed agent call. Models is the ordered
// [primary, fallbacks...] list; it must be non-empty.
type CallInput struct {
	JobID     string
	CueID     string
	AgentName string
	Models    []string

	System      string
	User        string
	Temperature float64
	MaxTokens   int

	// Meta is free-form context stored on the audit row.
	Meta map[string]any
}

// RunRecorder persists LLMRun audit rows. The router creates the row in
// error state before the first attempt, then updates it per attempt; the
// final state always reflects the last attempted model.
type RunRecorder interface {
	BeginRun(ctx context.Context, in BeginRunInput) (string, error)
	MarkAttempt(ctx context.Context, runID, model string, startedAt time.Time) error
	MarkSuccess(ctx context.Context, runID string, in RunSuccessInput) error
	MarkFailure(ctx context.Context, runID, errMsg string, finishedAt time.Time) error
}

// BeginRunInput seeds the audit row for a routed call.
type BeginRunInput struct {
	JobID     string
	CueID     string
	AgentName string
	Model     string
	Provider  string
	InputSHA  string
	Meta      map[string]any
}

// RunSuccessInput finalizes the audit row after a successful attempt.
type RunSuccessInput struct {
	Provider         string
	OutputSHA        string
	PromptTokens     int
	CompletionTokens int
	FinishedAt       time.Time
}

// ExhaustedError is returned when every model in the list failed. It
// carries the last provider error for diagnosis.
type ExhaustedError struct {
	AgentName string
	LastErr   error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all models failed for %s: %v", e.AgentName, e.LastErr)
}

func (e *ExhaustedError) Unwrap() error { return e.LastErr }

// IsExhausted reports whether err is a model-exhaustion failure.
func IsExhausted(err error) bool {
	var ee *ExhaustedError
	return errors.As(err, &ee)
}

// Router tries each model in order, recording the whole call as a single
// LLMRun row. Retries live inside the provider; the router treats one
// Chat call per model as all-or-nothing.
type Router struct {
	provider ChatProvider
	recorder RunRecorder
}

// NewRouter builds a router over a provider and an audit recorder.
func NewRouter(provider ChatProvider, recorder RunRecorder) *Router {
	return &Router{provider: provider, recorder: recorder}
}

// Call executes the fallback loop and returns the first successful model
// output. Audit-row write failures are fatal: a call with no audit trail
// must not proceed.
func (r *Router) Call(ctx context.Context, in CallInput) (string, error) {
	if len(in.Models) == 0 {
		return "", fmt.Errorf("no models configured for agent %s", in.AgentName)
	}

	inputSHA := SHA256Hex(encodeMessages(in.System, in.User))
	runID, err := r.recorder.BeginRun(ctx, BeginRunInput{
		JobID:     in.JobID,
		CueID:     in.CueID,
		AgentName: in.AgentName,
		Model:     in.Models[0],
		Provider:  r.provider.Name(),
		InputSHA:  inputSHA,
		Meta:      in.Meta,
	})
	if err != nil {
		return "", fmt.Errorf("failed to record llm run: %w", err)
	}

	req := Request{
		System:      in.System,
		User:        in.User,
		Temperature: in.Temperature,
		MaxTokens:   in.MaxTokens,
	}

	var lastErr error
	for _, model := range in.Models {
		startedAt := time.Now()
		if err := r.recorder.MarkAttempt(ctx, runID, model, startedAt); err != nil {
			return "", fmt.Errorf("failed to record llm attempt: %w", err)
		}

		resp, callErr := r.provider.Chat(ctx, model, req)
		if callErr != nil {
			lastErr = callErr
			slog.Warn("Model call failed, trying next",
				"agent", in.AgentName, "model", model, "error", callErr)
			if err := r.recorder.MarkFailure(ctx, runID, callErr.Error(), time.Now()); err != nil {
				return "", fmt.Errorf("failed to record llm failure: %w", err)
			}
			continue
		}

		if err := r.recorder.MarkSuccess(ctx, runID, RunSuccessInput{
			Provider:         r.provider.Name(),
			OutputSHA:        SHA256Hex(resp.Content),
			PromptTokens:     resp.PromptTokens,
			CompletionTokens: resp.CompletionTokens,
			FinishedAt:       time.Now(),
		}); err != nil {
			return "", fmt.Errorf("failed to record llm success: %w", err)
		}
		return resp.Content, nil
	}

	return "", &ExhaustedError{AgentName: in.AgentName, LastErr: lastErr}
}

// encodeMessages renders the system→user message list as compact JSON with
// Unicode left unescaped, mirroring the hashed request body.
func encodeMessages(system, user string) string {
	msgs := []chatMessage{}
	if system != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: system})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: user})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a []chatMessage cannot fail.
	_ = enc.Encode(msgs)
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
