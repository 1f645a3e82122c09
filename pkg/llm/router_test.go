package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider scripts per-model outcomes and records call order.
type fakeProvider struct {
	responses map[string]*Response
	errs      map[string]error
	calls     []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Chat(_ context.Context, model string, _ Request) (*Response, error) {
	f.calls = append(f.calls, model)
	if err, ok := f.errs[model]; ok {
		return nil, err
	}
	if resp, ok := f.responses[model]; ok {
		return resp, nil
	}
	return nil, errors.New("unscripted model")
}

// memRecorder is an in-memory RunRecorder capturing the final row state.
type memRecorder struct {
	runID     string
	agentName string
	model     string
	status    string
	errorMsg  string
	outputSHA string
	inputSHA  string
	attempts  []string
	prompt    int
	complete  int
}

func (m *memRecorder) BeginRun(_ context.Context, in BeginRunInput) (string, error) {
	m.runID = "run-1"
	m.agentName = in.AgentName
	m.model = in.Model
	m.status = "error"
	m.inputSHA = in.InputSHA
	return m.runID, nil
}

func (m *memRecorder) MarkAttempt(_ context.Context, _, model string, _ time.Time) error {
	m.model = model
	m.attempts = append(m.attempts, model)
	return nil
}

func (m *memRecorder) MarkSuccess(_ context.Context, _ string, in RunSuccessInput) error {
	m.status = "success"
	m.outputSHA = in.OutputSHA
	m.prompt = in.PromptTokens
	m.complete = in.CompletionTokens
	return nil
}

func (m *memRecorder) MarkFailure(_ context.Context, _, errMsg string, _ time.Time) error {
	m.status = "error"
	m.errorMsg = errMsg
	return nil
}

func TestRouterFallback(t *testing.T) {
	provider := &fakeProvider{
		errs: map[string]error{"primary-model": errors.New("upstream 502")},
		responses: map[string]*Response{
			"fallback-model": {Content: "translated text", PromptTokens: 10, CompletionTokens: 20},
		},
	}
	rec := &memRecorder{}
	router := NewRouter(provider, rec)

	content, err := router.Call(context.Background(), CallInput{
		JobID:     "job-1",
		AgentName: "translator",
		Models:    []string{"primary-model", "fallback-model"},
		System:    "sys",
		User:      "usr",
	})
	require.NoError(t, err)
	assert.Equal(t, "translated text", content)

	// The run row reflects the fallback's success.
	assert.Equal(t, "success", rec.status)
	assert.Equal(t, "fallback-model", rec.model)
	assert.Equal(t, []string{"primary-model", "fallback-model"}, rec.attempts)
	assert.Equal(t, SHA256Hex("translated text"), rec.outputSHA)
	assert.Equal(t, 10, rec.prompt)
	assert.Equal(t, 20, rec.complete)
}

func TestRouterFirstModelWins(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string]*Response{
			"primary-model":  {Content: "primary output"},
			"fallback-model": {Content: "never reached"},
		},
	}
	rec := &memRecorder{}
	router := NewRouter(provider, rec)

	content, err := router.Call(context.Background(), CallInput{
		AgentName: "strategist",
		Models:    []string{"primary-model", "fallback-model"},
		User:      "usr",
	})
	require.NoError(t, err)
	assert.Equal(t, "primary output", content)
	assert.Equal(t, []string{"primary-model"}, provider.calls)
}

func TestRouterAllModelsExhausted(t *testing.T) {
	lastErr := errors.New("rate limited")
	provider := &fakeProvider{
		errs: map[string]error{
			"m1": errors.New("timeout"),
			"m2": lastErr,
		},
	}
	rec := &memRecorder{}
	router := NewRouter(provider, rec)

	_, err := router.Call(context.Background(), CallInput{
		AgentName: "qa_polisher",
		Models:    []string{"m1", "m2"},
		User:      "usr",
	})
	require.Error(t, err)
	assert.True(t, IsExhausted(err))
	assert.ErrorIs(t, err, lastErr)

	// Final row state is the last attempt's failure.
	assert.Equal(t, "error", rec.status)
	assert.Equal(t, "m2", rec.model)
	assert.Equal(t, "rate limited", rec.errorMsg)
}

func TestRouterNoModels(t *testing.T) {
	router := NewRouter(&fakeProvider{}, &memRecorder{})
	_, err := router.Call(context.Background(), CallInput{AgentName: "translator"})
	require.Error(t, err)
	assert.False(t, IsExhausted(err))
}

func TestEncodeMessagesStable(t *testing.T) {
	full := encodeMessages("sys", "سلام دنیا")
	assert.Equal(t, `[{"role":"system","content":"sys"},{"role":"user","content":"سلام دنیا"}]`, full)

	noSystem := encodeMessages("", "hi")
	assert.Equal(t, `[{"role":"user","content":"hi"}]`, noSystem)
}
