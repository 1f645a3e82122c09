package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtitle-ai/zirnevis/pkg/config"
	"github.com/subtitle-ai/zirnevis/pkg/llm"
	"github.com/subtitle-ai/zirnevis/pkg/risk"
)

// scriptedCaller records the last CallInput and returns a canned reply.
type scriptedCaller struct {
	reply string
	err   error
	last  llm.CallInput
	calls int
}

func (s *scriptedCaller) Call(_ context.Context, in llm.CallInput) (string, error) {
	s.last = in
	s.calls++
	return s.reply, s.err
}

func testModels() config.ModelsConfig {
	return config.ModelsConfig{
		StrategistLow:          "low-model",
		StrategistHigh:         "high-model",
		FallbackStrategistHigh: []string{"high-fb"},
		TerminologistMid:       "term-mid",
		TerminologistHard:      "term-hard",
		FallbackTerminologist:  []string{"term-fb"},
		TranslatorEasy:         "tr-easy",
		TranslatorMid:          "tr-mid",
		TranslatorHard:         "tr-hard",
		FallbackTranslatorMid:  []string{"tr-mid-fb"},
		FallbackTranslatorHard: []string{"tr-hard-fb"},
		QAEasy:                 "qa-easy",
		QAHard:                 "qa-hard",
		FallbackQAHard:         []string{"qa-hard-fb"},
		TMJudge:                "judge-model",
	}
}

func TestStrategistModelSelection(t *testing.T) {
	cases := []struct {
		risk   risk.Level
		models []string
	}{
		{risk.LevelLow, []string{"low-model", "anthropic/claude-haiku-4.5", "deepseek/deepseek-v3.2"}},
		{risk.LevelMedium, []string{"low-model", "anthropic/claude-haiku-4.5", "deepseek/deepseek-v3.2"}},
		{risk.LevelHigh, []string{"high-model", "high-fb"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.risk), func(t *testing.T) {
			caller := &scriptedCaller{reply: `{"genre":"tech_tutorial","tone":"neutral","difficulty_score":6,"strategist_confidence":88,"needs_terminologist":true}`}
			a := New(caller, testModels())

			st, err := a.Strategist(context.Background(), "job-1", tc.risk, "sample")
			require.NoError(t, err)

			assert.Equal(t, tc.models, caller.last.Models)
			assert.Equal(t, "strategist", caller.last.AgentName)
			assert.Equal(t, 6, st.DifficultyScore)
			assert.Equal(t, 88, st.StrategistConfidence)
			assert.True(t, st.NeedsTerminologist)
		})
	}
}

func TestStrategistDefaults(t *testing.T) {
	caller := &scriptedCaller{reply: `{"genre":"casual","tone":"casual"}`}
	a := New(caller, testModels())

	st, err := a.Strategist(context.Background(), "job-1", risk.LevelLow, "sample")
	require.NoError(t, err)
	assert.Equal(t, 5, st.DifficultyScore)
	assert.Equal(t, 70, st.StrategistConfidence)
	assert.False(t, st.NeedsTerminologist)
}

func TestStrategistMalformedJSONIsFatal(t *testing.T) {
	caller := &scriptedCaller{reply: "Sure! Here is the JSON you asked for..."}
	a := New(caller, testModels())

	_, err := a.Strategist(context.Background(), "job-1", risk.LevelLow, "sample")
	require.Error(t, err)
}

func TestTerminologistModelByDifficulty(t *testing.T) {
	for _, tc := range []struct {
		difficulty int
		primary    string
	}{
		{7, "term-mid"},
		{8, "term-hard"},
	} {
		caller := &scriptedCaller{reply: `{"terms":[{"en_term":"Docker","fa_term":"داکر","term_type":"product","confidence":95,"notes":"container runtime"}]}`}
		a := New(caller, testModels())

		terms, err := a.Terminologist(context.Background(), "job-1", tc.difficulty, "sample")
		require.NoError(t, err)

		assert.Equal(t, []string{tc.primary, "term-fb"}, caller.last.Models)
		require.Len(t, terms, 1)
		assert.Equal(t, "Docker", terms[0].EnTerm)
		assert.True(t, terms[0].Mandatory, "mandatory defaults to true when absent")
		require.NotNil(t, terms[0].Confidence)
		assert.Equal(t, 95, *terms[0].Confidence)
	}
}

func TestTranslateModelTiers(t *testing.T) {
	cases := []struct {
		difficulty int
		models     []string
	}{
		{3, []string{"tr-easy", "google/gemini-3-flash", "deepseek/deepseek-v3.2"}},
		{7, []string{"tr-mid", "tr-mid-fb"}},
		{8, []string{"tr-hard", "tr-hard-fb"}},
	}
	for _, tc := range cases {
		caller := &scriptedCaller{reply: `{"c1":"سلام دنیا"}`}
		a := New(caller, testModels())

		out, err := a.Translate(context.Background(), "job-1", tc.difficulty, nil,
			[]TranslationCue{{CueID: "c1", StartMs: 0, EndMs: 900, EnText: "Hello world"}})
		require.NoError(t, err)

		assert.Equal(t, tc.models, caller.last.Models)
		assert.Equal(t, map[string]string{"c1": "سلام دنیا"}, out)
		assert.Equal(t, 1, caller.last.Meta["batch_size"])
	}
}

func TestTranslatePostProcessesPersian(t *testing.T) {
	caller := &scriptedCaller{reply: `{"c1":"Speaker 2:   سلام  ،دنیا"}`}
	a := New(caller, testModels())

	out, err := a.Translate(context.Background(), "job-1", 5, nil,
		[]TranslationCue{{CueID: "c1", EnText: "Hello"}})
	require.NoError(t, err)
	assert.Equal(t, "سلام، دنیا", out["c1"])
}

func TestTranslateGlossaryInPrompt(t *testing.T) {
	caller := &scriptedCaller{reply: `{}`}
	a := New(caller, testModels())

	_, err := a.Translate(context.Background(), "job-1", 5,
		[]GlossaryTerm{{EnTerm: "container", FaTerm: "کانتینر"}},
		[]TranslationCue{{CueID: "c1", EnText: "the container"}})
	require.NoError(t, err)
	assert.Contains(t, caller.last.User, "- container => کانتینر")
}

func TestPolishTiersAndPostProcessing(t *testing.T) {
	caller := &scriptedCaller{reply: `{"polished":{"c1":"HOST:  متن  صیقل‌خورده"},"qa_scores":{"c1":91},"issues":{"c1":["minor_style"]}}`}
	a := New(caller, testModels())

	res, err := a.Polish(context.Background(), "job-1", 6, nil,
		[]TranslationCue{{CueID: "c1", EnText: "text"}}, map[string]string{"c1": "متن"})
	require.NoError(t, err)

	assert.Equal(t, []string{"qa-hard", "qa-hard-fb"}, caller.last.Models)
	assert.Equal(t, "متن صیقل‌خورده", res.Polished["c1"])
	assert.Equal(t, 91.0, res.QAScores["c1"])
	assert.Equal(t, []string{"minor_style"}, res.Issues["c1"])

	easyCaller := &scriptedCaller{reply: `{"polished":{},"qa_scores":{},"issues":{}}`}
	easy := New(easyCaller, testModels())
	_, err = easy.Polish(context.Background(), "job-1", 2, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"qa-easy", "anthropic/claude-haiku-4.5"}, easyCaller.last.Models)
}

func TestJudgeTMReuse(t *testing.T) {
	t.Run("reuse true", func(t *testing.T) {
		caller := &scriptedCaller{reply: `{"reuse": true, "reason": "equivalent"}`}
		a := New(caller, testModels())

		ok, err := a.JudgeTMReuse(context.Background(), "job-1", "Use port 8080", "از پورت ۸۰۸۰")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"judge-model"}, caller.last.Models, "judge has no fallbacks")
	})

	t.Run("parse failure degrades to false", func(t *testing.T) {
		caller := &scriptedCaller{reply: "I think it should be reusable."}
		a := New(caller, testModels())

		ok, err := a.JudgeTMReuse(context.Background(), "job-1", "en", "fa")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("transport failure is an error", func(t *testing.T) {
		caller := &scriptedCaller{err: errors.New("all models failed")}
		a := New(caller, testModels())

		_, err := a.JudgeTMReuse(context.Background(), "job-1", "en", "fa")
		require.Error(t, err)
	})
}
