// Package agents holds the prompt contracts of the five pipeline agents:
// Strategist, Terminologist, Translator, QA Polisher, and TM Judge. Each
// agent sends a strict-JSON instruction through the model router and
// parses the raw reply; a malformed reply is fatal for the calling stage,
// except the TM Judge which conservatively declines reuse.
package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/subtitle-ai/zirnevis/pkg/config"
	"github.com/subtitle-ai/zirnevis/pkg/llm"
	"github.com/subtitle-ai/zirnevis/pkg/persian"
	"github.com/subtitle-ai/zirnevis/pkg/risk"
)

// Caller dispatches one routed chat call. *llm.Router satisfies it.
type Caller interface {
	Call(ctx context.Context, in llm.CallInput) (string, error)
}

// Fixed fallback chains the cheap routes carry in addition to the
// configured CSV lists.
var (
	strategistLowFallbacks  = []string{"anthropic/claude-haiku-4.5", "deepseek/deepseek-v3.2"}
	translatorEasyFallbacks = []string{"google/gemini-3-flash", "deepseek/deepseek-v3.2"}
	qaEasyFallbacks         = []string{"anthropic/claude-haiku-4.5"}
)

// Strategy is the Strategist's verdict on a transcript.
type Strategy struct {
	Genre                string
	Tone                 string
	DomainTags           []string
	DifficultyScore      int
	StrategistConfidence int
	NeedsTerminologist   bool
	NotesForTranslator   []string
}

// GlossaryTerm is one bilingual binding from the Terminologist.
type GlossaryTerm struct {
	EnTerm     string `json:"en_term"`
	FaTerm     string `json:"fa_term"`
	TermType   string `json:"term_type"`
	Mandatory  bool   `json:"mandatory"`
	Confidence *int   `json:"confidence"`
	Notes      string `json:"notes"`
}

// TranslationCue is the per-cue payload sent to Translator and QA.
type TranslationCue struct {
	CueID   string `json:"cue_id"`
	StartMs int    `json:"start_ms"`
	EndMs   int    `json:"end_ms"`
	EnText  string `json:"en_text"`
}

// QAResult is the QA Polisher's verdict over all cues.
type QAResult struct {
	Polished map[string]string   `json:"polished"`
	QAScores map[string]float64  `json:"qa_scores"`
	Issues   map[string][]string `json:"issues"`
}

// Agents binds the prompt contracts to a router and the configured models.
type Agents struct {
	caller Caller
	models config.ModelsConfig
}

// New builds the agent set.
func New(caller Caller, models config.ModelsConfig) *Agents {
	return &Agents{caller: caller, models: models}
}

const strategistSystem = "You are Strategist Agent for EN→FA subtitles. Be precise and structured."

const strategistSchema = `Output STRICT JSON:
{
  "genre": "tech_tutorial|interview|documentary|casual|academic|legal|medical|entertainment|other",
  "tone": "formal|neutral|casual|humorous|persuasive|emotional",
  "domain_tags": ["..."],
  "difficulty_score": 1-10,
  "strategist_confidence": 0-100,
  "needs_terminologist": true/false,
  "notes_for_translator": ["..."]
}`

// Strategist assesses the transcript sample. High-risk sources route to
// the heavyweight model; absent difficulty and confidence fall back to
// 5 and 70.
func (a *Agents) Strategist(ctx context.Context, jobID string, riskLevel risk.Level, sample string) (*Strategy, error) {
	models := append([]string{a.models.StrategistLow}, strategistLowFallbacks...)
	if riskLevel == risk.LevelHigh {
		models = append([]string{a.models.StrategistHigh}, a.models.FallbackStrategistHigh...)
	}

	content, err := a.caller.Call(ctx, llm.CallInput{
		JobID:       jobID,
		AgentName:   "strategist",
		Models:      models,
		System:      strategistSystem,
		User:        fmt.Sprintf("%s\n\nTranscript:\n%s", strategistSchema, sample),
		Temperature: 0.1,
		MaxTokens:   800,
		Meta:        map[string]any{"risk_level": string(riskLevel)},
	})
	if err != nil {
		return nil, err
	}

	var raw struct {
		Genre                string   `json:"genre"`
		Tone                 string   `json:"tone"`
		DomainTags           []string `json:"domain_tags"`
		DifficultyScore      *int     `json:"difficulty_score"`
		StrategistConfidence *int     `json:"strategist_confidence"`
		NeedsTerminologist   bool     `json:"needs_terminologist"`
		NotesForTranslator   []string `json:"notes_for_translator"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("strategist returned malformed JSON: %w", err)
	}

	st := &Strategy{
		Genre:                raw.Genre,
		Tone:                 raw.Tone,
		DomainTags:           raw.DomainTags,
		DifficultyScore:      5,
		StrategistConfidence: 70,
		NeedsTerminologist:   raw.NeedsTerminologist,
		NotesForTranslator:   raw.NotesForTranslator,
	}
	if raw.DifficultyScore != nil {
		st.DifficultyScore = *raw.DifficultyScore
	}
	if raw.StrategistConfidence != nil {
		st.StrategistConfidence = *raw.StrategistConfidence
	}
	return st, nil
}

const terminologistSystem = "You are Terminologist Agent for EN→FA subtitles. Build a strict bilingual glossary."

const terminologistSchema = `Extract specialized terms and output STRICT JSON:
{
  "terms": [
    {
      "en_term": "...",
      "fa_term": "...",
      "term_type": "jargon|product|acronym|name|other",
      "mandatory": true,
      "confidence": 0-100,
      "notes": "short context"
    }
  ]
}`

// Terminologist extracts the job glossary from the transcript sample.
func (a *Agents) Terminologist(ctx context.Context, jobID string, difficulty int, sample string) ([]GlossaryTerm, error) {
	primary := a.models.TerminologistMid
	if difficulty >= 8 {
		primary = a.models.TerminologistHard
	}

	content, err := a.caller.Call(ctx, llm.CallInput{
		JobID:       jobID,
		AgentName:   "terminologist",
		Models:      append([]string{primary}, a.models.FallbackTerminologist...),
		System:      terminologistSystem,
		User:        fmt.Sprintf("%s\n\nTranscript:\n%s", terminologistSchema, sample),
		Temperature: 0.1,
		MaxTokens:   1400,
		Meta:        map[string]any{"difficulty": difficulty},
	})
	if err != nil {
		return nil, err
	}

	var raw struct {
		Terms []struct {
			EnTerm     string `json:"en_term"`
			FaTerm     string `json:"fa_term"`
			TermType   string `json:"term_type"`
			Mandatory  *bool  `json:"mandatory"`
			Confidence *int   `json:"confidence"`
			Notes      string `json:"notes"`
		} `json:"terms"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("terminologist returned malformed JSON: %w", err)
	}

	terms := make([]GlossaryTerm, 0, len(raw.Terms))
	for _, t := range raw.Terms {
		term := GlossaryTerm{
			EnTerm:     t.EnTerm,
			FaTerm:     t.FaTerm,
			TermType:   t.TermType,
			Mandatory:  true,
			Confidence: t.Confidence,
			Notes:      t.Notes,
		}
		if t.Mandatory != nil {
			term.Mandatory = *t.Mandatory
		}
		terms = append(terms, term)
	}
	return terms, nil
}

const translatorSystem = "You are Translator Agent for EN→FA subtitles. Follow glossary strictly. No speaker IDs."

// Translate renders one cue batch into Persian. The reply maps cue_id to
// Persian text; cues the model omitted are simply absent from the map.
// Every value passes the Persian post-processing chain before return.
func (a *Agents) Translate(ctx context.Context, jobID string, difficulty int, glossary []GlossaryTerm, cues []TranslationCue) (map[string]string, error) {
	var models []string
	switch {
	case difficulty <= 3:
		models = append([]string{a.models.TranslatorEasy}, translatorEasyFallbacks...)
	case difficulty <= 7:
		models = append([]string{a.models.TranslatorMid}, a.models.FallbackTranslatorMid...)
	default:
		models = append([]string{a.models.TranslatorHard}, a.models.FallbackTranslatorHard...)
	}

	user := fmt.Sprintf(
		"Translate cues to Persian. Output STRICT JSON mapping cue_id -> Persian text. No markdown.\n\nGlossary (MANDATORY):\n%s\n\nCues JSON:\n%s",
		glossaryText(glossary), mustJSON(cues))

	content, err := a.caller.Call(ctx, llm.CallInput{
		JobID:       jobID,
		AgentName:   "translator",
		Models:      models,
		System:      translatorSystem,
		User:        user,
		Temperature: 0.2,
		MaxTokens:   2600,
		Meta:        map[string]any{"difficulty": difficulty, "batch_size": len(cues)},
	})
	if err != nil {
		return nil, err
	}

	var raw map[string]string
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("translator returned malformed JSON: %w", err)
	}

	out := make(map[string]string, len(raw))
	for cueID, fa := range raw {
		out[cueID] = persian.NormalizeSpacing(persian.StripSpeakerIDs(fa))
	}
	return out, nil
}

const qaSystem = "You are QA & Polisher Agent for EN→FA subtitles. Fix meaning, glossary compliance, punctuation, subtitle readability."

const qaSchema = `Output STRICT JSON:
{
  "polished": { "cue_id": "fa_text" },
  "qa_scores": { "cue_id": 0-100 },
  "issues": { "cue_id": ["..."] }
}`

// Polish runs the single QA pass over all cues and their current
// translations. Polished strings pass the Persian post-processing chain.
func (a *Agents) Polish(ctx context.Context, jobID string, difficulty int, glossary []GlossaryTerm, cues []TranslationCue, translations map[string]string) (*QAResult, error) {
	models := append([]string{a.models.QAEasy}, qaEasyFallbacks...)
	if difficulty > 3 {
		models = append([]string{a.models.QAHard}, a.models.FallbackQAHard...)
	}

	payload := map[string]any{"cues": cues, "translations": translations}
	user := fmt.Sprintf("%s\n\nGlossary (MANDATORY):\n%s\n\nInput JSON:\n%s",
		qaSchema, glossaryText(glossary), mustJSON(payload))

	content, err := a.caller.Call(ctx, llm.CallInput{
		JobID:       jobID,
		AgentName:   "qa_polisher",
		Models:      models,
		System:      qaSystem,
		User:        user,
		Temperature: 0.1,
		MaxTokens:   2600,
		Meta:        map[string]any{"difficulty": difficulty},
	})
	if err != nil {
		return nil, err
	}

	var result QAResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &result); err != nil {
		return nil, fmt.Errorf("qa polisher returned malformed JSON: %w", err)
	}

	for cueID, fa := range result.Polished {
		result.Polished[cueID] = persian.NormalizeSpacing(persian.StripSpeakerIDs(fa))
	}
	return &result, nil
}

const judgeSystem = "You are a strict bilingual subtitle QA judge (EN→FA)."

// JudgeTMReuse asks whether an existing Persian translation can be reused
// verbatim for the English cue. Malformed model output means no: reuse is
// the riskier answer. A transport failure is still an error.
func (a *Agents) JudgeTMReuse(ctx context.Context, jobID, enText, faText string) (bool, error) {
	user := fmt.Sprintf(
		"Decide if the Persian translation can be reused AS-IS for the English sentence. Return ONLY JSON: {\"reuse\": true/false, \"reason\": \"...\"}.\n\nEnglish: %s\nPersian: %s",
		enText, faText)

	content, err := a.caller.Call(ctx, llm.CallInput{
		JobID:       jobID,
		AgentName:   "tm_judge",
		Models:      []string{a.models.TMJudge},
		System:      judgeSystem,
		User:        user,
		Temperature: 0.0,
		MaxTokens:   200,
		Meta:        map[string]any{"purpose": "tm_reuse_judge"},
	})
	if err != nil {
		return false, err
	}

	var verdict struct {
		Reuse  bool   `json:"reuse"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &verdict); err != nil {
		return false, nil
	}
	return verdict.Reuse, nil
}

// ShouldReuse adapts JudgeTMReuse to the tm.Judge interface.
func (a *Agents) ShouldReuse(ctx context.Context, jobID, enText, faText string) (bool, error) {
	return a.JudgeTMReuse(ctx, jobID, enText, faText)
}

func glossaryText(glossary []GlossaryTerm) string {
	if len(glossary) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(glossary))
	for _, t := range glossary {
		lines = append(lines, fmt.Sprintf("- %s => %s", t.EnTerm, t.FaTerm))
	}
	return strings.Join(lines, "\n")
}

// mustJSON marshals prompt payloads without HTML escaping so Persian text
// stays readable to the model.
func mustJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		panic(err)
	}
	return strings.TrimRight(buf.String(), "\n")
}
