package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/pkg/agents"
	"github.com/subtitle-ai/zirnevis/pkg/asr"
	"github.com/subtitle-ai/zirnevis/pkg/models"
	"github.com/subtitle-ai/zirnevis/pkg/risk"
	"github.com/subtitle-ai/zirnevis/pkg/services"
	"github.com/subtitle-ai/zirnevis/pkg/subtitle"
)

const (
	// Strategist and terminologist see at most this many characters of
	// the transcript.
	sampleLimit = 20000

	// Gap enforced between adjacent cues by the timeline clamp.
	minGapMs = 1
)

func (e *Executor) stageAudioPrep(ctx context.Context, r *run) error {
	outPath, err := e.store.WorkFilePath(r.job.ID, "normalized.wav")
	if err != nil {
		return err
	}
	if err := e.audio.Normalize(ctx, r.job.InputURI, outPath); err != nil {
		return err
	}
	outPath = e.audio.MaybeVADTrim(outPath)

	if err := e.jobs.SetNormalizedURI(ctx, r.job.ID, outPath); err != nil {
		return err
	}
	r.job.NormalizedURI = &outPath
	return nil
}

func (e *Executor) stageASR(ctx context.Context, r *run) error {
	if r.job.NormalizedURI == nil {
		return fmt.Errorf("no normalized audio recorded for job")
	}

	transcript, err := e.asr.Transcribe(ctx, *r.job.NormalizedURI)
	if err != nil {
		return err
	}
	if strings.TrimSpace(transcript.Text) == "" && len(transcript.Words) == 0 {
		return fmt.Errorf("transcript is empty")
	}

	jsonPath, err := e.store.WorkFilePath(r.job.ID, "asr.json")
	if err != nil {
		return err
	}
	if err := transcript.SaveJSON(jsonPath); err != nil {
		return err
	}
	if err := e.jobs.SetASRJSONURI(ctx, r.job.ID, jsonPath); err != nil {
		return err
	}
	r.job.AsrJSONURI = &jsonPath
	r.transcript = transcript
	return nil
}

// loadTranscript returns the ASR result, reading asr.json back when the
// run resumed past the ASR stage.
func (e *Executor) loadTranscript(r *run) (*asr.Transcript, error) {
	if r.transcript != nil {
		return r.transcript, nil
	}
	if r.job.AsrJSONURI == nil {
		return nil, fmt.Errorf("no transcript recorded for job")
	}
	t, err := asr.LoadJSON(*r.job.AsrJSONURI)
	if err != nil {
		return nil, err
	}
	r.transcript = t
	return t, nil
}

// sampleText returns the transcript prefix the strategist and
// terminologist work from.
func (e *Executor) sampleText(r *run) (string, error) {
	t, err := e.loadTranscript(r)
	if err != nil {
		return "", err
	}
	runes := []rune(t.Text)
	if len(runes) > sampleLimit {
		runes = runes[:sampleLimit]
	}
	return string(runes), nil
}

func (e *Executor) stageSegment(ctx context.Context, r *run) error {
	t, err := e.loadTranscript(r)
	if err != nil {
		return err
	}

	var segments []subtitle.Segment
	if len(t.Words) > 0 {
		segments = subtitle.SegmentWords(t.SubtitleWords(), subtitle.SegmenterConfig{
			MaxLines:        r.job.MaxLines,
			MaxCharsPerLine: r.job.MaxCharsPerLine,
			MinCueMs:        r.job.MinCueMs,
			MaxCueMs:        r.job.MaxCueMs,
		})
	} else {
		segments = subtitle.SegmentText(t.Text)
	}
	if len(segments) == 0 {
		return fmt.Errorf("segmenter produced no cues")
	}

	cues, err := e.cues.ReplaceCues(ctx, r.job.ID, segments)
	if err != nil {
		return err
	}

	// English preview SRT; FINALIZE writes the authoritative copy again.
	if _, err := e.store.SaveOutput(r.job.ID, "en.srt", englishSRT(cues)); err != nil {
		return err
	}
	return nil
}

func (e *Executor) stageStrategy(ctx context.Context, r *run) error {
	sample, err := e.sampleText(r)
	if err != nil {
		return err
	}

	level := risk.Classify(sample)
	if err := e.jobs.SetRiskLevel(ctx, r.job.ID, string(level)); err != nil {
		return err
	}
	levelStr := string(level)
	r.job.RiskLevel = &levelStr

	st, err := e.agents.Strategist(ctx, r.job.ID, level, sample)
	if err != nil {
		return err
	}
	if err := e.jobs.SaveStrategy(ctx, r.job.ID, services.StrategyInput{
		Genre:              st.Genre,
		Tone:               st.Tone,
		DomainTags:         st.DomainTags,
		DifficultyScore:    st.DifficultyScore,
		StrategistConf:     st.StrategistConfidence,
		NeedsTerminologist: st.NeedsTerminologist,
	}); err != nil {
		return err
	}

	r.job.Genre = &st.Genre
	r.job.Tone = &st.Tone
	r.job.DomainTags = st.DomainTags
	r.job.DifficultyScore = &st.DifficultyScore
	r.job.StrategistConf = &st.StrategistConfidence
	r.job.NeedsTerminologist = &st.NeedsTerminologist
	return nil
}

func (e *Executor) stageTMGating(ctx context.Context, r *run) error {
	cues, err := e.cues.ListCues(ctx, r.job.ID)
	if err != nil {
		return err
	}
	if len(cues) == 0 {
		return fmt.Errorf("no cues to gate")
	}

	// One batch call covers every cue, in cue_index order.
	texts := make([]string, len(cues))
	for i, c := range cues {
		texts[i] = c.EnText
	}
	embeddings, err := e.embedder.Embed(ctx, e.cfg.EmbeddingModel, texts)
	if err != nil {
		return err
	}
	if len(embeddings) != len(cues) {
		return fmt.Errorf("expected %d embeddings, got %d", len(cues), len(embeddings))
	}

	for i, c := range cues {
		decision, err := e.gate.Evaluate(ctx, r.job.ID, c.EnText, embeddings[i])
		if err != nil {
			return err
		}
		if err := e.cues.ApplyTMDecision(ctx, c.ID, decision); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) stageTerms(ctx context.Context, r *run) error {
	sample, err := e.sampleText(r)
	if err != nil {
		return err
	}
	terms, err := e.agents.Terminologist(ctx, r.job.ID, r.difficulty(), sample)
	if err != nil {
		return err
	}

	inputs := make([]services.TermInput, 0, len(terms))
	for _, t := range terms {
		inputs = append(inputs, services.TermInput{
			EnTerm:     t.EnTerm,
			FaTerm:     t.FaTerm,
			TermType:   t.TermType,
			Mandatory:  t.Mandatory,
			Confidence: t.Confidence,
			Notes:      t.Notes,
		})
	}
	return e.glossary.ReplaceGlossary(ctx, r.job.ID, inputs)
}

// loadGlossary returns the persisted glossary snapshot. Translator and QA
// both read it after TERMS, so they see the same terms whether the stage
// ran, was skipped, or the job resumed.
func (e *Executor) loadGlossary(ctx context.Context, jobID string) ([]agents.GlossaryTerm, error) {
	rows, err := e.glossary.ListGlossary(ctx, jobID)
	if err != nil {
		return nil, err
	}
	terms := make([]agents.GlossaryTerm, 0, len(rows))
	for _, t := range rows {
		term := agents.GlossaryTerm{
			EnTerm:     t.EnTerm,
			FaTerm:     t.FaTerm,
			Mandatory:  t.Mandatory,
			Confidence: t.Confidence,
		}
		if t.TermType != nil {
			term.TermType = *t.TermType
		}
		if t.Notes != nil {
			term.Notes = *t.Notes
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func (e *Executor) stageTranslate(ctx context.Context, r *run) error {
	cues, err := e.cues.ListCues(ctx, r.job.ID)
	if err != nil {
		return err
	}
	glossary, err := e.loadGlossary(ctx, r.job.ID)
	if err != nil {
		return err
	}

	var need []*ent.JobCue
	for _, c := range cues {
		if c.NeedsTranslation {
			need = append(need, c)
		}
	}

	batchSize := e.cfg.TranslationBatchSize
	for i := 0; i < len(need); i += batchSize {
		batch := need[i:min(i+batchSize, len(need))]

		payload := make([]agents.TranslationCue, len(batch))
		for j, c := range batch {
			payload[j] = agents.TranslationCue{
				CueID:   c.ID,
				StartMs: c.StartMs,
				EndMs:   c.EndMs,
				EnText:  c.EnText,
			}
		}
		out, err := e.agents.Translate(ctx, r.job.ID, r.difficulty(), glossary, payload)
		if err != nil {
			return err
		}

		// Omitted cue_ids keep their previous fa_text; an empty Persian
		// cue surfaces through qa_score rather than failing the stage.
		for _, c := range batch {
			fa, ok := out[c.ID]
			if !ok {
				continue
			}
			if err := e.cues.SetTranslation(ctx, c.ID, fa); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Executor) stageQA(ctx context.Context, r *run) error {
	cues, err := e.cues.ListCues(ctx, r.job.ID)
	if err != nil {
		return err
	}
	glossary, err := e.loadGlossary(ctx, r.job.ID)
	if err != nil {
		return err
	}

	payload := make([]agents.TranslationCue, len(cues))
	translations := make(map[string]string, len(cues))
	for i, c := range cues {
		payload[i] = agents.TranslationCue{
			CueID:   c.ID,
			StartMs: c.StartMs,
			EndMs:   c.EndMs,
			EnText:  c.EnText,
		}
		translations[c.ID] = deref(c.FaText)
	}

	result, err := e.agents.Polish(ctx, r.job.ID, r.difficulty(), glossary, payload, translations)
	if err != nil {
		return err
	}

	for _, c := range cues {
		in := services.QAInput{Issues: []string{}}
		if polished, ok := result.Polished[c.ID]; ok {
			in.FaTextQA = polished
		} else {
			in.FaTextQA = deref(c.FaText)
		}
		if score, ok := result.QAScores[c.ID]; ok {
			s := score
			in.QAScore = &s
		}
		if issues, ok := result.Issues[c.ID]; ok {
			in.Issues = issues
		}
		if err := e.cues.ApplyQA(ctx, c.ID, in); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) stageFinalize(ctx context.Context, r *run) error {
	cues, err := e.cues.ListCues(ctx, r.job.ID)
	if err != nil {
		return err
	}

	if _, err := e.store.SaveOutput(r.job.ID, "en.srt", englishSRT(cues)); err != nil {
		return err
	}

	faCues := make([]subtitle.Cue, len(cues))
	for i, c := range cues {
		faCues[i] = subtitle.Cue{
			Index:   i + 1,
			StartMs: c.StartMs,
			EndMs:   c.EndMs,
			Text:    strings.TrimSpace(finalPersian(c)),
		}
	}
	faPath, err := e.store.SaveOutput(r.job.ID, "fa.srt",
		subtitle.BuildSRT(subtitle.ClampNonOverlapping(faCues, minGapMs)))
	if err != nil {
		return err
	}
	if err := e.jobs.SetFinalSrtURI(ctx, r.job.ID, faPath); err != nil {
		return err
	}
	r.job.FinalSrtURI = &faPath

	report := models.QAReport{
		JobID:           r.job.ID,
		RiskLevel:       r.job.RiskLevel,
		DifficultyScore: r.job.DifficultyScore,
		Genre:           r.job.Genre,
		Tone:            r.job.Tone,
		DomainTags:      r.job.DomainTags,
		Cues:            make([]models.QAReportCue, 0, len(cues)),
	}
	for _, c := range cues {
		issues := c.Issues
		if issues == nil {
			issues = []string{}
		}
		report.Cues = append(report.Cues, models.QAReportCue{
			CueIndex:     c.CueIndex,
			CueID:        c.ID,
			TMReused:     c.TmReused,
			TMConfidence: c.TmConfidence,
			QAScore:      c.QaScore,
			Issues:       issues,
		})
	}
	data, err := marshalReport(report)
	if err != nil {
		return err
	}
	if _, err := e.store.SaveReport(r.job.ID, "qa_report.json", data); err != nil {
		return err
	}
	return nil
}

func (e *Executor) stageLibrarian(ctx context.Context, r *run) error {
	cues, err := e.cues.ListCues(ctx, r.job.ID)
	if err != nil {
		return err
	}

	promoted, err := e.promoteCues(ctx, r.job.DomainTags, cues)
	if err != nil {
		return err
	}
	r.log.Info("Librarian finished", "promoted", promoted)

	data, err := marshalReport(models.LibrarianReport{StoredTMEntries: promoted})
	if err != nil {
		return err
	}
	if _, err := e.store.SaveReport(r.job.ID, "librarian.json", data); err != nil {
		return err
	}
	return nil
}

// englishSRT renders the clamped English track from the cue rows.
func englishSRT(cues []*ent.JobCue) string {
	out := make([]subtitle.Cue, len(cues))
	for i, c := range cues {
		out[i] = subtitle.Cue{Index: i + 1, StartMs: c.StartMs, EndMs: c.EndMs, Text: c.EnText}
	}
	return subtitle.BuildSRT(subtitle.ClampNonOverlapping(out, minGapMs))
}

// finalPersian is the emitted Persian text: the polished version when QA
// produced one, otherwise the raw translation, otherwise empty.
func finalPersian(c *ent.JobCue) string {
	if c.FaTextQa != nil && strings.TrimSpace(*c.FaTextQa) != "" {
		return *c.FaTextQa
	}
	return deref(c.FaText)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// marshalReport renders report JSON with two-space indentation and
// Persian text unescaped.
func marshalReport(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return buf.Bytes(), nil
}
