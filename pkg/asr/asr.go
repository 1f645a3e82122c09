// Package asr transcribes prepared WAV audio through AssemblyAI and owns
// the asr.json artifact the pipeline persists between stages.
package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/subtitle-ai/zirnevis/pkg/subtitle"
)

// Word is a transcript token with word-level timestamps in milliseconds.
type Word struct {
	Text    string `json:"text"`
	StartMs int    `json:"start_ms"`
	EndMs   int    `json:"end_ms"`
}

// Transcript is the word-timed ASR result. Its JSON form is written to the
// job workdir as asr.json and read back verbatim when a job resumes.
type Transcript struct {
	Text  string `json:"text"`
	Words []Word `json:"words"`
}

// SubtitleWords converts the transcript tokens for the cue segmenter.
func (t *Transcript) SubtitleWords() []subtitle.Word {
	words := make([]subtitle.Word, 0, len(t.Words))
	for _, w := range t.Words {
		words = append(words, subtitle.Word{Text: w.Text, StartMs: w.StartMs, EndMs: w.EndMs})
	}
	return words
}

// SaveJSON writes the transcript to path.
func (t *Transcript) SaveJSON(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// LoadJSON reads a transcript previously written by SaveJSON.
func LoadJSON(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}
	return &t, nil
}

// Client wraps the AssemblyAI SDK for the transcription stage.
type Client struct {
	client *aai.Client
}

func NewClient(apiKey string) *Client {
	return &Client{client: aai.NewClient(apiKey)}
}

// Transcribe uploads the WAV and blocks until the transcript completes.
// English punctuation and text formatting stay on so the risk classifier
// and segmenter see sentence boundaries; diarization stays off because
// speaker tags would leak into cue text.
func (c *Client) Transcribe(ctx context.Context, wavPath string) (*Transcript, error) {
	f, err := os.Open(wavPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio: %w", err)
	}
	defer f.Close()

	params := &aai.TranscriptOptionalParams{
		Punctuate:     aai.Bool(true),
		FormatText:    aai.Bool(true),
		SpeakerLabels: aai.Bool(false),
		LanguageCode:  "en_us",
	}
	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, f, params)
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}
	if transcript.Status == "error" {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("transcription failed: %s", msg)
	}

	out := &Transcript{Words: make([]Word, 0, len(transcript.Words))}
	if transcript.Text != nil {
		out.Text = *transcript.Text
	}
	for _, w := range transcript.Words {
		word := Word{}
		if w.Text != nil {
			word.Text = *w.Text
		}
		if w.Start != nil {
			word.StartMs = int(*w.Start)
		}
		if w.End != nil {
			word.EndMs = int(*w.End)
		}
		out.Words = append(out.Words, word)
	}
	return out, nil
}
