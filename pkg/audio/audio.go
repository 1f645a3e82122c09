// Package audio prepares uploaded media for transcription: loudness
// normalization to broadcast levels and resampling to the 16 kHz mono PCM
// WAV the ASR provider expects.
package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Normalizer shells out to ffmpeg-normalize for the audio prep stage.
type Normalizer struct {
	picovoiceAccessKey string
}

func NewNormalizer(picovoiceAccessKey string) *Normalizer {
	return &Normalizer{picovoiceAccessKey: picovoiceAccessKey}
}

// Normalize runs an EBU R128 two-pass loudness normalization over the input
// media and writes a 16 kHz signed 16-bit PCM WAV to outWavPath.
func (n *Normalizer) Normalize(ctx context.Context, inputPath, outWavPath string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg-normalize",
		inputPath,
		"-o", outWavPath,
		"-f",
		"-nt", "ebu",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg-normalize failed: %w (output: %s)", err, tail(string(out), 1024))
	}
	return nil
}

// MaybeVADTrim returns the path of the audio to transcribe. Without a
// Picovoice access key the normalized WAV passes through untrimmed.
// TODO: integrate Picovoice Cobra to cut long silences before ASR.
func (n *Normalizer) MaybeVADTrim(wavPath string) string {
	if n.picovoiceAccessKey == "" {
		return wavPath
	}
	return wavPath
}

func tail(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max:]
}
