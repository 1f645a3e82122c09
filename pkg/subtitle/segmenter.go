package subtitle

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// A silence longer than this between words is a candidate break point.
	pauseBreakMs = 450
	// Every cue is kept on screen at least this long.
	minDisplayMs = 200

	// Fallback path: estimated reading time per token and its floor.
	fallbackMsPerToken = 150
	fallbackMinCueMs   = 1200
)

// SegmentWords builds cues from word-timed ASR output. Breaks happen on
// pauses > 450 ms once the cue has reached MinCueMs; a cue is force-closed
// at MaxCueMs or when the joined text reaches MaxLines*MaxCharsPerLine.
func SegmentWords(words []Word, cfg SegmenterConfig) []Segment {
	if len(words) == 0 {
		return nil
	}
	maxChars := cfg.MaxLines * cfg.MaxCharsPerLine

	var cues []Segment
	var buf []string
	joinedLen := 0
	cueStart := words[0].StartMs
	lastEnd := words[0].EndMs

	flush := func(endMs int) {
		if len(buf) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(buf, " "))
		if text != "" {
			cues = append(cues, Segment{StartMs: cueStart, EndMs: endMs, Text: text})
		}
		buf = buf[:0]
		joinedLen = 0
	}

	for _, w := range words {
		t := strings.TrimSpace(w.Text)
		if t == "" {
			continue
		}
		start := w.StartMs
		end := w.EndMs
		pause := start - lastEnd

		if len(buf) > 0 && pause > pauseBreakMs && lastEnd-cueStart >= cfg.MinCueMs {
			flush(lastEnd)
			cueStart = start
		}

		if len(buf) > 0 {
			joinedLen++
		}
		joinedLen += utf8.RuneCountInString(t)
		buf = append(buf, t)
		lastEnd = end

		if lastEnd-cueStart >= cfg.MaxCueMs {
			flush(lastEnd)
			cueStart = lastEnd
		}
		if len(buf) > 0 && joinedLen >= maxChars {
			flush(lastEnd)
			cueStart = lastEnd
		}
	}
	flush(lastEnd)

	fixed := make([]Segment, 0, len(cues))
	for _, c := range cues {
		end := c.EndMs
		if min := c.StartMs + minDisplayMs; end < min {
			end = min
		}
		fixed = append(fixed, Segment{StartMs: c.StartMs, EndMs: end, Text: c.Text})
	}
	return fixed
}

// Sentence boundaries: whitespace immediately following .!? is the split
// point; the punctuation stays with its sentence.
var sentenceBoundary = regexp.MustCompile(`([.!?])\s+`)

// SegmentText is the fallback for transcripts without word timings. Each
// sentence becomes a cue whose duration is estimated from its token count,
// laid out contiguously from t=0.
func SegmentText(transcript string) []Segment {
	text := strings.TrimSpace(transcript)
	if text == "" {
		return nil
	}

	marked := sentenceBoundary.ReplaceAllString(text, "${1}\x00")

	var cues []Segment
	t := 0
	for _, part := range strings.Split(marked, "\x00") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens := len(strings.Fields(part))
		if tokens < 1 {
			tokens = 1
		}
		est := fallbackMsPerToken * tokens
		if est < fallbackMinCueMs {
			est = fallbackMinCueMs
		}
		cues = append(cues, Segment{StartMs: t, EndMs: t + est, Text: part})
		t += est
	}
	return cues
}
