package subtitle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() SegmenterConfig {
	return SegmenterConfig{
		MaxLines:        2,
		MaxCharsPerLine: 42,
		MinCueMs:        900,
		MaxCueMs:        6500,
	}
}

func TestSegmentWordsBreaksOnPause(t *testing.T) {
	words := []Word{
		{Text: "Hello", StartMs: 0, EndMs: 400},
		{Text: "world.", StartMs: 420, EndMs: 900},
		{Text: "Next", StartMs: 1400, EndMs: 1700},
		{Text: "sentence.", StartMs: 1720, EndMs: 2200},
	}

	segments := SegmentWords(words, defaultConfig())
	require.Len(t, segments, 2)

	assert.Equal(t, Segment{StartMs: 0, EndMs: 900, Text: "Hello world."}, segments[0])
	assert.Equal(t, Segment{StartMs: 1400, EndMs: 2200, Text: "Next sentence."}, segments[1])
}

func TestSegmentWordsIgnoresPauseBeforeMinDuration(t *testing.T) {
	// Same pause, but the running cue is still shorter than MinCueMs, so
	// the words stay together.
	words := []Word{
		{Text: "Quick", StartMs: 0, EndMs: 300},
		{Text: "pause", StartMs: 800, EndMs: 1100},
	}

	segments := SegmentWords(words, defaultConfig())
	require.Len(t, segments, 1)
	assert.Equal(t, "Quick pause", segments[0].Text)
}

func TestSegmentWordsForceClosesAtMaxChars(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxCharsPerLine = 10 // 2 lines x 10 chars

	var words []Word
	for i := 0; i < 8; i++ {
		words = append(words, Word{Text: "abcdef", StartMs: i * 300, EndMs: i*300 + 250})
	}

	segments := SegmentWords(words, cfg)
	require.Greater(t, len(segments), 1)
	for _, s := range segments {
		assert.LessOrEqual(t, len(s.Text), cfg.MaxLines*cfg.MaxCharsPerLine+6,
			"cue text should stay near the character budget")
	}
}

func TestSegmentWordsForceClosesAtMaxDuration(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxCueMs = 2000

	words := []Word{
		{Text: "one", StartMs: 0, EndMs: 700},
		{Text: "two", StartMs: 750, EndMs: 1400},
		{Text: "three", StartMs: 1450, EndMs: 2100},
		{Text: "four", StartMs: 2150, EndMs: 2800},
	}

	segments := SegmentWords(words, cfg)
	require.Len(t, segments, 2)
	assert.Equal(t, "one two three", segments[0].Text)
	assert.Equal(t, "four", segments[1].Text)
	assert.Equal(t, segments[0].EndMs, segments[1].StartMs)
}

func TestSegmentWordsEmpty(t *testing.T) {
	assert.Nil(t, SegmentWords(nil, defaultConfig()))
}

func TestSegmentTextFallback(t *testing.T) {
	segments := SegmentText("First sentence here. Second one! Third?")
	require.Len(t, segments, 3)

	assert.Equal(t, "First sentence here.", segments[0].Text)
	assert.Equal(t, "Second one!", segments[1].Text)
	assert.Equal(t, "Third?", segments[2].Text)

	// Contiguous from t=0, estimated durations never below the floor.
	assert.Equal(t, 0, segments[0].StartMs)
	for i, s := range segments {
		assert.GreaterOrEqual(t, s.EndMs-s.StartMs, 1200)
		if i > 0 {
			assert.Equal(t, segments[i-1].EndMs, s.StartMs)
		}
	}
}

func TestSegmentTextEmpty(t *testing.T) {
	assert.Nil(t, SegmentText("   "))
}

func TestClampNonOverlapping(t *testing.T) {
	cues := []Cue{
		{Index: 1, StartMs: 0, EndMs: 1000, Text: "a"},
		{Index: 2, StartMs: 900, EndMs: 1100, Text: "b"},  // overlaps predecessor
		{Index: 3, StartMs: 1100, EndMs: 1100, Text: "c"}, // zero duration
	}

	out := ClampNonOverlapping(cues, 1)
	require.Len(t, out, 3)

	lastEnd := -1
	for _, c := range out {
		assert.Greater(t, c.StartMs, lastEnd, "starts must advance past the previous end")
		assert.Greater(t, c.EndMs, c.StartMs, "every cue must have positive duration")
		lastEnd = c.EndMs
	}
}

func TestBuildSRTFormat(t *testing.T) {
	srt := BuildSRT([]Cue{
		{Index: 1, StartMs: 0, EndMs: 900, Text: "Hello world."},
		{Index: 2, StartMs: 1400, EndMs: 2200, Text: "سلام دنیا"},
	})

	want := "1\n00:00:00,000 --> 00:00:00,900\nHello world.\n\n" +
		"2\n00:00:01,400 --> 00:00:02,200\nسلام دنیا\n\n"
	assert.Equal(t, want, srt)
}

func TestBuildSRTLongTimestamps(t *testing.T) {
	srt := BuildSRT([]Cue{
		{Index: 1, StartMs: 3_600_000 + 61_500, EndMs: 3_600_000 + 62_750, Text: "x"},
	})
	assert.True(t, strings.Contains(srt, "01:01:01,500 --> 01:01:02,750"), srt)
}
