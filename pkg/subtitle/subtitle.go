// Package subtitle turns word-timed transcripts into subtitle cues and
// emits SRT files with a monotone, non-overlapping timeline.
package subtitle

// Word is a transcript token with word-level timestamps.
type Word struct {
	Text    string
	StartMs int
	EndMs   int
}

// Segment is a timed text span produced by the segmenter, before cue
// indices are assigned.
type Segment struct {
	StartMs int
	EndMs   int
	Text    string
}

// Cue is an indexed segment as it appears in an SRT file.
type Cue struct {
	Index   int
	StartMs int
	EndMs   int
	Text    string
}

// SegmenterConfig bounds cue duration and text length.
type SegmenterConfig struct {
	MaxLines        int
	MaxCharsPerLine int
	MinCueMs        int
	MaxCueMs        int
}
