package subtitle

import (
	"fmt"
	"strings"
)

// ClampNonOverlapping pushes each cue after the end of its predecessor so
// the timeline is strictly monotone: starts and ends increase, end > start,
// no overlaps. minGapMs is the enforced distance between adjacent cues.
func ClampNonOverlapping(cues []Cue, minGapMs int) []Cue {
	out := make([]Cue, 0, len(cues))
	lastEnd := -1
	for _, c := range cues {
		start := c.StartMs
		if floor := lastEnd + minGapMs; start < floor {
			start = floor
		}
		end := c.EndMs
		if floor := start + minGapMs; end < floor {
			end = floor
		}
		out = append(out, Cue{Index: c.Index, StartMs: start, EndMs: end, Text: c.Text})
		lastEnd = end
	}
	return out
}

// BuildSRT renders cues as an SRT document: index line, time range line,
// text, blank separator. UTF-8 throughout.
func BuildSRT(cues []Cue) string {
	var b strings.Builder
	for _, c := range cues {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			c.Index, formatTimestamp(c.StartMs), formatTimestamp(c.EndMs), strings.TrimSpace(c.Text))
	}
	return b.String()
}

// formatTimestamp renders HH:MM:SS,mmm. Hours grow past two digits for
// inputs beyond 99h rather than wrapping.
func formatTimestamp(ms int) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / 3_600_000
	m := ms % 3_600_000 / 60_000
	s := ms % 60_000 / 1000
	rem := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, rem)
}
