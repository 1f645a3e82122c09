// Package risk classifies transcript difficulty into coarse levels that
// steer strategist model selection.
package risk

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Level is the coarse source-difficulty classification.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Marker families. A family counts once no matter how often it matches.
var (
	techMarkers  = regexp.MustCompile(`(?i)\b(API|HTTP|SQL|Docker|Kubernetes|TLS|DNS|VLAN|OAuth|JWT|GPU|RAM|CPU|CLI|Regex)\b`)
	mathMarkers  = regexp.MustCompile(`[=+\-*/]|(\b\d+(\.\d+)?\b)`)
	legalMarkers = regexp.MustCompile(`(?i)[§¶]|(\bAct\b|\bRegulation\b|\bArticle\b)`)
	medMarkers   = regexp.MustCompile(`(?i)\b(mg|ml|ICD|dose|diagnosis|patient)\b`)

	markerFamilies = []*regexp.Regexp{techMarkers, mathMarkers, legalMarkers, medMarkers}

	sentenceSplit = regexp.MustCompile(`[.!?]\s+`)
)

// Classify maps a transcript sample to a risk level. Raising any single
// input (length, marker families, long sentences) never lowers the result.
func Classify(text string) Level {
	length := utf8.RuneCountInString(text)

	longSent := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		if len(strings.Fields(s)) >= 25 {
			longSent++
		}
	}

	markers := 0
	for _, re := range markerFamilies {
		if re.MatchString(text) {
			markers++
		}
	}

	switch {
	case length > 25000 || markers >= 3 || longSent >= 8:
		return LevelHigh
	case length > 9000 || markers >= 2 || longSent >= 4:
		return LevelMedium
	default:
		return LevelLow
	}
}
