// Package persian post-processes Persian text produced by the translator
// and QA agents: speaker-ID stripping, punctuation spacing, digit forms.
package persian

import (
	"regexp"
	"strings"
)

var digitReplacer = strings.NewReplacer(
	"0", "۰",
	"1", "۱",
	"2", "۲",
	"3", "۳",
	"4", "۴",
	"5", "۵",
	"6", "۶",
	"7", "۷",
	"8", "۸",
	"9", "۹",
)

// ToPersianDigits converts ASCII digits to Eastern Arabic (Persian) forms.
func ToPersianDigits(s string) string {
	return digitReplacer.Replace(s)
}

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	punctSpacing = regexp.MustCompile(`\s*([،؛:!؟])\s*`)
	dotSpacing   = regexp.MustCompile(`\s*\.\s*`)
	anyWS        = regexp.MustCompile(`\s+`)
)

// NormalizeSpacing collapses runs of whitespace and places exactly one
// space after sentence punctuation (، ؛ : ! ؟ and the full stop). The
// result carries no leading or trailing whitespace.
func NormalizeSpacing(s string) string {
	s = strings.TrimSpace(horizontalWS.ReplaceAllString(s, " "))
	s = punctSpacing.ReplaceAllString(s, "$1 ")
	s = dotSpacing.ReplaceAllString(s, ". ")
	return strings.TrimSpace(anyWS.ReplaceAllString(s, " "))
}

// Matches prefixes like "Speaker 2: " or "HOST: " regardless of case.
var speakerPrefix = regexp.MustCompile(`(?i)^(speaker\s*\d+|[A-Z][A-Z0-9 _-]{1,30})\s*:\s*`)

// StripSpeakerIDs removes a leading speaker label from a subtitle line.
// Diarization labels must never surface in the output.
func StripSpeakerIDs(s string) string {
	return strings.TrimSpace(speakerPrefix.ReplaceAllString(strings.TrimSpace(s), ""))
}
