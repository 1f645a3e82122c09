// Package tm implements the Translation Memory gating logic: English-text
// hashing for exact dedup, composite reuse confidence over recalled
// candidates, and the auto-reuse / judge / translate decision.
package tm

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"regexp"
	"strings"
)

var (
	wsRun      = regexp.MustCompile(`\s+`)
	numLiteral = regexp.MustCompile(`\d+(\.\d+)?`)
)

// NormalizeForHash trims, lower-cases, and collapses whitespace so that
// cosmetic variants of a sentence hash identically.
func NormalizeForHash(s string) string {
	return wsRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// EnHash returns the hex SHA-256 of the normalized English text. TM
// promotion dedups on this value.
func EnHash(s string) string {
	sum := sha256.Sum256([]byte(NormalizeForHash(s)))
	return hex.EncodeToString(sum[:])
}

// CompositeConfidence scores candidate reuse in [0,1]:
// 0.75·sim + 0.15·len_ratio + 0.10·num_match, where len_ratio compares
// character counts and num_match requires the ordered numeric literals of
// both texts to be identical. Empty text on either side scores 0.
func CompositeConfidence(enText, candEn string, sim float64) float64 {
	a := strings.TrimSpace(enText)
	b := strings.TrimSpace(candEn)
	if a == "" || b == "" {
		return 0
	}

	lenA, lenB := float64(len(a)), float64(len(b))
	lenRatio := math.Min(lenA, lenB) / math.Max(lenA, lenB)

	numMatch := 0.0
	if numbersEqual(numLiteral.FindAllString(a, -1), numLiteral.FindAllString(b, -1)) {
		numMatch = 1.0
	}

	conf := 0.75*sim + 0.15*lenRatio + 0.10*numMatch
	return math.Max(0, math.Min(1, conf))
}

func numbersEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CosineSimilarity computes the cosine of the angle between two vectors,
// clamped to [0,1]. Mismatched or zero-magnitude inputs score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, sim))
}
