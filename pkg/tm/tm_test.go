package tm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeForHash(t *testing.T) {
	assert.Equal(t, "start docker container", NormalizeForHash("  Start   Docker\tcontainer "))
	assert.Equal(t, "", NormalizeForHash("   "))
}

func TestEnHashStableAcrossWhitespaceAndCase(t *testing.T) {
	a := EnHash("Start Docker container")
	b := EnHash("  start   docker CONTAINER ")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, EnHash("Stop Docker container"))
}

func TestCompositeConfidenceIdentity(t *testing.T) {
	// Identical strings, equal number lists, perfect similarity.
	conf := CompositeConfidence("Use port 8080", "Use port 8080", 1.0)
	assert.InDelta(t, 1.0, conf, 1e-9)
}

func TestCompositeConfidenceNumberMismatchCostsExactlyTenth(t *testing.T) {
	match := CompositeConfidence("Use port 8080", "Use port 8080", 0.9)
	mismatch := CompositeConfidence("Use port 8080", "Use port 9090", 0.9)
	assert.InDelta(t, 0.10, match-mismatch, 1e-9)
}

func TestCompositeConfidenceBounds(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		sim  float64
	}{
		{"empty left", "", "text", 1.0},
		{"empty right", "text", "  ", 1.0},
		{"oversized sim clamps", "same", "same", 1.5},
		{"negative sim clamps", "same", "same", -2.0},
		{"short vs long", "a", "a very much longer candidate text", 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conf := CompositeConfidence(tc.a, tc.b, tc.sim)
			assert.GreaterOrEqual(t, conf, 0.0)
			assert.LessOrEqual(t, conf, 1.0)
		})
	}
}

func TestCompositeConfidenceOrderedNumbers(t *testing.T) {
	// Same multiset, different order: not a match.
	reordered := CompositeConfidence("from 1 to 2", "from 2 to 1", 1.0)
	same := CompositeConfidence("from 1 to 2", "from 1 to 2", 1.0)
	assert.InDelta(t, 0.10, same-reordered, 1e-9)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	// Opposite vectors clamp to 0 rather than going negative.
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	theta := math.Acos(0.95)
	b := []float32{float32(math.Cos(theta)), float32(math.Sin(theta))}
	assert.InDelta(t, 0.95, CosineSimilarity([]float32{1, 0}, b), 1e-6)
}

func TestCosineSimilarityDegenerate(t *testing.T) {
	assert.Zero(t, CosineSimilarity(nil, nil))
	assert.Zero(t, CosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
}
