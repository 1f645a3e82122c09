package risk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPlainShortText(t *testing.T) {
	assert.Equal(t, LevelLow, Classify("A calm conversation about the weather and weekend plans."))
}

func TestClassifyMarkerFamilies(t *testing.T) {
	// Two families (tech + math) reach medium, three reach high.
	medium := "The API returns 42 items per page."
	assert.Equal(t, LevelMedium, Classify(medium))

	high := "The API stores each patient dose of 5 mg per Article 12."
	assert.Equal(t, LevelHigh, Classify(high))
}

func TestClassifyLength(t *testing.T) {
	word := "hello "
	medium := strings.Repeat(word, 9100/len(word)+1)
	assert.Equal(t, LevelMedium, Classify(medium))

	high := strings.Repeat(word, 25100/len(word)+1)
	assert.Equal(t, LevelHigh, Classify(high))
}

func TestClassifyLongSentences(t *testing.T) {
	long := strings.Repeat("word ", 30) + "end. "

	assert.Equal(t, LevelMedium, Classify(strings.Repeat(long, 4)))
	assert.Equal(t, LevelHigh, Classify(strings.Repeat(long, 8)))
}

func TestClassifyMonotone(t *testing.T) {
	rank := map[Level]int{LevelLow: 0, LevelMedium: 1, LevelHigh: 2}

	// Adding marker families to a text never lowers its level.
	base := "Some everyday talk about food."
	additions := []string{
		" The API uses HTTP.",
		" That costs 3 + 4 dollars.",
		" See Article 9 of the Act.",
		" The patient got a 10 mg dose.",
	}

	prev := Classify(base)
	text := base
	for _, add := range additions {
		text += add
		next := Classify(text)
		assert.GreaterOrEqual(t, rank[next], rank[prev], "level dropped after adding %q", add)
		prev = next
	}
}
