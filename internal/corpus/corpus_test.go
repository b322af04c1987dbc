package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextsAreDistinct(t *testing.T) {
	texts := Texts()
	require.Len(t, texts, 4)
	seen := map[string]bool{}
	for _, text := range texts {
		assert.False(t, seen[text], "duplicate paragraph %q", text)
		seen[text] = true
	}
}

func TestTextsReturnsCopy(t *testing.T) {
	texts := Texts()
	texts[0] = "changed"
	assert.NotEqual(t, "changed", Texts()[0])
}

func TestNewWithTextsDropsDuplicatesAndEmpty(t *testing.T) {
	p := NewWithTexts(1, []string{"a", "", "b", "a", "b"})
	assert.Equal(t, 2, p.Len())
}

func TestPickCoversAllTexts(t *testing.T) {
	p := New(42)
	hits := map[string]int{}
	for i := 0; i < 400; i++ {
		hits[p.Pick()]++
	}
	require.Len(t, hits, len(Texts()))
	for text, n := range hits {
		assert.Greater(t, n, 40, "paragraph %q picked too rarely", text)
	}
}

func TestPickSameSeedSameSequence(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Pick(), b.Pick())
	}
}

func TestPickEmpty(t *testing.T) {
	p := NewWithTexts(1, nil)
	assert.Equal(t, "", p.Pick())
}
