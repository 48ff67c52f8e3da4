package porter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStemBatch(t *testing.T) {
	words := []string{"caresses", "ponies", "café", "cats", "generalization", "is"}
	results := StemBatch(words, 4)
	require.Len(t, results, len(words))

	want := []string{"caress", "poni", "", "cat", "gener", "is"}
	for i, r := range results {
		assert.Equal(t, words[i], r.Word)
		assert.Equal(t, want[i], r.Stem, "result %d", i)
	}
	assert.Contains(t, results[2].Error, ErrInvalidInput.Error())
	assert.Empty(t, results[0].Error)
	assert.True(t, Failed(results))
}

func TestStemBatchEmptyAndDefaults(t *testing.T) {
	assert.Empty(t, StemBatch(nil, 4))

	results := StemBatch([]string{"oscillators"}, 0)
	require.Len(t, results, 1)
	assert.Equal(t, "oscil", results[0].Stem)
	assert.False(t, Failed(results))
}

func TestStemBatchMatchesStem(t *testing.T) {
	words := make([]string, 0, len(stemCases)*4)
	for i := 0; i < 4; i++ {
		for _, tt := range stemCases {
			words = append(words, tt.input)
		}
	}
	for i, r := range StemBatch(words, 8) {
		assert.Equal(t, MustStem(words[i]), r.Stem)
	}
}

func TestStemBatchSingleWorkerDrainsQueue(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = "generalizations"
	}
	words[250] = "naïve"

	results := StemBatch(words, 1)
	require.Len(t, results, len(words))
	for i, r := range results {
		if i == 250 {
			assert.Contains(t, r.Error, ErrInvalidInput.Error())
			continue
		}
		assert.Equal(t, "gener", r.Stem, "result %d", i)
		assert.Equal(t, "generalizations", r.Word)
	}
}
