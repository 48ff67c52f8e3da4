package tokenizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/porter/janitor"
)

func TestTokenize(t *testing.T) {
	full := &Config{EnableStemming: true, EnableStopWords: true}
	tests := []struct {
		name   string
		params TokenizeParams
		config *Config
		want   []string
	}{
		{
			name:   "empty",
			params: TokenizeParams{Text: ""},
			config: full,
			want:   []string{},
		},
		{
			name:   "stop words dropped and tokens stemmed",
			params: TokenizeParams{Text: "The ponies were running, and the cats caresses!"},
			config: full,
			want:   []string{"poni", "run", "cat", "caress"},
		},
		{
			name:   "duplicates removed by default",
			params: TokenizeParams{Text: "cats cat CATS"},
			config: full,
			want:   []string{"cat"},
		},
		{
			name:   "duplicates kept on request",
			params: TokenizeParams{Text: "cats cat", AllowDuplicates: true},
			config: full,
			want:   []string{"cat", "cat"},
		},
		{
			name:   "diacritics folded before stemming",
			params: TokenizeParams{Text: "Café résumés"},
			config: full,
			want:   []string{"cafe", "resum"},
		},
		{
			name:   "possessives stripped",
			params: TokenizeParams{Text: "the generalization's oscillators'"},
			config: full,
			want:   []string{"gener", "oscil"},
		},
		{
			name:   "non-ascii tokens kept unstemmed",
			params: TokenizeParams{Text: "日本 running"},
			config: full,
			want:   []string{"日本", "run"},
		},
		{
			name:   "stemming disabled",
			params: TokenizeParams{Text: "the running cats"},
			config: &Config{EnableStopWords: true},
			want:   []string{"running", "cats"},
		},
		{
			name:   "nil config keeps every token",
			params: TokenizeParams{Text: "the cats"},
			config: nil,
			want:   []string{"the", "cats"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			got, err := Tokenize(&params, tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeUnsupportedLanguage(t *testing.T) {
	_, err := Tokenize(&TokenizeParams{Text: "hola", Language: "es"}, &Config{})
	assert.ErrorIs(t, err, ErrLanguageNotSupported)
	assert.False(t, IsSupportedLanguage("es"))
	assert.True(t, IsSupportedLanguage(ENGLISH))
}

func TestTokenizeCustomStemmer(t *testing.T) {
	shout := func(s string) (string, error) { return s + "!", nil }
	got, err := Tokenize(&TokenizeParams{Text: "cats"}, &Config{EnableStemming: true, Stemmer: shout})
	require.NoError(t, err)
	assert.Equal(t, []string{"cats!"}, got)
}

func TestTrimPossessive(t *testing.T) {
	assert.Equal(t, "cat", trimPossessive("cat's"))
	assert.Equal(t, "cats", trimPossessive("cats'"))
	assert.Equal(t, "cat", trimPossessive("'cat'"))
	assert.Equal(t, "", trimPossessive("'"))
}

func TestCachedStemmer(t *testing.T) {
	calls := 0
	counting := func(s string) (string, error) {
		calls++
		if s == "bad" {
			return "", errors.New("bad word")
		}
		return s[:1], nil
	}
	c := NewCachedStemmer(2, counting)

	for i := 0; i < 3; i++ {
		got, err := c.Stem("running")
		require.NoError(t, err)
		assert.Equal(t, "r", got)
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())

	_, err := c.Stem("bad")
	assert.Error(t, err)
	_, err = c.Stem("bad")
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, c.Len())

	assert.Equal(t, 1, c.Purge())
	assert.Equal(t, 0, c.Len())
}

func TestCachedStemmerEvictionsAndForget(t *testing.T) {
	c := NewCachedStemmer(2, nil)
	for _, w := range []string{"cats", "ponies", "running"} {
		_, err := c.Stem(w)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(1), c.Evictions())

	require.NoError(t, c.Forget("running"))
	assert.ErrorIs(t, c.Forget("running"), janitor.ErrKeyNotFound)
	assert.ErrorIs(t, c.Forget("cats"), janitor.ErrKeyNotFound)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(1), c.Evictions())
}

func TestCachedStemmerDefaultsToPorter(t *testing.T) {
	c := NewCachedStemmer(8, nil)
	got, err := c.Stem("generalization")
	require.NoError(t, err)
	assert.Equal(t, "gener", got)
}
