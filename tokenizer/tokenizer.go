package tokenizer

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/oarkflow/porter/lib"
)

const (
	ENGLISH Language = "en"
)

var Languages = []Language{ENGLISH}

var (
	ErrLanguageNotSupported = errors.New("language not supported")
)

type Language string

type Config struct {
	EnableStemming  bool
	EnableStopWords bool
	// Stemmer replaces the language's default stemmer when set.
	Stemmer Stem
}

type TokenizeParams struct {
	Text            string
	Language        Language
	AllowDuplicates bool
}

type normalizeParams struct {
	token    string
	language Language
}

var separators = map[byte]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\r': true,
	'.':  true,
	',':  true,
	';':  true,
	':':  true,
	'!':  true,
	'?':  true,
	'-':  true,
	'"':  true,
	'(':  true,
	')':  true,
	'[':  true,
	']':  true,
	'/':  true,
}

func IsSupportedLanguage(language Language) bool {
	_, ok := stems[language]
	return ok
}

// newNormalizer strips combining marks so "résumé" folds to "resume".
// A transformer keeps state, so each call builds its own.
func newNormalizer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func foldDiacritics(text string) string {
	folded, _, err := transform.String(newNormalizer(), text)
	if err != nil {
		return text
	}
	return folded
}

func splitSentence(text string) []string {
	var words []string
	start := 0

	for i := 0; i < len(text); i++ {
		if isSeparator(text[i]) {
			if start < i {
				words = append(words, text[start:i])
			}
			start = i + 1
		}
	}

	if start < len(text) {
		words = append(words, text[start:])
	}

	return words
}

func isSeparator(char byte) bool {
	_, ok := separators[char]
	return ok
}

// trimPossessive strips apostrophes and a possessive "'s".
func trimPossessive(token string) string {
	for _, suffix := range []string{"'s'", "'s", "'"} {
		if strings.HasSuffix(token, suffix) {
			token = token[:len(token)-len(suffix)]
			break
		}
	}
	return strings.Trim(token, "'")
}

// Tokenize splits text into normalised tokens. Tokens that are still
// non-ASCII after diacritic folding are kept but never stemmed.
func Tokenize(params *TokenizeParams, config *Config) ([]string, error) {
	language := params.Language
	if language == "" {
		language = ENGLISH
	}
	if !IsSupportedLanguage(language) {
		return nil, ErrLanguageNotSupported
	}
	if config == nil {
		config = &Config{}
	}
	text := foldDiacritics(strings.ToLower(params.Text))
	splitText := splitSentence(text)
	tokens := make([]string, 0, len(splitText))
	for _, token := range splitText {
		normParams := normalizeParams{
			token:    token,
			language: language,
		}
		if normToken := normalizeToken(&normParams, config); normToken != "" {
			tokens = append(tokens, normToken)
		}
	}
	if !params.AllowDuplicates {
		tokens = lib.Unique(tokens)
	}
	return tokens, nil
}

func normalizeToken(params *normalizeParams, config *Config) string {
	token := trimPossessive(params.token)
	if token == "" {
		return ""
	}
	if config.EnableStopWords && IsStopWord(params.language, token) {
		return ""
	}
	if !config.EnableStemming {
		return token
	}
	stem := config.Stemmer
	if stem == nil {
		stem = stems[params.language]
	}
	if stemmed, err := stem(token); err == nil {
		token = stemmed
	}
	return token
}
