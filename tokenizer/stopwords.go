package tokenizer

type StopWords map[string]struct{}

var stopWords = map[Language]StopWords{
	ENGLISH: newStopWords(
		"a", "an", "and", "are", "as", "at", "be", "but", "by", "for", "from",
		"has", "have", "had", "he", "her", "his", "how", "i", "in", "is", "it",
		"its", "of", "on", "or", "she", "that", "the", "their", "them", "they",
		"this", "to", "was", "we", "were", "what", "when", "where", "which",
		"who", "why", "will", "with", "you", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "no", "nor", "not",
		"only", "own", "same", "so", "than", "too", "very",
	),
}

func newStopWords(words ...string) StopWords {
	sw := make(StopWords, len(words))
	for _, word := range words {
		sw[word] = struct{}{}
	}
	return sw
}

// IsStopWord reports whether the lowercase token is a stop-word in language.
func IsStopWord(language Language, token string) bool {
	_, ok := stopWords[language][token]
	return ok
}
