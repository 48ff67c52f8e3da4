package porter

// A consonant is a letter other than a, e, i, o or u, and other than y
// preceded by a vowel. Classification needs exactly one byte of look-behind.
// The zero byte stands for "no character" at either position.
func Consonant(cur, prev byte) bool {
	switch cur {
	case 0:
		return false
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		switch prev {
		case 'a', 'e', 'i', 'o', 'u':
			return true
		}
		return false
	}
	return true
}

// Vowel reports whether a present byte classifies as a vowel.
func Vowel(cur, prev byte) bool {
	return cur != 0 && !Consonant(cur, prev)
}

// charAt returns the byte at the 1-based position pos, or 0 when pos is 0
// or past the end of the word.
func charAt(word []byte, pos int) byte {
	if pos <= 0 || pos > len(word) {
		return 0
	}
	return word[pos-1]
}

// consonantAt classifies the byte at 1-based position pos in its context.
func consonantAt(word []byte, pos int) bool {
	return Consonant(charAt(word, pos), charAt(word, pos-1))
}

func HasVowel(word []byte) bool {
	return HasVowelLimit(word, len(word))
}

// HasVowelLimit reports whether any of the first limit bytes of word is a vowel.
func HasVowelLimit(word []byte, limit int) bool {
	if limit > len(word) {
		limit = len(word)
	}
	var prev byte
	for i := 0; i < limit; i++ {
		if Vowel(word[i], prev) {
			return true
		}
		prev = word[i]
	}
	return false
}

func Measure(word []byte) int {
	return MeasureLimit(word, len(word))
}

const (
	vowelState = iota
	consonantState
)

// MeasureLimit counts the VC transitions in [C](VC)^m[V] over the first limit
// bytes of word. Consonants before the first vowel are not counted.
func MeasureLimit(word []byte, limit int) int {
	if limit > len(word) {
		limit = len(word)
	}
	measure := 0
	started := false
	state := vowelState
	var prev byte
	for i := 0; i < limit; i++ {
		cur := word[i]
		consonant := Consonant(cur, prev)
		prev = cur
		if !started {
			started = !consonant
			continue
		}
		if consonant && state == vowelState {
			state = consonantState
			measure++
		} else if !consonant && state == consonantState {
			state = vowelState
		}
	}
	return measure
}

// doubleConsonant reports whether word ends in two identical consonants.
func doubleConsonant(word []byte) bool {
	n := len(word)
	if n < 2 || word[n-1] != word[n-2] {
		return false
	}
	return consonantAt(word, n)
}

// cvc reports whether word ends consonant-vowel-consonant where the final
// consonant is not w, x or y. Words shorter than three bytes never match.
func cvc(word []byte) bool {
	n := len(word)
	if n < 3 {
		return false
	}
	if !consonantAt(word, n) || consonantAt(word, n-1) || !consonantAt(word, n-2) {
		return false
	}
	switch word[n-1] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}
