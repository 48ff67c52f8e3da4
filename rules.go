package porter

// rule rewrites suffix to replacement. cond, when set, is checked in
// addition to the stage gate against the stem that precedes the suffix.
type rule struct {
	suffix      string
	replacement string
	cond        func(word []byte, stem int) bool
}

// gate decides whether the first stem bytes of word may lose their suffix.
type gate func(word []byte, stem int) bool

func measureAbove(m int) gate {
	return func(word []byte, stem int) bool {
		return MeasureLimit(word, stem) > m
	}
}

// Rule tables are keyed by the penultimate letter of the word, which is the
// distinguishing letter of every suffix in the bucket. Order within a bucket
// is the order of the published algorithm.
var step2Rules = map[byte][]rule{
	'a': {
		{suffix: "ational", replacement: "ate"},
		{suffix: "tional", replacement: "tion"},
	},
	'c': {
		{suffix: "enci", replacement: "ence"},
		{suffix: "anci", replacement: "ance"},
	},
	'e': {
		{suffix: "izer", replacement: "ize"},
	},
	'l': {
		{suffix: "abli", replacement: "able"},
		{suffix: "alli", replacement: "al"},
		{suffix: "entli", replacement: "ent"},
		{suffix: "ousli", replacement: "ous"},
		{suffix: "eli", replacement: "e"},
	},
	'o': {
		{suffix: "ization", replacement: "ize"},
		{suffix: "ation", replacement: "ate"},
		{suffix: "ator", replacement: "ate"},
	},
	's': {
		{suffix: "alism", replacement: "al"},
		{suffix: "iveness", replacement: "ive"},
		{suffix: "fulness", replacement: "ful"},
		{suffix: "ousness", replacement: "ous"},
	},
	't': {
		{suffix: "aliti", replacement: "al"},
		{suffix: "iviti", replacement: "ive"},
		{suffix: "biliti", replacement: "ble"},
	},
}

var step3Rules = map[byte][]rule{
	'a': {
		{suffix: "ical", replacement: "ic"},
	},
	's': {
		{suffix: "ness"},
	},
	't': {
		{suffix: "icate", replacement: "ic"},
		{suffix: "iciti", replacement: "ic"},
	},
	'u': {
		{suffix: "ful"},
	},
	'v': {
		{suffix: "ative"},
	},
	'z': {
		{suffix: "alize", replacement: "al"},
	},
}

var step4Rules = map[byte][]rule{
	'a': {{suffix: "al"}},
	'c': {{suffix: "ance"}, {suffix: "ence"}},
	'e': {{suffix: "er"}},
	'i': {{suffix: "ic"}},
	'l': {{suffix: "able"}, {suffix: "ible"}},
	'n': {{suffix: "ant"}, {suffix: "ement"}, {suffix: "ment"}, {suffix: "ent"}},
	'o': {{suffix: "ion", cond: precededBySOrT}},
	's': {{suffix: "ism"}},
	't': {{suffix: "ate"}, {suffix: "iti"}},
	'u': {{suffix: "ous"}},
	'v': {{suffix: "ive"}},
	'z': {{suffix: "ize"}},
}

func precededBySOrT(word []byte, stem int) bool {
	switch charAt(word, stem) {
	case 's', 't':
		return true
	}
	return false
}

// applyRules rewrites word with the first rule of its bucket whose suffix
// matches and whose gate passes. At most one rule fires.
func applyRules(word []byte, rules map[byte][]rule, pass gate) []byte {
	n := len(word)
	if n < 2 {
		return word
	}
	for _, r := range rules[word[n-2]] {
		if !hasSuffix(word, r.suffix) {
			continue
		}
		stem := n - len(r.suffix)
		if !pass(word, stem) {
			continue
		}
		if r.cond != nil && !r.cond(word, stem) {
			continue
		}
		return append(word[:stem], r.replacement...)
	}
	return word
}

func hasSuffix(body []byte, suffix string) bool {
	size := len(body)
	if size < len(suffix) {
		return false
	}
	for i := 0; i < len(suffix); i++ {
		if body[size-i-1] != suffix[len(suffix)-i-1] {
			return false
		}
	}
	return true
}
