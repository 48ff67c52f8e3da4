package porter

// Each step takes ownership of body and returns the buffer the next step
// consumes. Steps never fail and accept words of any length.

// step1a handles plurals.
func step1a(body []byte) []byte {
	if hasSuffix(body, "sses") || hasSuffix(body, "ies") {
		return body[:len(body)-2]
	} else if hasSuffix(body, "ss") {
		return body
	} else if hasSuffix(body, "s") {
		return body[:len(body)-1]
	}
	return body
}

// step1b handles -eed, -ed and -ing.
func step1b(body []byte) []byte {
	if hasSuffix(body, "eed") {
		if MeasureLimit(body, len(body)-3) > 0 {
			return body[:len(body)-1]
		}
	} else if hasSuffix(body, "ed") {
		if HasVowelLimit(body, len(body)-2) {
			return step1bResolve(body[:len(body)-2])
		}
	} else if hasSuffix(body, "ing") {
		if HasVowelLimit(body, len(body)-3) {
			return step1bResolve(body[:len(body)-3])
		}
	}
	return body
}

// step1bResolve tidies a stem that just lost -ed or -ing.
func step1bResolve(body []byte) []byte {
	size := len(body)
	if hasSuffix(body, "at") || hasSuffix(body, "bl") || hasSuffix(body, "iz") {
		return append(body, 'e')
	} else if doubleConsonant(body) {
		switch body[size-1] {
		case 'l', 's', 'z':
			return body
		}
		return body[:size-1]
	} else if Measure(body) == 1 && cvc(body) {
		return append(body, 'e')
	}
	return body
}

// step1c turns a terminal y into i when the stem has a vowel.
func step1c(body []byte) []byte {
	size := len(body)
	if hasSuffix(body, "y") && HasVowelLimit(body, size-1) {
		body[size-1] = 'i'
	}
	return body
}

func step2(body []byte) []byte {
	return applyRules(body, step2Rules, measureAbove(0))
}

func step3(body []byte) []byte {
	return applyRules(body, step3Rules, measureAbove(0))
}

func step4(body []byte) []byte {
	return applyRules(body, step4Rules, measureAbove(1))
}

// step5a removes a final e.
func step5a(body []byte) []byte {
	if !hasSuffix(body, "e") {
		return body
	}
	stem := body[:len(body)-1]
	m := Measure(stem)
	if m > 1 || (m == 1 && !cvc(stem)) {
		return stem
	}
	return body
}

// step5b drops a final l that follows another consonant when the rest of
// the word has m > 1, so -ll becomes -l.
func step5b(body []byte) []byte {
	size := len(body)
	if hasSuffix(body, "l") && consonantAt(body, size-1) && consonantAt(body, size) && MeasureLimit(body, size-1) > 1 {
		return body[:size-1]
	}
	return body
}
