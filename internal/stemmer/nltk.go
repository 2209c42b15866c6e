package stemmer

// rule replaces suffix with replacement when cond accepts the remaining stem.
// A nil cond always accepts. The first rule whose suffix matches ends the
// step, whether or not cond accepts.
type rule struct {
	suffix      string
	replacement string
	cond        func(stem []rune) bool
}

func nltkStem(w []rune) []rune {
	w = step1a(w)
	w = step1b(w)
	w = step1c(w)
	w = step2(w)
	w = step3(w)
	w = step4(w)
	w = step5a(w)
	return step5b(w)
}

// consonants reports, per position, whether w[i] is a consonant. y is a
// consonant at the start of a word or after a vowel.
func consonants(w []rune) []bool {
	out := make([]bool, len(w))
	for i, r := range w {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			out[i] = false
		case 'y':
			out[i] = i == 0 || !out[i-1]
		default:
			out[i] = true
		}
	}
	return out
}

func isConsonant(w []rune, i int) bool {
	return consonants(w[:i+1])[i]
}

// measure counts vowel-consonant sequences: m in [C](VC)^m[V].
func measure(w []rune) int {
	flags := consonants(w)
	m := 0
	for i := 1; i < len(flags); i++ {
		if flags[i] && !flags[i-1] {
			m++
		}
	}
	return m
}

func positiveMeasure(stem []rune) bool { return measure(stem) > 0 }

func measureAboveOne(stem []rune) bool { return measure(stem) > 1 }

func containsVowel(w []rune) bool {
	for _, c := range consonants(w) {
		if !c {
			return true
		}
	}
	return false
}

func endsDoubleConsonant(w []rune) bool {
	n := len(w)
	return n >= 2 && w[n-1] == w[n-2] && isConsonant(w, n-1)
}

// endsCVC also accepts a two letter vowel-consonant word.
func endsCVC(w []rune) bool {
	n := len(w)
	if n >= 3 {
		flags := consonants(w)
		last := w[n-1]
		if flags[n-3] && !flags[n-2] && flags[n-1] && last != 'w' && last != 'x' && last != 'y' {
			return true
		}
	}
	if n == 2 {
		flags := consonants(w)
		return !flags[0] && flags[1]
	}
	return false
}

func hasSuffix(w []rune, suffix string) bool {
	if len(w) < len(suffix) {
		return false
	}
	tail := w[len(w)-len(suffix):]
	for i := 0; i < len(suffix); i++ {
		if tail[i] != rune(suffix[i]) {
			return false
		}
	}
	return true
}

// trim drops the last n runes. The result has no spare capacity, so
// appending to it never writes into w.
func trim(w []rune, n int) []rune {
	end := len(w) - n
	return w[:end:end]
}

func replaceSuffix(w []rune, suffix, replacement string) []rune {
	stem := trim(w, len(suffix))
	out := make([]rune, 0, len(stem)+len(replacement))
	out = append(out, stem...)
	for i := 0; i < len(replacement); i++ {
		out = append(out, rune(replacement[i]))
	}
	return out
}

func applyRules(w []rune, rules []rule) []rune {
	for _, r := range rules {
		if !hasSuffix(w, r.suffix) {
			continue
		}
		stem := trim(w, len(r.suffix))
		if r.cond == nil || r.cond(stem) {
			return replaceSuffix(w, r.suffix, r.replacement)
		}
		return w
	}
	return w
}

var step1aRules = []rule{
	{"sses", "ss", nil},
	{"ies", "i", nil},
	{"ss", "ss", nil},
	{"s", "", nil},
}

func step1a(w []rune) []rune {
	if len(w) == 4 && hasSuffix(w, "ies") {
		return replaceSuffix(w, "ies", "ie")
	}
	return applyRules(w, step1aRules)
}

func step1b(w []rune) []rune {
	if hasSuffix(w, "ied") {
		if len(w) == 4 {
			return replaceSuffix(w, "ied", "ie")
		}
		return replaceSuffix(w, "ied", "i")
	}

	if hasSuffix(w, "eed") {
		if positiveMeasure(trim(w, 3)) {
			return replaceSuffix(w, "eed", "ee")
		}
		return w
	}

	var stem []rune
	found := false
	for _, suffix := range []string{"ed", "ing"} {
		if hasSuffix(w, suffix) {
			if s := trim(w, len(suffix)); containsVowel(s) {
				stem, found = s, true
				break
			}
		}
	}
	if !found {
		return w
	}

	switch {
	case hasSuffix(stem, "at"):
		return replaceSuffix(stem, "at", "ate")
	case hasSuffix(stem, "bl"):
		return replaceSuffix(stem, "bl", "ble")
	case hasSuffix(stem, "iz"):
		return replaceSuffix(stem, "iz", "ize")
	case endsDoubleConsonant(stem):
		switch stem[len(stem)-1] {
		case 'l', 's', 'z':
			return stem
		}
		return trim(stem, 1)
	case measure(stem) == 1 && endsCVC(stem):
		return replaceSuffix(stem, "", "e")
	}
	return stem
}

func step1c(w []rune) []rune {
	return applyRules(w, []rule{{"y", "i", func(stem []rune) bool {
		return len(stem) > 1 && isConsonant(stem, len(stem)-1)
	}}})
}

var step2Rules = []rule{
	{"ational", "ate", positiveMeasure},
	{"tional", "tion", positiveMeasure},
	{"enci", "ence", positiveMeasure},
	{"anci", "ance", positiveMeasure},
	{"izer", "ize", positiveMeasure},
	{"bli", "ble", positiveMeasure},
	{"alli", "al", positiveMeasure},
	{"entli", "ent", positiveMeasure},
	{"eli", "e", positiveMeasure},
	{"ousli", "ous", positiveMeasure},
	{"ization", "ize", positiveMeasure},
	{"ation", "ate", positiveMeasure},
	{"ator", "ate", positiveMeasure},
	{"alism", "al", positiveMeasure},
	{"iveness", "ive", positiveMeasure},
	{"fulness", "ful", positiveMeasure},
	{"ousness", "ous", positiveMeasure},
	{"aliti", "al", positiveMeasure},
	{"iviti", "ive", positiveMeasure},
	{"biliti", "ble", positiveMeasure},
	{"fulli", "ful", positiveMeasure},
	{"lessli", "less", positiveMeasure},
}

func step2(w []rune) []rune {
	// alli runs first and the result goes through the step again.
	if hasSuffix(w, "alli") && positiveMeasure(trim(w, 4)) {
		return step2(replaceSuffix(w, "alli", "al"))
	}
	// logi keeps its l with the stem so short stems such as geo qualify.
	if hasSuffix(w, "logi") {
		if positiveMeasure(trim(w, 3)) {
			return replaceSuffix(w, "logi", "log")
		}
		return w
	}
	return applyRules(w, step2Rules)
}

var step3Rules = []rule{
	{"icate", "ic", positiveMeasure},
	{"ative", "", positiveMeasure},
	{"alize", "al", positiveMeasure},
	{"iciti", "ic", positiveMeasure},
	{"ical", "ic", positiveMeasure},
	{"ful", "", positiveMeasure},
	{"ness", "", positiveMeasure},
}

func step3(w []rune) []rune {
	return applyRules(w, step3Rules)
}

var step4Rules = []rule{
	{"al", "", measureAboveOne},
	{"ance", "", measureAboveOne},
	{"ence", "", measureAboveOne},
	{"er", "", measureAboveOne},
	{"ic", "", measureAboveOne},
	{"able", "", measureAboveOne},
	{"ible", "", measureAboveOne},
	{"ant", "", measureAboveOne},
	{"ement", "", measureAboveOne},
	{"ment", "", measureAboveOne},
	{"ent", "", measureAboveOne},
	{"ion", "", func(stem []rune) bool {
		if !measureAboveOne(stem) {
			return false
		}
		last := stem[len(stem)-1]
		return last == 's' || last == 't'
	}},
	{"ou", "", measureAboveOne},
	{"ism", "", measureAboveOne},
	{"ate", "", measureAboveOne},
	{"iti", "", measureAboveOne},
	{"ous", "", measureAboveOne},
	{"ive", "", measureAboveOne},
	{"ize", "", measureAboveOne},
}

func step4(w []rune) []rune {
	return applyRules(w, step4Rules)
}

func step5a(w []rune) []rune {
	if !hasSuffix(w, "e") {
		return w
	}
	stem := trim(w, 1)
	m := measure(stem)
	if m > 1 || (m == 1 && !endsCVC(stem)) {
		return stem
	}
	return w
}

func step5b(w []rune) []rune {
	if hasSuffix(w, "ll") && measureAboveOne(trim(w, 1)) {
		return trim(w, 1)
	}
	return w
}
