package tokenize

import (
	"regexp"
	"strings"
)

var wordSpan = regexp.MustCompile(`\S+`)

// abbreviations end in a period without ending a sentence. Entries that are
// also ordinary words (no, est, fig) are left out.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "jr": {}, "sr": {}, "st": {},
	"inc": {}, "corp": {}, "co": {}, "ltd": {}, "plc": {}, "bros": {},
	"vs": {}, "etc": {}, "approx": {}, "dept": {}, "govt": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {}, "aug": {},
	"sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

const closers = `"')]}»”’`

// Sentences splits text into sentences. Whitespace between sentences is
// dropped; text inside a sentence is returned unchanged.
func Sentences(text string) []string {
	spans := wordSpan.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return nil
	}
	var sentences []string
	start := spans[0][0]
	for i, span := range spans {
		if !endsSentence(text[span[0]:span[1]]) {
			continue
		}
		sentences = append(sentences, text[start:span[1]])
		if i+1 < len(spans) {
			start = spans[i+1][0]
		} else {
			start = -1
		}
	}
	if start >= 0 {
		last := spans[len(spans)-1]
		sentences = append(sentences, text[start:last[1]])
	}
	return sentences
}

func endsSentence(word string) bool {
	trimmed := strings.TrimRight(word, closers)
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '?', '!':
		return true
	case '.':
	default:
		return false
	}
	core := strings.TrimLeft(strings.TrimSuffix(trimmed, "."), `"'([{«“‘`)
	if strings.Trim(core, ".") == "" {
		return false
	}
	return !isAbbreviation(core)
}

func isAbbreviation(core string) bool {
	if strings.Contains(core, ".") {
		return true
	}
	if len(core) == 1 && isLetter(core[0]) {
		return true
	}
	_, ok := abbreviations[strings.ToLower(core)]
	return ok
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
