package tokenize

import (
	"regexp"
	"strings"
)

type rule struct {
	pattern *regexp.Regexp
	repl    string
}

func (r rule) apply(text string) string {
	return r.pattern.ReplaceAllString(text, r.repl)
}

var startingQuotes = []rule{
	{regexp.MustCompile("([«“‘„]|[`]+)"), " $1 "},
	{regexp.MustCompile(`^"`), "``"},
	{regexp.MustCompile("(``)"), " $1 "},
	{regexp.MustCompile(`([ (\[{<])("|'{2})`), "$1 `` "},
}

// quoteLetter matches a quote glued to a one-letter word; clitic letters are
// filtered out in splitQuotedLetter.
var quoteLetter = regexp.MustCompile(`'\w\b`)

var punctuation = []rule{
	{regexp.MustCompile(`([^.])(\.)([\])}>"']*)\s*$`), "$1 $2 $3 "},
	{regexp.MustCompile(`([:,])([^\d])`), " $1 $2"},
	{regexp.MustCompile(`([:,])$`), " $1 "},
	{regexp.MustCompile(`\.{2,}`), " $0 "},
	{regexp.MustCompile(`[;@#$%&]`), " $0 "},
	{regexp.MustCompile(`([^.])(\.)([\])}>"']*)\s*$`), "$1 $2$3 "},
	{regexp.MustCompile(`[?!]`), " $0 "},
	{regexp.MustCompile(`([^'])' `), "$1 ' "},
	{regexp.MustCompile(`[*]`), " $0 "},
}

var (
	parensBrackets = rule{regexp.MustCompile(`[\]\[(){}<>]`), " $0 "}
	doubleDashes   = rule{regexp.MustCompile(`--`), " -- "}
)

var endingQuotes = []rule{
	{regexp.MustCompile(`([»”’])`), " $1 "},
	{regexp.MustCompile(`''`), " '' "},
	{regexp.MustCompile(`"`), " '' "},
	{regexp.MustCompile(`([^' ])('[sS]|'[mM]|'[dD]|') `), "$1 $2 "},
	{regexp.MustCompile(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `), "$1 $2 "},
}

var contractions = []rule{
	{regexp.MustCompile(`(?i)\b(can)(not)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(d)('ye)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(gim)(me)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(gon)(na)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(got)(ta)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(lem)(me)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(more)('n)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(wan)(na)(\s)`), " $1 $2 $3"},
	{regexp.MustCompile(`(?i) ('t)(is)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i) ('t)(was)\b`), " $1 $2 "},
}

// Words tokenizes text into word and punctuation tokens.
func Words(text string) []string {
	var tokens []string
	for _, sentence := range Sentences(text) {
		tokens = append(tokens, treebank(sentence)...)
	}
	return tokens
}

func treebank(text string) []string {
	for _, r := range startingQuotes {
		text = r.apply(text)
	}
	text = quoteLetter.ReplaceAllStringFunc(text, splitQuotedLetter)
	for _, r := range punctuation {
		text = r.apply(text)
	}
	text = parensBrackets.apply(text)
	text = doubleDashes.apply(text)

	text = " " + text + " "
	for _, r := range endingQuotes {
		text = r.apply(text)
	}
	for _, r := range contractions {
		text = r.apply(text)
	}
	return strings.Fields(text)
}

func splitQuotedLetter(match string) string {
	switch strings.ToLower(match[1:]) {
	case "m", "t", "s", "d", "n":
		return match
	}
	return "' " + match[1:]
}
