package normalize

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wordbag/internal/stopwords"
	"wordbag/internal/tokenize"
)

// Stemmer reduces a word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// Lemmatizer reduces a word to its dictionary form.
type Lemmatizer interface {
	Lemmatize(word string) string
}

// StemmerFunc adapts a function to the Stemmer interface.
type StemmerFunc func(string) string

func (f StemmerFunc) Stem(word string) string { return f(word) }

// LemmatizerFunc adapts a function to the Lemmatizer interface.
type LemmatizerFunc func(string) string

func (f LemmatizerFunc) Lemmatize(word string) string { return f(word) }

// Stats describes how a document's tokens were filtered.
type Stats struct {
	Tokens           int
	DroppedNonAlpha  int
	DroppedStopwords int
	Kept             int
	Distinct         int
}

// Normalizer applies the fixed normalization pipeline.
type Normalizer struct {
	stopwords  *stopwords.Set
	stemmer    Stemmer
	lemmatizer Lemmatizer
}

// New wires a Normalizer from its collaborators. All three are required.
func New(stop *stopwords.Set, stem Stemmer, lemma Lemmatizer) (*Normalizer, error) {
	if stop == nil || stem == nil || lemma == nil {
		return nil, errors.New("normalizer requires stopwords, stemmer, and lemmatizer")
	}
	return &Normalizer{stopwords: stop, stemmer: stem, lemmatizer: lemma}, nil
}

// Normalize returns the word counts of text.
func (n *Normalizer) Normalize(text string) WordCount {
	counts, _ := n.NormalizeStats(text)
	return counts
}

// NormalizeStats returns the word counts of text along with filter statistics.
func (n *Normalizer) NormalizeStats(text string) (WordCount, Stats) {
	counts := make(WordCount)
	var stats Stats

	// cases.Caser is stateful, so one is built per call.
	folded := cases.Lower(language.Und).String(text)
	for _, token := range tokenize.Words(folded) {
		stats.Tokens++
		if !startsWithLetter(token) {
			stats.DroppedNonAlpha++
			continue
		}
		if n.stopwords.Contains(token) {
			stats.DroppedStopwords++
			continue
		}
		stem := n.stemmer.Stem(token)
		counts[n.lemmatizer.Lemmatize(stem)]++
		stats.Kept++
	}
	stats.Distinct = len(counts)
	return counts, stats
}

func startsWithLetter(token string) bool {
	return token != "" && token[0] >= 'a' && token[0] <= 'z'
}
