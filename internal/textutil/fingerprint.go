package textutil

import (
	"math"
	"sort"
)

// Fingerprint represents a term-frequency vector for text similarity comparison.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// Term is one weighted entry of a fingerprint.
type Term struct {
	Token  string
	Weight float64
}

// NewFingerprint creates a fingerprint from token counts. Non-positive counts
// are ignored. Returns nil if no token has a positive count.
func NewFingerprint(counts map[string]int) *Fingerprint {
	weights := make(map[string]float64, len(counts))
	var norm float64
	for token, count := range counts {
		if count <= 0 {
			continue
		}
		w := float64(count)
		weights[token] = w
		norm += w * w
	}
	if len(weights) == 0 {
		return nil
	}
	return &Fingerprint{
		tokens: weights,
		norm:   math.Sqrt(norm),
	}
}

// TokenCount returns the number of unique tokens in the fingerprint.
func (f *Fingerprint) TokenCount() int {
	if f == nil {
		return 0
	}
	return len(f.tokens)
}

// Weight returns the weight of token, zero when absent.
func (f *Fingerprint) Weight(token string) float64 {
	if f == nil {
		return 0
	}
	return f.tokens[token]
}

// Top returns the n heaviest terms, ties broken by token. n <= 0 returns all.
func (f *Fingerprint) Top(n int) []Term {
	if f == nil {
		return nil
	}
	terms := make([]Term, 0, len(f.tokens))
	for token, w := range f.tokens {
		terms = append(terms, Term{Token: token, Weight: w})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		return terms[i].Token < terms[j].Token
	})
	if n > 0 && n < len(terms) {
		terms = terms[:n]
	}
	return terms
}

// WithIDF returns a new Fingerprint with TF-IDF weights applied.
// Each term's count is multiplied by its IDF weight. The norm is recomputed.
// Terms absent from the IDF map retain their original weight.
func (f *Fingerprint) WithIDF(idf map[string]float64) *Fingerprint {
	if f == nil || len(idf) == 0 {
		return f
	}
	weighted := make(map[string]float64, len(f.tokens))
	var norm float64
	for token, count := range f.tokens {
		w := count
		if idfVal, ok := idf[token]; ok {
			w *= idfVal
		}
		if w == 0 {
			continue
		}
		weighted[token] = w
		norm += w * w
	}
	if len(weighted) == 0 {
		return nil
	}
	return &Fingerprint{
		tokens: weighted,
		norm:   math.Sqrt(norm),
	}
}

// Corpus collects document frequency statistics for IDF computation.
type Corpus struct {
	docCount int
	docFreq  map[string]int
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{docFreq: make(map[string]int)}
}

// Add registers a fingerprint's unique terms in the corpus. A nil fingerprint
// still counts as a document.
func (c *Corpus) Add(fp *Fingerprint) {
	if c == nil {
		return
	}
	c.docCount++
	if fp == nil {
		return
	}
	for token := range fp.tokens {
		c.docFreq[token]++
	}
}

// Len returns the number of documents added.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return c.docCount
}

// IDF computes inverse document frequency weights: log((N+1)/(1+df)) for each term.
func (c *Corpus) IDF() map[string]float64 {
	if c == nil || c.docCount == 0 {
		return nil
	}
	idf := make(map[string]float64, len(c.docFreq))
	n := float64(c.docCount)
	for term, df := range c.docFreq {
		idf[term] = math.Log((n + 1) / (1 + float64(df)))
	}
	return idf
}
