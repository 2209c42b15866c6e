// Package textutil compares period vectors drawn from a bag-of-words matrix.
//
// A Fingerprint is a sparse term-frequency vector with its Euclidean norm
// precomputed. Fingerprints can be re-weighted with inverse document
// frequencies collected by a Corpus, compared with CosineSimilarity, and
// queried for their heaviest terms. The summary report uses these to measure
// how much the vocabulary of consecutive statements drifts.
package textutil
