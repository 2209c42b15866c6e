// Package stopwords provides the immutable stopword set consulted by the
// document normalizer.
//
// The default list is the NLTK English stopword corpus, embedded at build time
// so a run never depends on a data directory for it. An override list can be
// loaded from disk; a missing override file is treated as a fatal startup
// error rather than silently falling back to the embedded list.
//
// Words are stored lowercase. Callers compare after case folding, so Contains
// performs an exact lookup without further normalization.
package stopwords
