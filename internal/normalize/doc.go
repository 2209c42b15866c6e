// Package normalize turns raw document text into a table of normalized word
// counts.
//
// The pipeline is fixed and its order matters:
//
//  1. case fold the whole text
//  2. tokenize into words and punctuation
//  3. drop every token whose first byte is not a lowercase ASCII letter
//  4. drop stopwords
//  5. stem
//  6. lemmatize the stem as a noun
//  7. count identical results
//
// Lemmatizing an already stemmed token is frequently a no-op. The two stages
// are still both applied so that vocabularies stay comparable with matrices
// produced by earlier runs.
//
// A Normalizer holds only read-only collaborators and may be shared by
// goroutines normalizing different documents.
package normalize
