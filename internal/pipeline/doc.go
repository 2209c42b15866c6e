// Package pipeline turns a corpus of quarterly statements into a bag-of-words
// matrix.
//
// A Pipeline owns one Normalizer and walks the requested periods in
// chronological order. Documents may be normalized by several workers, but
// their word counts are merged into the Aggregator strictly in period order,
// so the row order and first-seen column order never depend on scheduling.
// Any failure (a missing document, a duplicate period under the error policy,
// or cancellation) aborts the run before a matrix is produced.
//
// Build wires a Pipeline from configuration, writes the finished matrix with
// the export package, and publishes run metrics.
package pipeline
