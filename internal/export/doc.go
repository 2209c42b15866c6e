// Package export writes a finalized matrix to disk and reads it back.
//
// Two formats are supported. CSV is the reference layout: a header of the
// index label followed by every token, then one row per period. SQLite stores
// the same dense matrix as a flat cell table alongside period and token
// dimension tables. Both writers publish atomically under an exclusive lock on
// <path>.lock, so a failed run never leaves a partial table behind.
package export
