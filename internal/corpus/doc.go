// Package corpus enumerates the quarterly periods of a statement collection and
// reads the document text for each one.
//
// A Period is identified by its key (1994Q1). Periods returns the chronological
// sequence the build pipeline walks, and a Source resolves each key to its raw
// text. DirSource reads one file per period from a directory; MapSource serves
// documents from memory. A missing document is fatal and is reported through
// ErrResourceMissing.
package corpus
