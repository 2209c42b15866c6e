// Package preflight provides readiness checks for the filesystem paths and
// lexical resources a build depends on.
//
// The CLI "wordbag check" command prints every result, and "wordbag build"
// runs the same checks first so a run with a missing dictionary or document
// fails before any normalization work starts.
package preflight
