// Package config loads, normalizes, and validates wordbag configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// WORDBAG_WORDNET_DIR and NLTK_DATA. The Config type centralizes every knob the
// build pipeline and CLI need so the corpus range, lexical resources, and output
// target are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical enum values, and clear validation errors.
package config
