// Package tokenize splits raw document text into word tokens.
//
// Tokenization runs in two passes. Sentences first splits text after
// terminal punctuation, keeping abbreviations such as "u.s." or "inc." intact.
// Words then applies Penn Treebank style rules to each sentence: punctuation,
// brackets and quotes become their own tokens, clitics such as "'s" and "n't"
// are separated from their host word, and a handful of fused forms ("cannot",
// "gonna") are split in two. Tokens are finally separated on whitespace, so
// no empty token is ever produced.
//
// The rules are fixed. Downstream vocabulary columns depend on them, so any
// change here changes every matrix built afterwards.
package tokenize
