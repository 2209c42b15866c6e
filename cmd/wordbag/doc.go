// Package main hosts the wordbag CLI entrypoint and command graph.
//
// The Cobra-based command tree builds the quarterly bag-of-words matrix,
// inspects single documents and finished matrices, runs preflight checks, and
// scaffolds configuration. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on presentation.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
