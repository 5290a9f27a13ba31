// Package main hosts the avmark CLI entrypoint and command graph.
//
// The Cobra-based command tree reads manifest, caption, and target inputs
// from files or stdin, runs them through the internal parsers, and renders
// the results as tables or JSON. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
