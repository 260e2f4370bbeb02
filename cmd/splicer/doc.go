// Package main hosts the splicer CLI entrypoint and command graph.
//
// The Cobra-based command tree reads word-level SRT transcripts, diffs edited
// text against them, calibrates inserted words into the surrounding timing,
// and writes the result back out. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: the timing semantics live in the internal packages,
// and commands here only parse arguments, load files, and render output.
package main
