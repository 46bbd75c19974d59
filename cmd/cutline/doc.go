// Package main hosts the cutline CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into project
// store operations, timeline edits, and ffmpeg export runs. It centralizes
// configuration resolution, file locking, and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
