// Package project persists editing projects in SQLite.
//
// A project records a source file, its probed duration, the current
// timeline, and both history stacks, so an edit session survives across
// CLI invocations. Timelines are stored as JSON arrays of second-based
// segments and re-validated on load; a row that fails validation is
// reported as corrupt rather than silently accepted.
//
// Schema changes bump the version in schema.go; users clear the database
// to adopt the new schema.
package project
