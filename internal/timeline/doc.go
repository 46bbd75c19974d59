// Package timeline models the virtual timeline of a non-destructive edit
// session as an ordered list of kept source-time segments.
//
// A List is always sorted, non-overlapping, and free of zero-duration
// segments; Remove applies a delete-range edit by classifying each segment
// against the removed source interval, and the mapping helpers convert
// between virtual (post-edit) positions and source-file positions.
//
// Nothing in this package performs I/O; callers own locking and persistence.
package timeline
