package project

import "errors"

var (
	// ErrNotFound indicates no project matched the given reference.
	ErrNotFound = errors.New("project not found")
	// ErrAmbiguousRef indicates a reference matched more than one project.
	ErrAmbiguousRef = errors.New("project reference is ambiguous")
	// ErrCorruptTimeline indicates stored timeline data failed validation.
	ErrCorruptTimeline = errors.New("stored timeline is corrupt")
)
