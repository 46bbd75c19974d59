package timeline

import "errors"

var (
	// ErrInvalidDuration reports a non-positive total duration at initialization.
	ErrInvalidDuration = errors.New("timeline: total duration must be positive")
	// ErrInvalidRange reports a delete range whose start is not before its end.
	ErrInvalidRange = errors.New("timeline: range start must be before range end")
	// ErrOutOfBounds reports a delete range extending past the virtual timeline.
	ErrOutOfBounds = errors.New("timeline: range exceeds total duration")
	// ErrInvalidTimeline reports a segment list that violates the ordering,
	// overlap, or positive-duration invariants. Deserialized timelines that
	// fail validation are rejected, never repaired.
	ErrInvalidTimeline = errors.New("timeline: invalid segment list")
)
