package timeline

import (
	"fmt"
	"time"
)

// Segment is one continuous kept interval of source time.
// End is always greater than Start.
type Segment struct {
	Start time.Duration
	End   time.Duration
}

// Duration returns the length of the segment.
func (s Segment) Duration() time.Duration {
	return s.End - s.Start
}

// Contains reports whether t falls within the segment. Both endpoints are
// inclusive in the source model.
func (s Segment) Contains(t time.Duration) bool {
	return t >= s.Start && t <= s.End
}

// List is an ordered sequence of kept segments forming the virtual timeline.
type List []Segment

// NewList builds the initial timeline for a source of the given total
// duration: a single segment covering the whole file.
func NewList(total time.Duration) (List, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidDuration, total)
	}
	return List{{Start: 0, End: total}}, nil
}

// TotalDuration returns the virtual timeline length, the sum of all kept
// segment durations.
func (l List) TotalDuration() time.Duration {
	var total time.Duration
	for _, seg := range l {
		total += seg.Duration()
	}
	return total
}

// Clone returns an independently owned deep copy of the list. Mutating the
// original is never observable through the copy.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Equal reports whether two lists hold identical segments in the same order.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// Validate re-checks the structural invariants: every segment has positive
// duration, segments are sorted ascending by start, and adjacent segments do
// not overlap. It is applied to every deserialized timeline before acceptance.
func (l List) Validate() error {
	for i, seg := range l {
		if seg.Duration() <= 0 {
			return fmt.Errorf("%w: segment %d has non-positive duration (%s, %s)", ErrInvalidTimeline, i, seg.Start, seg.End)
		}
		if seg.Start < 0 {
			return fmt.Errorf("%w: segment %d starts before zero (%s)", ErrInvalidTimeline, i, seg.Start)
		}
		if i > 0 && l[i-1].End > seg.Start {
			return fmt.Errorf("%w: segments %d and %d overlap or are unsorted", ErrInvalidTimeline, i-1, i)
		}
	}
	return nil
}
