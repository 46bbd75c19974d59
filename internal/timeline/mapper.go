package timeline

import "time"

// VirtualToSource converts a position on the virtual timeline to the
// corresponding position in the source file. Negative inputs clamp to zero
// and positions at or past the end of the virtual timeline saturate to the
// last segment's end, so callers never fail on boundary rounding.
func (l List) VirtualToSource(virtual time.Duration) time.Duration {
	if virtual < 0 {
		virtual = 0
	}
	if len(l) == 0 {
		return 0
	}
	var accumulated time.Duration
	for _, seg := range l {
		d := seg.Duration()
		if virtual <= accumulated+d {
			return seg.Start + (virtual - accumulated)
		}
		accumulated += d
	}
	return l[len(l)-1].End
}

// SourceToVirtual converts a source-file position to its virtual timeline
// position. Positions inside a deleted gap, before the first segment, or
// after the last segment have no virtual representation; the second return
// value is false for those. A segment's exact end timestamp maps into that
// segment.
func (l List) SourceToVirtual(source time.Duration) (time.Duration, bool) {
	var accumulated time.Duration
	for _, seg := range l {
		if source < seg.Start {
			return 0, false
		}
		if source <= seg.End {
			return accumulated + (source - seg.Start), true
		}
		accumulated += seg.Duration()
	}
	return 0, false
}
