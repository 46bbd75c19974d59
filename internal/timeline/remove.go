package timeline

import "time"

// Remove returns a new list with the source interval [start, end) deleted.
// Each existing segment is classified against the removed interval:
// disjoint segments survive unchanged, a segment strictly containing the
// interval splits in two, head or tail overlaps trim the segment, and
// segments covered entirely by the interval are dropped. Relative order is
// preserved and zero-duration segments are never emitted. The receiver is
// left untouched.
func (l List) Remove(start, end time.Duration) List {
	if end <= start {
		return l.Clone()
	}

	out := make(List, 0, len(l)+1)
	for _, seg := range l {
		switch {
		case seg.End <= start || seg.Start >= end:
			// Entirely before or after the removed interval.
			out = append(out, seg)
		case seg.Start < start && seg.End > end:
			// Removed interval strictly inside: split.
			out = append(out, Segment{Start: seg.Start, End: start})
			out = append(out, Segment{Start: end, End: seg.End})
		case seg.Start < start:
			// Tail overlap: keep the head.
			out = append(out, Segment{Start: seg.Start, End: start})
		case seg.End > end:
			// Head overlap: keep the tail.
			out = append(out, Segment{Start: end, End: seg.End})
		default:
			// Covered entirely: dropped.
		}
	}
	return out
}
