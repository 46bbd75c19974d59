// Package exportplan compiles the final timeline into the ordered trim plan
// handed to the external transcode engine.
//
// Compilation is pure and read-only: one clip per kept segment, in timeline
// order, with the timeline's own time precision. The planner never touches a
// decoder or encoder; turning the plan into a concrete trim+concatenate
// operation is the transcode engine's job.
package exportplan

import (
	"errors"
	"time"

	"cutline/internal/timeline"
)

// ErrEmptyTimeline reports an export attempted against a timeline with no
// kept segments.
var ErrEmptyTimeline = errors.New("exportplan: timeline has no segments to export")

// Clip is one source trim range.
type Clip struct {
	Start time.Duration
	End   time.Duration
}

// Duration returns the clip length.
func (c Clip) Duration() time.Duration {
	return c.End - c.Start
}

// Plan is the declarative trim/concatenate description for one export.
type Plan struct {
	SourcePath string
	Clips      []Clip
}

// Compile derives a plan from the timeline: one clip per surviving segment,
// preserving order and exact timestamps. Fails with ErrEmptyTimeline when
// there is nothing to export.
func Compile(sourcePath string, list timeline.List) (Plan, error) {
	if len(list) == 0 {
		return Plan{}, ErrEmptyTimeline
	}
	clips := make([]Clip, len(list))
	for i, seg := range list {
		clips[i] = Clip{Start: seg.Start, End: seg.End}
	}
	return Plan{SourcePath: sourcePath, Clips: clips}, nil
}

// SegmentCount returns the number of clips in the plan.
func (p Plan) SegmentCount() int {
	return len(p.Clips)
}

// TotalDuration returns the output duration the plan describes.
func (p Plan) TotalDuration() time.Duration {
	var total time.Duration
	for _, clip := range p.Clips {
		total += clip.Duration()
	}
	return total
}
