package project

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"cutline/internal/timeline"
)

// Project is a persisted editing session for one source file.
type Project struct {
	ID         int64
	UUID       string
	Title      string
	SourcePath string
	Duration   time.Duration
	Timeline   timeline.List
	Undo       []timeline.List
	Redo       []timeline.List
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// segmentJSON is the wire form of a segment; times are seconds so the
// stored rows stay readable alongside ffmpeg arguments.
type segmentJSON struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(math.Round(sec*1e6)) * time.Microsecond
}

func encodeList(list timeline.List) (string, error) {
	segments := make([]segmentJSON, 0, len(list))
	for _, seg := range list {
		segments = append(segments, segmentJSON{Start: seg.Start.Seconds(), End: seg.End.Seconds()})
	}
	data, err := json.Marshal(segments)
	if err != nil {
		return "", fmt.Errorf("marshal timeline: %w", err)
	}
	return string(data), nil
}

func decodeList(raw string) (timeline.List, error) {
	if raw == "" {
		return timeline.List{}, nil
	}
	var segments []segmentJSON
	if err := json.Unmarshal([]byte(raw), &segments); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTimeline, err)
	}
	list := make(timeline.List, 0, len(segments))
	for _, seg := range segments {
		list = append(list, timeline.Segment{
			Start: secondsToDuration(seg.Start),
			End:   secondsToDuration(seg.End),
		})
	}
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTimeline, err)
	}
	return list, nil
}

func encodeStack(stack []timeline.List) (string, error) {
	lists := make([][]segmentJSON, 0, len(stack))
	for _, list := range stack {
		segments := make([]segmentJSON, 0, len(list))
		for _, seg := range list {
			segments = append(segments, segmentJSON{Start: seg.Start.Seconds(), End: seg.End.Seconds()})
		}
		lists = append(lists, segments)
	}
	data, err := json.Marshal(lists)
	if err != nil {
		return "", fmt.Errorf("marshal history stack: %w", err)
	}
	return string(data), nil
}

func decodeStack(raw string) ([]timeline.List, error) {
	if raw == "" {
		return nil, nil
	}
	var lists [][]segmentJSON
	if err := json.Unmarshal([]byte(raw), &lists); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTimeline, err)
	}
	stack := make([]timeline.List, 0, len(lists))
	for _, segments := range lists {
		list := make(timeline.List, 0, len(segments))
		for _, seg := range segments {
			list = append(list, timeline.Segment{
				Start: secondsToDuration(seg.Start),
				End:   secondsToDuration(seg.End),
			})
		}
		if err := list.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptTimeline, err)
		}
		stack = append(stack, list)
	}
	return stack, nil
}
