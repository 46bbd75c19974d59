package timeline_test

import (
	"errors"
	"testing"
	"time"

	"cutline/internal/timeline"
)

func sec(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

func TestNewListCoversWholeSource(t *testing.T) {
	list, err := timeline.NewList(100 * time.Second)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one segment, got %d", len(list))
	}
	if list[0].Start != 0 || list[0].End != 100*time.Second {
		t.Fatalf("unexpected initial segment: %+v", list[0])
	}
	if list.TotalDuration() != 100*time.Second {
		t.Fatalf("expected total 100s, got %s", list.TotalDuration())
	}
}

func TestNewListRejectsNonPositiveDuration(t *testing.T) {
	for _, total := range []time.Duration{0, -time.Second} {
		if _, err := timeline.NewList(total); !errors.Is(err, timeline.ErrInvalidDuration) {
			t.Fatalf("total %s: expected ErrInvalidDuration, got %v", total, err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	list := timeline.List{{Start: 0, End: 10 * time.Second}, {Start: 20 * time.Second, End: 30 * time.Second}}
	snapshot := list.Clone()

	list[0].End = 5 * time.Second
	if snapshot[0].End != 10*time.Second {
		t.Fatalf("mutation of the live list leaked into the snapshot: %+v", snapshot[0])
	}
	if !snapshot.Equal(timeline.List{{Start: 0, End: 10 * time.Second}, {Start: 20 * time.Second, End: 30 * time.Second}}) {
		t.Fatalf("snapshot changed: %+v", snapshot)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		list timeline.List
		ok   bool
	}{
		{"empty", timeline.List{}, true},
		{"single", timeline.List{{Start: 0, End: sec(10)}}, true},
		{"sorted gap", timeline.List{{Start: 0, End: sec(10)}, {Start: sec(20), End: sec(30)}}, true},
		{"touching", timeline.List{{Start: 0, End: sec(10)}, {Start: sec(10), End: sec(30)}}, true},
		{"zero duration", timeline.List{{Start: sec(5), End: sec(5)}}, false},
		{"negative duration", timeline.List{{Start: sec(5), End: sec(4)}}, false},
		{"negative start", timeline.List{{Start: -sec(1), End: sec(4)}}, false},
		{"overlap", timeline.List{{Start: 0, End: sec(15)}, {Start: sec(10), End: sec(30)}}, false},
		{"unsorted", timeline.List{{Start: sec(20), End: sec(30)}, {Start: 0, End: sec(10)}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.list.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok {
				if !errors.Is(err, timeline.ErrInvalidTimeline) {
					t.Fatalf("expected ErrInvalidTimeline, got %v", err)
				}
			}
		})
	}
}

func TestSegmentContainsIsInclusive(t *testing.T) {
	seg := timeline.Segment{Start: sec(10), End: sec(20)}
	for _, tc := range []struct {
		point time.Duration
		want  bool
	}{
		{sec(10), true},
		{sec(20), true},
		{sec(15), true},
		{sec(9.999), false},
		{sec(20.001), false},
	} {
		if got := seg.Contains(tc.point); got != tc.want {
			t.Fatalf("Contains(%s) = %v, want %v", tc.point, got, tc.want)
		}
	}
}
