package timeline_test

import (
	"testing"
	"time"

	"cutline/internal/timeline"
)

var gapped = timeline.List{
	{Start: sec(0), End: sec(10)},
	{Start: sec(20), End: sec(100)},
}

func TestVirtualToSource(t *testing.T) {
	cases := []struct {
		name    string
		virtual time.Duration
		want    time.Duration
	}{
		{"negative clamps to zero", -sec(5), sec(0)},
		{"start", sec(0), sec(0)},
		{"inside first segment", sec(5), sec(5)},
		{"first segment end boundary", sec(10), sec(10)},
		{"just past the gap", sec(10) + time.Millisecond, sec(20) + time.Millisecond},
		{"inside second segment", sec(50), sec(60)},
		{"total duration saturates", sec(90), sec(100)},
		{"past total saturates", sec(500), sec(100)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gapped.VirtualToSource(tc.virtual); got != tc.want {
				t.Fatalf("VirtualToSource(%s) = %s, want %s", tc.virtual, got, tc.want)
			}
		})
	}
}

func TestVirtualToSourceEmptyList(t *testing.T) {
	var empty timeline.List
	if got := empty.VirtualToSource(sec(5)); got != 0 {
		t.Fatalf("expected zero for empty list, got %s", got)
	}
}

func TestVirtualToSourceMonotonic(t *testing.T) {
	prev := time.Duration(-1)
	for v := -sec(2); v <= sec(95); v += 500 * time.Millisecond {
		got := gapped.VirtualToSource(v)
		if got < prev {
			t.Fatalf("not monotonic: VirtualToSource(%s) = %s < previous %s", v, got, prev)
		}
		prev = got
	}
}

func TestSourceToVirtual(t *testing.T) {
	cases := []struct {
		name   string
		source time.Duration
		want   time.Duration
		mapped bool
	}{
		{"start of first segment", sec(0), sec(0), true},
		{"inside first segment", sec(5), sec(5), true},
		{"first segment end inclusive", sec(10), sec(10), true},
		{"inside deleted gap", sec(15), 0, false},
		{"start of second segment", sec(20), sec(10), true},
		{"inside second segment", sec(60), sec(50), true},
		{"last segment end inclusive", sec(100), sec(90), true},
		{"past all segments", sec(120), 0, false},
		{"before first segment", -sec(1), 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := gapped.SourceToVirtual(tc.source)
			if ok != tc.mapped {
				t.Fatalf("SourceToVirtual(%s) mapped = %v, want %v", tc.source, ok, tc.mapped)
			}
			if ok && got != tc.want {
				t.Fatalf("SourceToVirtual(%s) = %s, want %s", tc.source, got, tc.want)
			}
		})
	}
}

func TestRoundTripInsideKeptRegions(t *testing.T) {
	for v := 250 * time.Millisecond; v < sec(90); v += 1250 * time.Millisecond {
		src := gapped.VirtualToSource(v)
		back, ok := gapped.SourceToVirtual(src)
		if !ok {
			t.Fatalf("round trip lost mapping at virtual %s (source %s)", v, src)
		}
		if back != v {
			t.Fatalf("round trip drift: %s -> %s -> %s", v, src, back)
		}
	}
}
