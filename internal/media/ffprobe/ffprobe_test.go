package ffprobe

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	result := Result{Format: Format{Duration: "123.456789"}}
	got, err := result.Duration()
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if want := 123456789 * time.Microsecond; got != want {
		t.Fatalf("duration = %s, want %s", got, want)
	}
}

func TestDurationRejectsBadValues(t *testing.T) {
	for _, raw := range []string{"", "bad", "-5", "0", "NaN"} {
		result := Result{Format: Format{Duration: raw}}
		if _, err := result.Duration(); err == nil {
			t.Fatalf("duration %q: expected error", raw)
		}
	}
}

func TestVideoStreamCount(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video"},
			{CodecType: "audio"},
			{CodecType: "audio"},
		},
	}
	if result.VideoStreamCount() != 1 {
		t.Fatalf("expected 1 video stream, got %d", result.VideoStreamCount())
	}
}
