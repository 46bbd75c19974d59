package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseTimecode accepts "SS", "MM:SS", or "HH:MM:SS", each with an optional
// fractional-second suffix, and returns the position as a duration.
func parseTimecode(value string) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("empty timecode")
	}
	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid timecode %q", value)
	}

	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("invalid timecode %q", value)
	}
	if len(parts) > 1 && seconds >= 60 {
		return 0, fmt.Errorf("invalid timecode %q: seconds must be below 60", value)
	}

	total := seconds
	multiplier := 60.0
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid timecode %q", value)
		}
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("invalid timecode %q: minutes must be below 60", value)
		}
		total += float64(n) * multiplier
		multiplier *= 60
	}

	return time.Duration(total * float64(time.Second)).Round(time.Millisecond), nil
}

// formatTimecode renders a duration as HH:MM:SS.mmm for table output.
func formatTimecode(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Millisecond)
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	millis := (d - seconds*time.Second) / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func shortUUID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
