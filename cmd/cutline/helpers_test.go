package main

import (
	"testing"
	"time"
)

func TestParseTimecode(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"0", 0},
		{"5", 5 * time.Second},
		{"90", 90 * time.Second},
		{"12.5", 12500 * time.Millisecond},
		{"1:30", 90 * time.Second},
		{"0:05", 5 * time.Second},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"1:02:03.250", time.Hour + 2*time.Minute + 3*time.Second + 250*time.Millisecond},
		{" 10 ", 10 * time.Second},
	}
	for _, tc := range cases {
		got, err := parseTimecode(tc.in)
		if err != nil {
			t.Fatalf("parseTimecode(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseTimecode(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseTimecodeRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"-5",
		"1:-2",
		"1:60",
		"1:99:00",
		"1:02:60",
		"1:2:3:4",
		"::",
	}
	for _, in := range cases {
		if _, err := parseTimecode(in); err == nil {
			t.Fatalf("parseTimecode(%q) succeeded, want error", in)
		}
	}
}

func TestFormatTimecode(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00.000"},
		{-time.Second, "00:00:00.000"},
		{90 * time.Second, "00:01:30.000"},
		{time.Hour + 2*time.Minute + 3*time.Second + 250*time.Millisecond, "01:02:03.250"},
	}
	for _, tc := range cases {
		if got := formatTimecode(tc.in); got != tc.want {
			t.Fatalf("formatTimecode(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestShortUUID(t *testing.T) {
	if got := shortUUID("0123456789abcdef"); got != "01234567" {
		t.Fatalf("unexpected short uuid: %q", got)
	}
	if got := shortUUID("abc"); got != "abc" {
		t.Fatalf("unexpected short uuid: %q", got)
	}
}
