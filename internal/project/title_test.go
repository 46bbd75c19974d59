package project

import "testing"

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "Untitled Project"},
		{"simple", "/media/vacation.mkv", "Vacation"},
		{"separators", "/media/summer_trip-2024.final.mp4", "Summer Trip 2024 Final"},
		{"symbols only", "/media/###.mkv", "Untitled Project"},
		{"already titled", "Home Movies.mov", "Home Movies"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := deriveTitle(tc.in); got != tc.want {
				t.Fatalf("deriveTitle(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
