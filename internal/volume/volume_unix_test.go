//go:build !windows

package volume

import "testing"

func TestCovers(t *testing.T) {
	tests := []struct {
		name       string
		mountpoint string
		path       string
		want       bool
	}{
		{"root covers everything", "/", "/home/x/a.mkv", true},
		{"exact mountpoint", "/mnt/media", "/mnt/media", true},
		{"nested path", "/mnt/media", "/mnt/media/film.mkv", true},
		{"sibling prefix", "/mnt/a", "/mnt/ab/film.mkv", false},
		{"outside", "/mnt/media", "/home/x/a.mkv", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := covers(tt.mountpoint, tt.path); got != tt.want {
				t.Errorf("covers(%q, %q) = %v, want %v", tt.mountpoint, tt.path, got, tt.want)
			}
		})
	}
}
