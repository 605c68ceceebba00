package display

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0.0B"},
		{"small bytes", 512, "512.0B"},
		{"exactly 1 KiB", 1024, "1.0KiB"},
		{"1.5 KiB", 1536, "1.5KiB"},
		{"1 MiB", 1024 * 1024, "1.0MiB"},
		{"typical file 700 MiB", 734003200, "700.0MiB"},
		{"4.7 GiB", 5046586572, "4.7GiB"},
		{"negative", -1536, "-1.5KiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatSecondsConcise(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want string
	}{
		{"zero", 0, "0s"},
		{"sub-second", 0.5, "0.5s"},
		{"seconds only", 59, "59s"},
		{"minute and seconds", 90, "1m:30s"},
		{"hour minute second", 3661, "1h:1m:1s"},
		{"exact hour", 3600, "1h:0s"},
		{"two hours", 7322, "2h:2m:2s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSeconds(tt.raw, true)
			if got != tt.want {
				t.Errorf("FormatSeconds(%v, true) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatSecondsLong(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want string
	}{
		{"seconds only", 5, "5 second(s)"},
		{"minute and seconds", 90, "1 minute(s) 30 second(s)"},
		{"hour minute second", 3661, "1 hour(s) 1 minute(s) 1 second(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSeconds(tt.raw, false)
			if got != tt.want {
				t.Errorf("FormatSeconds(%v, false) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	got := FormatDuration(90*time.Second, true)
	if got != "1m:30s" {
		t.Errorf("FormatDuration(90s, true) = %q, want %q", got, "1m:30s")
	}
}
