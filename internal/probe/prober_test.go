package probe

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "\n\n", nil},
		{"unix newlines", "a\nb\nc", []string{"a", "b", "c"}},
		{"windows newlines", "a\r\nb\r\n", []string{"a", "b"}},
		{"trailing newline", "only\n", []string{"only"}},
		{"blank interior line kept", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToolErrorMessage(t *testing.T) {
	err := &ToolError{Path: "/media/bad.mkv", ExitCode: 1, Stderr: "moov atom not found"}
	want := `ffprobe exited 1 for "/media/bad.mkv"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestToolErrorUnwrapsThroughWrapping(t *testing.T) {
	inner := &ToolError{Path: "/media/bad.mkv", ExitCode: 187}
	wrapped := fmt.Errorf("probing: %w", inner)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As failed to recover *ToolError from wrapped error")
	}
	if toolErr.ExitCode != 187 {
		t.Errorf("ExitCode = %d, want 187", toolErr.ExitCode)
	}
}
