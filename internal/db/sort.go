package db

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/backmassage/videodb/internal/check"
)

// Sort runs the platform sort tool in-place over the database, descending,
// so the zero-padded width/height lead columns put the highest resolutions
// first. Returns the elapsed sort time. Failure marks the whole batch's
// exit code but is not fatal to other top-level paths.
func Sort(path string) (time.Duration, error) {
	bin := check.SortBinary()
	var args []string
	if runtime.GOOS == "windows" {
		args = []string{"/R", path, "/O", path}
	} else {
		args = []string{"-r", path, "-o", path}
	}

	cmd := exec.Command(bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return 0, fmt.Errorf("sort %q: %w: %s", path, err, msg)
		}
		return 0, fmt.Errorf("sort %q: %w", path, err)
	}
	return time.Since(start), nil
}
