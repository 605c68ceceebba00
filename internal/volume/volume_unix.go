//go:build !windows

package volume

import (
	"fmt"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/disk"
)

// Label returns the mountpoint base name of the partition holding path.
// The Unices have no real volume-label notion for arbitrary paths, so the
// mountpoint name stands in ("/mnt/Media8TB" labels as "Media8TB"); a path
// living directly on the root filesystem labels as "root".
func Label(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	parts, err := disk.Partitions(false)
	if err != nil {
		return "", fmt.Errorf("list partitions: %w", err)
	}

	// Longest mountpoint prefix wins, so nested mounts resolve to the
	// innermost filesystem.
	best := ""
	for _, p := range parts {
		if covers(p.Mountpoint, abs) && len(p.Mountpoint) > len(best) {
			best = p.Mountpoint
		}
	}
	if best == "" {
		return "", fmt.Errorf("no mounted partition holds %q", path)
	}
	if best == "/" {
		return "root", nil
	}
	return filepath.Base(best), nil
}

// covers reports whether mountpoint contains path, on path boundaries
// ("/mnt/a" does not cover "/mnt/ab").
func covers(mountpoint, path string) bool {
	if mountpoint == "/" {
		return true
	}
	if path == mountpoint {
		return true
	}
	return len(path) > len(mountpoint) &&
		path[:len(mountpoint)] == mountpoint &&
		path[len(mountpoint)] == '/'
}
