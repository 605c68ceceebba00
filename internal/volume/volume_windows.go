//go:build windows

package volume

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// Label returns the volume label of the drive holding path.
func Label(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	drive := filepath.VolumeName(abs)
	if drive == "" {
		return "", fmt.Errorf("no drive in path %q", path)
	}

	root, err := windows.UTF16PtrFromString(drive + `\`)
	if err != nil {
		return "", err
	}
	var name [windows.MAX_PATH + 1]uint16
	if err := windows.GetVolumeInformation(root, &name[0], uint32(len(name)), nil, nil, nil, nil, 0); err != nil {
		return "", fmt.Errorf("volume information for %s: %w", drive, err)
	}
	return windows.UTF16ToString(name[:]), nil
}
