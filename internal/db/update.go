package db

import (
	"bytes"
	"io"
	"path/filepath"
)

// AlreadyRecorded reports whether videoPath is already represented in the
// open database. The membership key is the file's immediate parent
// directory name, on the convention of one directory per logical title.
//
// This is a heuristic, not a content hash: the directory name can appear
// elsewhere in the file (false positive) and the same title under a
// differently named directory goes unnoticed (false negative). Preserved
// as-is from the legacy behavior.
//
// Reads go through a section reader so the file's append offset is never
// disturbed.
func AlreadyRecorded(f io.ReaderAt, size int64, videoPath string) (bool, error) {
	key := filepath.Base(filepath.Dir(videoPath))
	if size == 0 {
		return false, nil
	}
	content, err := io.ReadAll(io.NewSectionReader(f, 0, size))
	if err != nil {
		return false, err
	}
	return bytes.Contains(content, []byte(key)), nil
}
