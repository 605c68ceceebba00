// Package db manages the on-disk TSV database: file naming, open modes, the
// incremental-update membership check, the external sort, and the merge
// operation.
package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/backmassage/videodb/internal/volume"
)

// Logger is the minimal logging interface the db operations need.
type Logger interface {
	Info(string, ...interface{})
	Error(string, ...interface{})
}

// Name builds a database file name from the program root and a volume label,
// e.g. "videodb - Media8TB.tsv". Merge artifacts reuse the scheme with
// pseudo-labels ("Header", "Merged").
func Name(root, label string) string {
	return root + " - " + label + ".tsv"
}

// NameForPath derives the database name for a path from its volume label.
// The absolute path matters: label resolution needs the real drive.
func NameForPath(root, path string) (dbPath, label string, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", err
	}
	label, err = volume.Label(abs)
	if err != nil {
		return "", "", fmt.Errorf("volume label for %q: %w", path, err)
	}
	return Name(root, label), label, nil
}

// Database is the shared write target for one batch. Rows from concurrent
// workers are serialized through its mutex; that mutex guards only the
// stream, counters and failures have their own exclusion domains.
type Database struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// Open opens the database for one batch: truncate-and-write for a rebuild,
// append for an update run. Update mode additionally needs read access for
// the membership scan.
func Open(path string, appendMode bool) (*Database, error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_RDWR | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}
	return &Database{f: f, path: path}, nil
}

// Path returns the database file path.
func (d *Database) Path() string { return d.path }

// WriteRow appends one serialized row under the file mutex. Exactly one
// write call per row keeps lines intact regardless of worker interleaving.
func (d *Database) WriteRow(row string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.f.WriteString(row)
	return err
}

// Contains runs the incremental-update membership check for videoPath
// against the current file content.
func (d *Database) Contains(videoPath string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fi, err := d.f.Stat()
	if err != nil {
		return false, err
	}
	return AlreadyRecorded(d.f, fi.Size(), videoPath)
}

// Close closes the underlying file.
func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.f.Close()
}
