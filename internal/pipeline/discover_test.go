package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/backmassage/videodb/internal/config"
	"github.com/backmassage/videodb/internal/logging"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	return log
}

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"a.mkv",
		"B.MP4",
		"notes.txt",
		"poster.jpg",
		filepath.Join("Season 1", "e01.avi"),
		filepath.Join("Extras", "skip.mkv"),
		filepath.Join("Trailers", "skip2.mp4"),
		filepath.Join("@eaDir", "thumb.mkv"),
	)

	files, err := Discover(root, false, false, testLogger(t))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{
		filepath.Join(root, "B.MP4"),
		filepath.Join(root, "Season 1", "e01.avi"),
		filepath.Join(root, "a.mkv"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Discover = %v, want %v", files, want)
	}
}

func TestDiscoverNomedia(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"a.mkv",
		filepath.Join("Extras", "skip.mkv"),
	)

	if _, err := Discover(root, true, false, testLogger(t)); err != nil {
		t.Fatalf("Discover: %v", err)
	}

	marker := filepath.Join(root, "Extras", ".nomedia")
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("marker %q not created: %v", marker, err)
	}

	// Second run must tolerate the existing marker.
	if _, err := Discover(root, true, false, testLogger(t)); err != nil {
		t.Fatalf("second Discover: %v", err)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope"), false, false, testLogger(t)); err == nil {
		t.Error("Discover accepted a missing root")
	}
}
