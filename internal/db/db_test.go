package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if got := Name("videodb", "Media8TB"); got != "videodb - Media8TB.tsv" {
		t.Errorf("Name = %q, want %q", got, "videodb - Media8TB.tsv")
	}
}

func TestOpenRebuildTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videodb - X.tsv")
	if err := os.WriteFile(path, []byte("stale row\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("rebuild open kept %d stale bytes", len(data))
	}
}

func TestOpenUpdateAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videodb - X.tsv")
	if err := os.WriteFile(path, []byte("existing row\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Open(path, true)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := d.WriteRow("new row\n"); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "existing row\nnew row\n" {
		t.Errorf("content = %q, want appended rows intact", data)
	}
}

func TestContains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videodb - X.tsv")
	row := "1920\t1080\t1h:30m:0s\tInception [2010]\n"
	if err := os.WriteFile(path, []byte(row), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Open(path, true)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	recorded, err := d.Contains("/media/Inception [2010]/Inception.mkv")
	if err != nil {
		t.Fatal(err)
	}
	if !recorded {
		t.Error("Contains missed a recorded parent directory")
	}

	recorded, err = d.Contains("/media/Avatar [2009]/Avatar.mkv")
	if err != nil {
		t.Fatal(err)
	}
	if recorded {
		t.Error("Contains reported an unrecorded parent directory")
	}
}

func TestAlreadyRecordedEmptyFile(t *testing.T) {
	recorded, err := AlreadyRecorded(strings.NewReader(""), 0, "/media/Movie/Movie.mkv")
	if err != nil {
		t.Fatal(err)
	}
	if recorded {
		t.Error("empty database reported a recorded entry")
	}
}

// chdir mirrors testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

type testLogger struct {
	lines []string
}

func (l *testLogger) Info(format string, args ...interface{})  { l.lines = append(l.lines, format) }
func (l *testLogger) Error(format string, args ...interface{}) { l.lines = append(l.lines, format) }

func TestMergeMissingInputAborts(t *testing.T) {
	chdir(t, t.TempDir())

	present := "videodb - A.tsv"
	if err := os.WriteFile(present, []byte("row\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Merge("videodb", []string{present, "videodb - Missing.tsv"}, &testLogger{})
	if err == nil {
		t.Fatal("Merge accepted a missing input")
	}
	if !strings.Contains(err.Error(), "invalid/inaccessible file") {
		t.Errorf("error = %v, want invalid/inaccessible diagnosis", err)
	}
	if _, statErr := os.Stat("videodb - Merged.tsv"); !os.IsNotExist(statErr) {
		t.Error("aborted merge still produced an output file")
	}
	if _, statErr := os.Stat("videodb - Header.tsv"); !os.IsNotExist(statErr) {
		t.Error("aborted merge left a header artifact")
	}
}

func TestMerge(t *testing.T) {
	chdir(t, t.TempDir())

	// Second input carries a BOM like databases written by older builds.
	inA := "videodb - A.tsv"
	inB := "videodb - B.tsv"
	if err := os.WriteFile(inA, []byte("1080\trow a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(inB, append([]byte{0xEF, 0xBB, 0xBF}, []byte("2160\trow b\n")...), 0o644); err != nil {
		t.Fatal(err)
	}

	log := &testLogger{}
	if err := Merge("videodb", []string{inA, inB}, log); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	data, err := os.ReadFile("videodb - Merged.tsv")
	if err != nil {
		t.Fatalf("merged output missing: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("merged file has %d lines, want header plus 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Width\tHeight\t") {
		t.Errorf("first line %q is not the header", lines[0])
	}
	// Descending sort puts the 2160 row first; the BOM must be gone.
	if lines[1] != "2160\trow b" || lines[2] != "1080\trow a" {
		t.Errorf("rows out of order or BOM retained: %q", lines[1:])
	}

	for _, temp := range []string{"videodb - Header.tsv", "videodb - Merged - Temp.tsv"} {
		if _, err := os.Stat(temp); !os.IsNotExist(err) {
			t.Errorf("temporary file %q was not removed", temp)
		}
	}
}
