package pipeline

import (
	"sync"
	"testing"
	"time"
)

func TestRunStateCounts(t *testing.T) {
	st := NewRunState()
	st.AddTarget(3)
	st.AddTarget(2)
	if got := st.Target(); got != 5 {
		t.Errorf("Target = %d, want 5", got)
	}

	st.NoteFile()
	st.NoteFile()
	if n := st.NoteSuccess(); n != 1 {
		t.Errorf("first NoteSuccess = %d, want 1", n)
	}
	queried, seen := st.Counts()
	if queried != 1 || seen != 2 {
		t.Errorf("Counts = %d, %d; want 1, 2", queried, seen)
	}
}

func TestRunStateConcurrentSuccess(t *testing.T) {
	st := NewRunState()
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.NoteFile()
			st.NoteSuccess()
			st.AddProbeTime(time.Millisecond)
		}()
	}
	wg.Wait()

	queried, seen := st.Counts()
	if queried != n || seen != n {
		t.Errorf("Counts = %d, %d; want %d each", queried, seen, n)
	}
	probe, _ := st.Times()
	if probe != n*time.Millisecond {
		t.Errorf("probe time = %v, want %v", probe, n*time.Millisecond)
	}
}

func TestRunStateFailures(t *testing.T) {
	st := NewRunState()
	st.RecordFailure("/a.mkv", "exit 1")
	st.RecordFailure("/b.mkv", "exit 187")
	st.RecordFailure("/a.mkv", "exit 1 again")

	failures := st.Failures()
	if len(failures) != 2 {
		t.Fatalf("got %d failures, want 2 (duplicates collapsed)", len(failures))
	}
	if failures[0].Path != "/a.mkv" || failures[1].Path != "/b.mkv" {
		t.Errorf("failure order = %q, %q", failures[0].Path, failures[1].Path)
	}
	if failures[0].Reason != "exit 1" {
		t.Errorf("first reason = %q, want the original kept", failures[0].Reason)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		queried  int
		target   int
		wantLine string
		wantKind ProgressKind
	}{
		{"no target", 5, 0, "", ProgressNone},
		{"past target", 6, 5, "", ProgressNone},
		{"complete", 5, 5, "All files in queue queried", ProgressDone},
		{"checkpoint hit", 2, 200, "1% of files in queue queried", ProgressCheckpoint},
		{"between checkpoints", 3, 200, "", ProgressNone},
		{"small queue every file", 1, 3, "33% of files in queue queried", ProgressCheckpoint},
		{"ninety-nine percent", 198, 200, "99% of files in queue queried", ProgressCheckpoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, kind := Progress(tt.queried, tt.target)
			if line != tt.wantLine || kind != tt.wantKind {
				t.Errorf("Progress(%d, %d) = %q, %v; want %q, %v",
					tt.queried, tt.target, line, kind, tt.wantLine, tt.wantKind)
			}
		})
	}
}
