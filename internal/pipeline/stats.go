package pipeline

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// RunState carries the shared mutable state of one batch run. It is created
// fresh per invocation and discarded at the end, never persisted. Counters,
// timings, and the failure map are disjoint and guarded by separate mutexes
// so unrelated worker updates do not serialize each other.
type RunState struct {
	muCount sync.Mutex
	seen    int // files dispatch attempted (includes failures and skips)
	queried int // rows successfully committed
	target  int // percentage denominator from the gather pass; 0 when unused

	muTime    sync.Mutex
	probeTime time.Duration
	writeTime time.Duration

	muFail    sync.Mutex
	failures  map[string]string
	failOrder []string
}

// NewRunState returns a zeroed RunState.
func NewRunState() *RunState {
	return &RunState{failures: make(map[string]string)}
}

// AddTarget grows the progress denominator (gather pass).
func (s *RunState) AddTarget(n int) {
	s.muCount.Lock()
	s.target += n
	s.muCount.Unlock()
}

// Target returns the progress denominator.
func (s *RunState) Target() int {
	s.muCount.Lock()
	defer s.muCount.Unlock()
	return s.target
}

// NoteFile counts one dispatched file.
func (s *RunState) NoteFile() {
	s.muCount.Lock()
	s.seen++
	s.muCount.Unlock()
}

// NoteSuccess counts one committed row and returns the new success count.
func (s *RunState) NoteSuccess() int {
	s.muCount.Lock()
	defer s.muCount.Unlock()
	s.queried++
	return s.queried
}

// Counts returns (committed rows, dispatched files).
func (s *RunState) Counts() (queried, seen int) {
	s.muCount.Lock()
	defer s.muCount.Unlock()
	return s.queried, s.seen
}

// AddProbeTime accumulates external probe latency.
func (s *RunState) AddProbeTime(d time.Duration) {
	s.muTime.Lock()
	s.probeTime += d
	s.muTime.Unlock()
}

// AddWriteTime accumulates encode-and-commit latency.
func (s *RunState) AddWriteTime(d time.Duration) {
	s.muTime.Lock()
	s.writeTime += d
	s.muTime.Unlock()
}

// Times returns the accumulated (probe, write) durations.
func (s *RunState) Times() (probe, write time.Duration) {
	s.muTime.Lock()
	defer s.muTime.Unlock()
	return s.probeTime, s.writeTime
}

// RecordFailure maps one file path to its failure description, keeping
// first-recorded order for the summary.
func (s *RunState) RecordFailure(path, reason string) {
	s.muFail.Lock()
	defer s.muFail.Unlock()
	if _, dup := s.failures[path]; dup {
		return
	}
	s.failOrder = append(s.failOrder, path)
	s.failures[path] = reason
}

// Failures returns the recorded failures in first-recorded order.
func (s *RunState) Failures() []Failure {
	s.muFail.Lock()
	defer s.muFail.Unlock()
	out := make([]Failure, 0, len(s.failOrder))
	for _, path := range s.failOrder {
		out = append(out, Failure{Path: path, Reason: s.failures[path]})
	}
	return out
}

// Failure is one probe failure for the end-of-run summary.
type Failure struct {
	Path   string
	Reason string
}

// ProgressKind classifies a progress report.
type ProgressKind int

const (
	ProgressNone       ProgressKind = iota // nothing to report
	ProgressCheckpoint                     // queried crossed a 1% checkpoint
	ProgressDone                           // queried equals the target
)

// Progress derives the status line for a success count against the gather
// target. Checkpoints fire every 1% of the target (minimum granularity of
// one file, which also avoids a zero divisor for totals under 100). The
// displayed percentage is floored and clamped below 100 until the run is
// actually complete.
func Progress(queried, target int) (string, ProgressKind) {
	if target <= 0 || queried > target {
		return "", ProgressNone
	}
	if queried == target {
		return "All files in queue queried", ProgressDone
	}

	checkpoint := int(math.Round(float64(target) / 100))
	if checkpoint == 0 {
		checkpoint = 1
	}
	if queried%checkpoint != 0 {
		return "", ProgressNone
	}

	pct := queried * 100 / target
	if pct >= 100 {
		pct = 99
	}
	return fmt.Sprintf("%d%% of files in queue queried", pct), ProgressCheckpoint
}
