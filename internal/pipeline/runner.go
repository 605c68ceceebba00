package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/backmassage/videodb/internal/config"
	"github.com/backmassage/videodb/internal/db"
	"github.com/backmassage/videodb/internal/display"
	"github.com/backmassage/videodb/internal/logging"
	"github.com/backmassage/videodb/internal/notify"
	"github.com/backmassage/videodb/internal/probe"
	"github.com/backmassage/videodb/internal/record"
	"github.com/backmassage/videodb/internal/variant"
)

// batch is one prepared top-level path argument: its derived database and,
// for directories, the discovered candidate files.
type batch struct {
	path       string
	dbPath     string
	label      string
	files      []string
	standalone bool
}

// ProgramRoot derives the database name prefix from the executable name
// (extension stripped), so "videodb" produces "videodb - <label>.tsv".
func ProgramRoot() string {
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Run is the top-level batch entry point for probe runs (rebuild or
// update). It prepares every path, optionally completes the percentage
// gather pass, dispatches probing, sorts each resulting database, and
// prints the failure summary. Returns the process exit code.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) int {
	root := ProgramRoot()
	st := NewRunState()
	exitCode := 0

	if cfg.Percentage {
		log.Info("Gathering file count for reporting percentage...")
	}

	// Discovery doubles as the gather pass: eligible files are counted
	// (and kept) before any probing starts, so the progress denominator
	// is complete up front.
	var batches []batch
	for _, path := range cfg.Paths {
		b, err := prepare(cfg, log, root, path)
		if err != nil {
			log.Error("%v", err)
			exitCode = 1
			continue
		}
		batches = append(batches, b)
		if cfg.Percentage {
			st.AddTarget(len(b.files))
		}
	}

	log.Info("Initiating probing...")
	for i := range batches {
		if !runBatch(ctx, cfg, log, st, root, &batches[i]) {
			exitCode = 1
		}
	}

	reportFailures(st, log)
	return exitCode
}

// prepare derives the database name for one path argument and, for
// directories, discovers the candidate files.
func prepare(cfg *config.Config, log *logging.Logger, root, path string) (batch, error) {
	dbPath, label, err := db.NameForPath(root, path)
	if err != nil {
		return batch{}, err
	}
	b := batch{path: path, dbPath: dbPath, label: label}

	fi, err := os.Stat(path)
	if err != nil {
		return batch{}, fmt.Errorf("cannot access %q: %w", path, err)
	}
	if !fi.IsDir() {
		b.standalone = true
		return b, nil
	}

	b.files, err = Discover(path, cfg.NomediaCreate, cfg.Verbose, log)
	if err != nil {
		return batch{}, fmt.Errorf("walking %q: %w", path, err)
	}
	if cfg.Verbose && len(b.files) > 0 {
		log.InfoBlock(append([]string{"List of files to query:"}, b.files...)...)
	}
	return b, nil
}

// runBatch processes one prepared batch: dispatch, sort, timing summary,
// and (verbose) the variant report. Returns false when the batch leaves
// the run in a failed state (sort failure).
func runBatch(ctx context.Context, cfg *config.Config, log *logging.Logger, st *RunState, root string, b *batch) bool {
	queriedBefore, _ := st.Counts()

	if b.standalone {
		if !cfg.Update {
			log.Error("Only directories are queried for building a db from scratch. File '%s' will not be queried unless used with the option to update the db.", b.path)
			return true
		}
		// Standalone files open a private database inside the worker;
		// no shared stream exists for this batch.
		queryFile(ctx, cfg, log, st, nil, "", root, b.path)
	} else {
		shared, err := db.Open(b.dbPath, cfg.Update)
		if err != nil {
			log.Error("%v", err)
			return false
		}
		dispatch(ctx, cfg, log, st, shared, b.label, root, b.files)
		if err := shared.Close(); err != nil {
			log.Error("Closing database '%s': %v", b.dbPath, err)
		}
	}

	ok := sortDatabase(b.dbPath, log)

	queriedAfter, seen := st.Counts()
	if queriedAfter > queriedBefore {
		probeTime, writeTime := st.Times()
		log.Info("Queried a total of %d/%d files in %s and took %s to commit details to the database",
			queriedAfter, seen,
			display.FormatDuration(probeTime, false),
			display.FormatDuration(writeTime, false))
	} else {
		log.Info("No files to query under '%s'", b.path)
	}

	if cfg.Verbose {
		reportVariants(b.dbPath, log)
	}
	return ok
}

// sortDatabase re-sorts the finished database descending via the external
// sort tool.
func sortDatabase(dbPath string, log *logging.Logger) bool {
	elapsed, err := db.Sort(dbPath)
	if err != nil {
		log.Error("Error sorting '%s': %v", dbPath, err)
		return false
	}
	log.Info("Sorted '%s' in descending order of resolution stats in %s",
		dbPath, display.FormatDuration(elapsed, false))
	return true
}

// dispatch fans files across the worker pool. Workers pull from an
// unbuffered channel; completion order across files is unspecified and the
// database is re-sorted afterwards, so only row-set membership matters.
func dispatch(ctx context.Context, cfg *config.Config, log *logging.Logger, st *RunState, shared *db.Database, label, root string, files []string) {
	jobs := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				queryFile(ctx, cfg, log, st, shared, label, root, path)
			}
		}()
	}

	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()
}

// queryFile processes one file end to end: update gate, probe, encode,
// commit, counters, progress. Any failure is local to this file; the pool
// keeps running.
//
// A nil shared database means a standalone file: the worker derives and
// opens a private database (append mode) for the file's own volume.
func queryFile(ctx context.Context, cfg *config.Config, log *logging.Logger, st *RunState, shared *db.Database, label, root, path string) {
	st.NoteFile()

	dbase := shared
	if dbase == nil {
		dbPath, derivedLabel, err := db.NameForPath(root, path)
		if err != nil {
			log.Error("%v", err)
			return
		}
		d, err := db.Open(dbPath, true)
		if err != nil {
			log.ErrorBlock(
				err.Error(),
				fmt.Sprintf("Could not open '%s'. Aborting processing for '%s'.", dbPath, path),
			)
			return
		}
		defer d.Close()
		dbase, label = d, derivedLabel
	}

	if cfg.Update {
		recorded, err := dbase.Contains(path)
		if err != nil {
			log.Error("Update check failed for '%s': %v", path, err)
			return
		}
		if recorded {
			// Already represented; skipped files count in neither the
			// success nor the failure totals.
			return
		}
	}

	probeStart := time.Now()
	out, err := probe.Query(ctx, cfg.ProbePath, path)
	if err != nil {
		st.RecordFailure(path, err.Error())
		logProbeFailure(log, path, err)
		// Out-of-band toast; fired async so a slow notification daemon
		// never stalls this worker slot.
		go notify.ProbeFailure(path)
		return
	}
	st.AddProbeTime(time.Since(probeStart))

	v, err := record.ParseVideo(path, out.Video)
	if err != nil {
		// Malformed probe output: non-fatal for the batch, no row written.
		log.Error("%v", err)
		return
	}
	a, hasAudio := record.ParseAudio(out.Audio)
	if !hasAudio {
		log.Error("No audio stream found in index zero for '%s'. You might want to check if there is no audio available, or other audio streams.", path)
	}

	writeStart := time.Now()
	row, err := record.Encode(v, a, hasAudio, path, label)
	if err != nil {
		log.Error("Cannot encode row for '%s': %v", path, err)
		return
	}
	if err := dbase.WriteRow(row); err != nil {
		log.Error("Cannot write row for '%s': %v", path, err)
		return
	}
	st.AddWriteTime(time.Since(writeStart))

	queried := st.NoteSuccess()

	if cfg.Verbose {
		target := st.Target()
		ofTotal := ""
		if target > 0 {
			ofTotal = fmt.Sprintf(" of %d", target)
		}
		log.Info("Got metadata for file# %4d%s: '%s'", queried, ofTotal, path)
	}

	if line, kind := Progress(queried, st.Target()); kind != ProgressNone {
		switch kind {
		case ProgressDone:
			log.Info("%s", line)
		case ProgressCheckpoint:
			log.InfoBlock("-----------------------------", line, "-----------------------------")
		}
	}
}

// logProbeFailure prints one atomic error block for a failed probe,
// including ffprobe's own stderr when the tool ran but exited non-zero.
func logProbeFailure(log *logging.Logger, path string, err error) {
	lines := []string{fmt.Sprintf("Error querying '%s' for metadata", path)}

	var toolErr *probe.ToolError
	if errors.As(err, &toolErr) && toolErr.Stderr != "" {
		lines = append(lines, toolErr.Stderr)
	}
	lines = append(lines, err.Error())
	log.ErrorBlock(lines...)
}

// reportFailures prints the end-of-run table of files whose probe failed.
func reportFailures(st *RunState, log *logging.Logger) {
	failures := st.Failures()
	if len(failures) == 0 {
		return
	}
	lines := []string{"Here's a list of files that failed probing with the reason:"}
	for _, f := range failures {
		lines = append(lines,
			"File  : "+f.Path,
			"Reason: "+f.Reason,
		)
	}
	log.ErrorBlock(lines...)
}

// reportVariants parses the finished database and prints probable
// duplicate/variant sets grouped by normalized title.
func reportVariants(dbPath string, log *logging.Logger) {
	ix := variant.NewIndex()
	if err := ix.LoadFile(dbPath); err != nil {
		log.Error("Variant detection failed for '%s': %v", dbPath, err)
		return
	}
	variant.Report(ix, log)
}
