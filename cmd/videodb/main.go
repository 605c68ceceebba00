// Command videodb is the entrypoint for the video metadata database builder.
// It parses flags, validates config, and either runs system check (--check),
// merges existing databases (--merge-metadata), or runs the probe pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/videodb/internal/check"
	"github.com/backmassage/videodb/internal/config"
	"github.com/backmassage/videodb/internal/db"
	"github.com/backmassage/videodb/internal/display"
	"github.com/backmassage/videodb/internal/logging"
	"github.com/backmassage/videodb/internal/pipeline"
)

// version is set at build time via -ldflags (e.g. Makefile).
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load config from defaults and CLI flags; exit on parse or
	// validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "videodb: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "videodb: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "videodb: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	// 2. If user asked for system diagnostics, run them and exit.
	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// 3. Fail fast when the platform has no external sort variant or the
	// probe binary is missing.
	if !check.SupportedPlatform() {
		log.Error("Unsupported operating system. Only Windows and Linux hosts can sort the database.")
		return 1
	}
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// 4. Merge mode consolidates existing databases and never probes.
	if cfg.Merge {
		if err := db.Merge(pipeline.ProgramRoot(), cfg.Paths, log); err != nil {
			log.Error("%v", err)
			return 1
		}
		return 0
	}

	// 5. Probe pipeline. Ctrl-C cancels in-flight ffprobe invocations.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return pipeline.Run(ctx, &cfg, log)
}
