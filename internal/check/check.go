// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for the host platform, ffprobe, and the external
// sort binary.
package check

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/backmassage/videodb/internal/config"
)

// Sentinel errors returned by CheckDeps when a precondition fails.
var (
	ErrUnsupportedOS = errors.New("unsupported OS (only Windows and Linux are supported)")
	ErrProbeNotFound = errors.New("ffprobe not found")
	ErrSortNotFound  = errors.New("sort binary not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// SupportedPlatform reports whether the host OS is one we know how to drive
// (volume labels, sort invocation, and path conventions are per-OS).
func SupportedPlatform() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "linux"
}

// SortBinary returns the name of the platform's line-sort tool.
func SortBinary() string {
	if runtime.GOOS == "windows" {
		return "sort.exe"
	}
	return "sort"
}

// CheckDeps validates the platform and required external tools before any
// work begins. Failures here are fatal for the whole run.
func CheckDeps(cfg *config.Config) error {
	if !SupportedPlatform() {
		return ErrUnsupportedOS
	}
	if err := lookupProbe(cfg.ProbePath); err != nil {
		return err
	}
	if _, err := exec.LookPath(SortBinary()); err != nil {
		return ErrSortNotFound
	}
	return nil
}

// lookupProbe resolves the ffprobe binary: explicit paths must exist as
// regular files, bare names are resolved via PATH.
func lookupProbe(path string) error {
	if strings.ContainsAny(path, `/\`) {
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			return fmt.Errorf("%w: %s", ErrProbeNotFound, path)
		}
		return nil
	}
	if _, err := exec.LookPath(path); err != nil {
		return fmt.Errorf("%w: %s", ErrProbeNotFound, path)
	}
	return nil
}

// RunCheck runs the interactive --check flow: prints availability of the
// platform, ffprobe, and the sort tool. Informational only; it reports
// every finding rather than stopping at the first failure, and returns
// false if anything required is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	ok := true

	if SupportedPlatform() {
		log.Success("Platform: %s supported", runtime.GOOS)
	} else {
		log.Error("Platform: %s not supported", runtime.GOOS)
		ok = false
	}

	if err := lookupProbe(cfg.ProbePath); err != nil {
		log.Error("ffprobe: %v", err)
		ok = false
	} else {
		logProbeVersion(cfg.ProbePath, log)
	}

	if _, err := exec.LookPath(SortBinary()); err != nil {
		log.Error("sort: %q not found on PATH", SortBinary())
		ok = false
	} else {
		log.Success("sort: %s available", SortBinary())
	}

	return ok
}

// logProbeVersion logs the first line of `ffprobe -version`.
func logProbeVersion(path string, log Logger) {
	out, err := exec.Command(path, "-version").Output()
	if err != nil {
		log.Warn("ffprobe found but -version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffprobe: %s", firstLine)
}
