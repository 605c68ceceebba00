// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the legacy script for parity.
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (positional args): directories to walk, or standalone files
	// (honored only in update mode), or, in merge mode, the database
	// files to consolidate.
	Paths []string

	// Mode selection. Update and Merge are mutually exclusive.
	Update bool // Append to an existing database, skipping recorded entries.
	Merge  bool // Consolidate database files instead of probing.

	// Behavior flags.
	Percentage    bool // Pre-count eligible files and report progress checkpoints.
	NomediaCreate bool // Drop a .nomedia marker in filtered directories.
	Verbose       bool

	// External tools.
	ProbePath string // Default per-OS; see DefaultProbePath.
	Workers   int    // Worker pool size. Default: NumCPU * 4.

	// Display and logging.
	ColorMode ColorMode
	LogFile   string
	CheckOnly bool
}

// DefaultProbePath returns the conventional ffprobe location for the host OS.
// On the Unices a bare name suffices since the bin directories are on PATH;
// Windows installs rarely touch PATH, so the stock install location is used.
func DefaultProbePath() string {
	if runtime.GOOS == "windows" {
		return `C:\ffmpeg\bin\ffprobe.exe`
	}
	return "ffprobe"
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		ProbePath: DefaultProbePath(),
		Workers:   runtime.NumCPU() * 4,
		ColorMode: ColorAuto,
	}
}

// Validate checks cross-field constraints after flag parsing.
func (c *Config) Validate() error {
	if c.Update && c.Merge {
		return errors.New("--update-metadata-db and --merge-metadata are mutually exclusive")
	}
	if c.Percentage && (c.Update || c.Merge) {
		return errors.New("--percentage-completion cannot be applied along with --update-metadata-db or --merge-metadata")
	}
	if c.Workers < 1 {
		return fmt.Errorf("--workers must be at least 1 (got %d)", c.Workers)
	}
	if !c.CheckOnly && len(c.Paths) == 0 {
		return errors.New("this program requires at least one path argument")
	}
	return nil
}
