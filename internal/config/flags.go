package config

// This file implements CLI flag parsing and help text. Flags are grouped
// into mode, behavior, tool, and display concerns. Each long flag has a
// short alias matching the legacy script.

import (
	"flag"
	"fmt"
	"os"
	"sort"
)

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. Positional arguments become cfg.Paths with
// duplicates removed, preserving first-occurrence order.
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("videodb", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var showHelp, showVersion, forceColor, noColor bool

	// Mode flags (mutually exclusive; checked in Validate).
	fs.BoolVar(&cfg.Update, "update-metadata-db", false, "Update the metadata database with selected file(s)")
	fs.BoolVar(&cfg.Update, "u", false, "Same as --update-metadata-db")
	fs.BoolVar(&cfg.Merge, "merge-metadata", false, "Consolidate multiple TSV metadata files into one")
	fs.BoolVar(&cfg.Merge, "m", false, "Same as --merge-metadata")

	// Behavior flags.
	fs.BoolVar(&cfg.Percentage, "percentage-completion", false, "Show the percentage of files completed")
	fs.BoolVar(&cfg.Percentage, "p", false, "Same as --percentage-completion")
	fs.BoolVar(&cfg.NomediaCreate, "nomedia-create", false, "Create a .nomedia file for programs like Kodi to ignore filtered directories")
	fs.BoolVar(&cfg.NomediaCreate, "n", false, "Same as --nomedia-create")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Be verbose in output and log")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")

	// Tool flags.
	fs.StringVar(&cfg.ProbePath, "probe", cfg.ProbePath, "Path to the ffprobe binary")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker pool size for concurrent probing")

	// Display and logging.
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showHelp, "help", false, "Show this help")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "videodb v"+version)
		os.Exit(0)
	}

	switch {
	case forceColor && noColor:
		return fmt.Errorf("--color and --no-color are mutually exclusive")
	case forceColor:
		cfg.ColorMode = ColorAlways
	case noColor:
		cfg.ColorMode = ColorNever
	}

	cfg.Paths = dedupe(fs.Args())
	return nil
}

// dedupe removes duplicate paths keeping first-occurrence order. The legacy
// script collapsed repeated command-line paths the same way.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "videodb builds a tab separated values (TSV) database of video and audio")
	fmt.Fprintln(w, "metadata with ffprobe, one row per video file.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage: videodb [options] <path>...")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")

	// flag registers aliases as separate entries; print long names only,
	// sorted, with the short alias appended when one exists.
	short := map[string]string{
		"update-metadata-db":    "u",
		"merge-metadata":        "m",
		"percentage-completion": "p",
		"nomedia-create":        "n",
		"verbose":               "v",
		"log":                   "l",
		"check":                 "c",
		"help":                  "h",
	}
	var names []string
	fs.VisitAll(func(f *flag.Flag) {
		if len(f.Name) > 1 {
			names = append(names, f.Name)
		}
	})
	sort.Strings(names)
	for _, name := range names {
		f := fs.Lookup(name)
		label := "--" + name
		if s, ok := short[name]; ok {
			label = "-" + s + ", " + label
		}
		fmt.Fprintf(w, "  %-30s %s\n", label, f.Usage)
	}
}
