// Package logging provides the leveled, optionally colored logger with an
// optional file sink. The logger's mutex is the single console exclusion
// domain: every worker goroutine prints through it, so multi-line messages
// are never interleaved mid-line.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/videodb/internal/config"
	"github.com/backmassage/videodb/internal/term"
)

// Logger provides leveled, optionally colored logging with an optional file
// sink. Safe for concurrent use.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// NewLogger configures terminal colors from cfg and optionally opens the log
// file. Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// block writes one or more lines atomically under a single lock acquisition.
func (l *Logger) block(level, color string, lines []string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, text := range lines {
		plain := ts + " [" + level + "] " + text + "\n"
		if color != "" {
			_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
		} else {
			_, _ = io.WriteString(out, plain)
		}
		if l.file != nil {
			_, _ = io.WriteString(l.file, plain)
		}
	}
}

func (l *Logger) line(level, color, text string) {
	l.block(level, color, []string{text})
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), also to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// ErrorBlock logs several ERROR lines as one atomic unit, so concurrent
// workers cannot interleave their failure reports.
func (l *Logger) ErrorBlock(lines ...string) {
	l.block("ERROR", term.Red, lines)
}

// InfoBlock logs several INFO lines as one atomic unit.
func (l *Logger) InfoBlock(lines ...string) {
	l.block("INFO", term.Blue, lines)
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
