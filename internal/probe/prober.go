package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Entry lists requested per-invocation. ffprobe prints stream entries first,
// then format entries, then format tags, which fixes the positional line
// order the record package decodes.
const (
	videoEntries = "format_tags=title:format=nb_streams,format_long_name:stream=codec_long_name,width,height:format=duration"
	audioEntries = "stream=channels,codec_long_name"
)

// Query probes path with two independent ffprobe runs (video stream v:0,
// then audio stream a:0) and returns their line output. A failure of either
// run is terminal for this file; there are no retries and no timeout (a
// hung ffprobe holds its worker slot until ctx is cancelled).
func Query(ctx context.Context, probePath, path string) (*Output, error) {
	video, err := run(ctx, probePath, path, "v:0", videoEntries)
	if err != nil {
		return nil, err
	}
	audio, err := run(ctx, probePath, path, "a:0", audioEntries)
	if err != nil {
		return nil, err
	}
	return &Output{Video: video, Audio: audio}, nil
}

// run performs one ffprobe invocation and splits its trimmed stdout into
// lines. Non-zero exit yields a *ToolError carrying stderr; anything else
// (binary missing, spawn failure, cancelled context) is wrapped as-is.
func run(ctx context.Context, probePath, path, stream, entries string) ([]string, error) {
	cmd := exec.CommandContext(ctx, probePath,
		"-v", "error",
		"-select_streams", stream,
		"-show_entries", entries,
		"-print_format", "default=noprint_wrappers=1:nokey=1",
		"-i", path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ToolError{
				Path:     path,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return splitLines(stdout.String()), nil
}

// splitLines trims the output and splits it into lines; empty output (e.g.
// a file with no index-0 audio stream) yields nil rather than one empty line.
func splitLines(s string) []string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
