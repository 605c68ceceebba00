package probe

import "fmt"

// Output holds the trimmed line output of both ffprobe invocations for one
// file. Video carries the positional fields of the v:0 query; Audio those
// of the a:0 query (empty when the file has no index-0 audio stream).
type Output struct {
	Video []string
	Audio []string
}

// ToolError reports an ffprobe run that started but exited non-zero. It
// carries the tool's stderr so the failure summary can show the real cause
// (corrupt file, unsupported container, permission problem).
type ToolError struct {
	Path     string // the media file being probed
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("ffprobe exited %d for %q", e.ExitCode, e.Path)
}
