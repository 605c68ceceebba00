// Package probe wraps the external ffprobe invocations used to read
// container and stream metadata from one video file.
//
// Each file is queried twice: once for the first video stream (codec,
// resolution, stream count, container, duration, title tag) and once for
// the first audio stream (channel count, codec). Output is requested in
// plain line mode (-print_format default=noprint_wrappers=1:nokey=1), one
// unlabelled value per line, so downstream parsing is purely positional.
package probe
