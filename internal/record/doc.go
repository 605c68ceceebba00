// Package record turns raw ffprobe line output into database rows.
//
// The parse side is positional: the video query yields a fixed line order
// (codec long name, width, height, stream count, container long name,
// duration, then an optional title), the audio query exactly two lines
// (channel count, codec long name) when an index-0 audio stream exists.
// Parsing is total: short video output is a tagged Malformed result, a
// missing title or audio stream is a documented default, never an error.
//
// The encode side serializes one tab-delimited row per file in the fixed
// column order shared with the merge header.
package record
