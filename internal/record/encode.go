package record

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/backmassage/videodb/internal/display"
)

// Codecs considered already efficiently compressed. A row whose video codec
// matches is marked "N" (not a compression candidate); everything else "Y".
// Exact long-name membership, not codec introspection.
var compressedCodecs = map[string]bool{
	"Alliance for Open Media AV1":                 true,
	"H.265 / HEVC (High Efficiency Video Coding)": true,
}

// CompressionCandidate classifies a video codec long name as "Y" (worth
// re-encoding to AV1/HEVC) or "N" (already there).
func CompressionCandidate(codecLongName string) string {
	if compressedCodecs[codecLongName] {
		return "N"
	}
	return "Y"
}

// FormatDimension renders a width or height column: right-aligned in four
// characters, or the "0000" placeholder when ffprobe reported nothing, so
// the later numeric reverse-sort stays well-defined for such rows.
func FormatDimension(val string) string {
	if val == "" {
		return "0000"
	}
	return fmt.Sprintf("%4s", val)
}

// FormatRowDuration renders the duration column. The literal "N/A" that
// ffprobe emits for some containers passes through verbatim; anything else
// is parsed as fractional seconds and rendered concisely ("1h:1m:1s").
func FormatRowDuration(raw string) (string, error) {
	if raw == "N/A" {
		return raw, nil
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", fmt.Errorf("parse duration %q: %w", raw, err)
	}
	return display.FormatSeconds(secs, true), nil
}

// SubtitlePaths returns the two external-subtitle sibling paths for a video
// file: the plain and the hearing-impaired English SRT variants.
func SubtitlePaths(videoPath string) (plain, hearingImpaired string) {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	return base + ".en.srt", base + ".en.hi.srt"
}

// subtitleFields probes one sibling path and returns its two columns:
// presence flag and byte size (a single-space placeholder when absent).
func subtitleFields(path string) (flag, size string) {
	fi, err := os.Stat(path)
	if err != nil {
		return "N", " "
	}
	return "Y", strconv.FormatInt(fi.Size(), 10)
}

// Encode serializes one complete database row (newline-terminated,
// tab-delimited) for a successfully probed file. hasAudio gates the two
// audio columns; when false they are omitted entirely, matching the legacy
// row shape. Stat failures on the video file itself are errors since the
// size columns are mandatory.
func Encode(v VideoMeta, a AudioMeta, hasAudio bool, path, volumeLabel string) (string, error) {
	duration, err := FormatRowDuration(v.Duration)
	if err != nil {
		return "", err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %q: %w", path, err)
	}

	var b strings.Builder
	b.WriteString(FormatDimension(v.Width) + "\t")
	b.WriteString(FormatDimension(v.Height) + "\t")
	b.WriteString(duration + "\t")
	b.WriteString(display.FormatBytes(fi.Size()) + "\t")
	b.WriteString(strconv.FormatInt(fi.Size(), 10) + "\t")
	b.WriteString(v.CodecLongName + "\t")
	b.WriteString(CompressionCandidate(v.CodecLongName) + "\t")
	b.WriteString(v.StreamsTotal + "\t")
	b.WriteString(v.ContainerLongName + "\t")

	if hasAudio {
		b.WriteString(a.Channels + "\t")
		b.WriteString(a.CodecLongName + "\t")
	}

	b.WriteString(v.Title + "\t")

	plainPath, hiPath := SubtitlePaths(path)
	for _, subPath := range []string{plainPath, hiPath} {
		flag, size := subtitleFields(subPath)
		b.WriteString(flag + "\t")
		b.WriteString(size + "\t")
	}

	b.WriteString(volumeLabel + "\t")
	b.WriteString(stripDrive(path))
	b.WriteString("\n")
	return b.String(), nil
}

// stripDrive drops the drive-letter prefix on Windows; the volume label
// column already identifies the disk, so the letter is noise.
func stripDrive(path string) string {
	if runtime.GOOS != "windows" {
		return path
	}
	return strings.TrimPrefix(path, filepath.VolumeName(path))
}
