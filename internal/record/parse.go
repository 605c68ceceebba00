package record

import "fmt"

// Positional line indices in the video query output.
const (
	idxVideoCodecLongName = 0
	idxVideoWidth         = 1
	idxVideoHeight        = 2
	idxStreamsTotal       = 3
	idxContainerLongName  = 4
	idxVideoDuration      = 5
	idxTitle              = 6
)

// Positional line indices in the audio query output.
const (
	idxAudioChannels      = 0
	idxAudioCodecLongName = 1
	audioLineCount        = 2
)

// TitleNotSet is the sentinel recorded when a file carries no title tag.
const TitleNotSet = "<Title Not Set>"

// VideoMeta is the decoded video query output. Width, Height, and Duration
// stay textual: ffprobe may leave the first two empty or report the literal
// "N/A" for the last, and the encoder's defaulting rules act on that text.
type VideoMeta struct {
	CodecLongName     string
	Width             string
	Height            string
	StreamsTotal      string
	ContainerLongName string
	Duration          string
	Title             string // TitleNotSet when the tag is absent
}

// AudioMeta is the decoded audio query output for the index-0 audio stream.
type AudioMeta struct {
	Channels      string
	CodecLongName string
}

// MalformedError reports video output below the minimum line count,
// typically an audio-only file handed to the video query.
type MalformedError struct {
	Path  string
	Lines int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf(
		"the number of lines in the output for %q were only %d; this should be at least %d, and ideally %d. Did you pass a .mkv/.mp4 file with audio only stream(s)?",
		e.Path, e.Lines, idxTitle, idxTitle+1)
}

// ParseVideo decodes the positional video query lines. Output shorter than
// the minimum (title absent) length is malformed and fatal for this file
// only; at exactly the minimum length the title sentinel is substituted.
func ParseVideo(path string, lines []string) (VideoMeta, error) {
	if len(lines) < idxTitle {
		return VideoMeta{}, &MalformedError{Path: path, Lines: len(lines)}
	}

	v := VideoMeta{
		CodecLongName:     lines[idxVideoCodecLongName],
		Width:             lines[idxVideoWidth],
		Height:            lines[idxVideoHeight],
		StreamsTotal:      lines[idxStreamsTotal],
		ContainerLongName: lines[idxContainerLongName],
		Duration:          lines[idxVideoDuration],
		Title:             TitleNotSet,
	}
	if len(lines) > idxTitle {
		v.Title = lines[idxTitle]
	}
	return v, nil
}

// ParseAudio decodes the audio query lines. Anything other than exactly two
// lines means no usable index-0 audio stream; that is not an error, the row
// simply omits the audio fields.
func ParseAudio(lines []string) (AudioMeta, bool) {
	if len(lines) != audioLineCount {
		return AudioMeta{}, false
	}
	return AudioMeta{
		Channels:      lines[idxAudioChannels],
		CodecLongName: lines[idxAudioCodecLongName],
	}, true
}
