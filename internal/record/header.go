package record

import "strings"

// headerColumns names every row field exactly once, in row order. The merge
// operation prepends this as the only header line a database ever carries.
var headerColumns = []string{
	"Width",
	"Height",
	"Duration (in s)",
	"Size",
	"Raw Size",
	"Video Codec Name",
	"AV1/HEVC Compression Candidate",
	"Total # of Streams",
	"Container Name",
	"# of Audio Channels (@Index 0)",
	"Audio Codec Name (@Index 0)",
	"Title",
	"Ext. English Subtitle Availability",
	"Ext. English Subtitle Size",
	"Ext. Hearing Impaired English Subtitle Availability",
	"Ext. Hearing Impaired English Subtitle Size",
	"Volume Label",
	"Path on Drive Label",
}

// Header returns the tab-delimited, newline-terminated header row.
func Header() string {
	return strings.Join(headerColumns, "\t") + "\n"
}
