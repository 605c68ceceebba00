package display

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatBytes returns a human-readable size ("1.5GiB" style, base 1024).
// The compact form (no space, trailing "B") matches the legacy database
// rows, so existing files sort and diff cleanly against new ones.
func FormatBytes(num int64) string {
	val := float64(num)
	for _, unit := range []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"} {
		if math.Abs(val) < 1024.0 {
			return fmt.Sprintf("%3.1f%sB", val, unit)
		}
		val /= 1024.0
	}
	return fmt.Sprintf("%.1fYiB", val)
}

// FormatSeconds renders a second count as hours, minutes, and seconds.
// Concise form: "<h>h:<m>m:<s>s" with leading zero units omitted
// (3661 -> "1h:1m:1s", 90 -> "1m:30s"). Long form spells the units out
// ("1 hour(s) 1 minute(s) 1 second(s)").
//
// Sub-minute inputs keep extra resolution: below one second the value is
// rounded to two decimals ("0.5s"), otherwise to the nearest integer.
func FormatSeconds(raw float64, concise bool) string {
	secs := int64(math.Round(raw))
	var hours, minutes int64
	if secs >= 60 {
		minutes = secs / 60
		secs = secs % 60
	}
	if minutes >= 60 {
		hours = minutes / 60
		minutes = minutes % 60
	}

	secStr := strconv.FormatInt(secs, 10)
	if hours == 0 && minutes == 0 && raw > 0 && raw < 1 {
		secStr = strconv.FormatFloat(math.Round(raw*100)/100, 'f', -1, 64)
	}

	if concise {
		out := ""
		if hours > 0 {
			out += strconv.FormatInt(hours, 10) + "h:"
		}
		if minutes > 0 {
			out += strconv.FormatInt(minutes, 10) + "m:"
		}
		return out + secStr + "s"
	}

	out := ""
	if hours > 0 {
		out += strconv.FormatInt(hours, 10) + " hour(s) "
	}
	if minutes > 0 {
		out += strconv.FormatInt(minutes, 10) + " minute(s) "
	}
	return out + secStr + " second(s)"
}

// FormatDuration is FormatSeconds for a time.Duration.
func FormatDuration(d time.Duration, concise bool) string {
	return FormatSeconds(d.Seconds(), concise)
}
