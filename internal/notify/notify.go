// Package notify emits desktop toast notifications for probe failures, so
// unattended batch runs surface problems even when the console scrolls by.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

const appName = "videodb"

// ProbeFailure raises a toast for one failed probe. Fired from worker
// goroutines; a notification daemon that is slow or absent must never stall
// the pool, so errors are swallowed (the failure is already logged and
// summarized elsewhere).
func ProbeFailure(path string) {
	msg := fmt.Sprintf("%s: Failed to probe '%s'. Check the log.", appName, path)
	_ = beeep.Alert("Error", msg, "")
}
