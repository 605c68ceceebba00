package variant

import (
	"fmt"
	"strings"
)

// Logger is the minimal logging interface the report needs.
type Logger interface {
	Info(string, ...interface{})
}

// Report prints one fixed-width table per variant set. Entries are listed
// newest-registered first, matching the legacy report.
func Report(ix *Index, log Logger) {
	for _, g := range ix.Variants() {
		log.Info("The following variants exist for '%s':", g.Title)
		log.Info("%s", fmt.Sprintf("%5s | %6s | %-11s | %10s | %-15s | %s",
			"Width", "Height", "Duration", "Size", "Volume", "Path"))
		log.Info("%s", strings.Repeat("-", 6)+"|"+
			strings.Repeat("-", 8)+"|"+
			strings.Repeat("-", 13)+"|"+
			strings.Repeat("-", 12)+"|"+
			strings.Repeat("-", 17)+"|"+
			strings.Repeat("-", 5))

		for i := len(g.Entries) - 1; i >= 0; i-- {
			e := g.Entries[i]
			log.Info("%s", fmt.Sprintf("%5s | %6s | %-11s | %10s | %-15s | %s",
				e.Width, e.Height, e.Duration, e.Size, e.Volume, e.Path))
		}
	}
}
