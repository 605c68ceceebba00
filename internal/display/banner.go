package display

import (
	"fmt"
	"os"

	"github.com/backmassage/videodb/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, ` __     ___     _            ____  ____
 \ \   / (_) __| | ___  ___ |  _ \| __ )
  \ \ / /| |/ _`+"`"+` |/ _ \/ _ \| | | |  _ \
   \ V / | | (_| |  __/ (_) | |_| | |_) |
    \_/  |_|\__,_|\___|\___/|____/|____/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
