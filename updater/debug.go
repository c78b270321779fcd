package updater

import (
	"fmt"
	"os"
)

// debugf prints diagnostics when GHUPDATE_DEBUG=1
func debugf(format string, args ...any) {
	if os.Getenv("GHUPDATE_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "[ghupdate] "+format+"\n", args...)
	}
}
