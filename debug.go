package easel

import (
	"fmt"
	"os"
)

// debugEnabled gates diagnostic warnings. Plain bool, no atomic — easel is
// single-threaded.
var debugEnabled bool

// SetDebug enables or disables diagnostic warnings on stderr: superseded
// gestures, ignored page operations, and similar conditions the package
// otherwise degrades silently.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// debugf prints a warning to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[easel] "+format+"\n", args...)
}
