package wisp

import (
	"fmt"
	"os"
)

// globalDebug enables diagnostic logging and extra consistency checks.
// Off by default; toggled with SetDebug. Wisp is single-threaded, so a plain
// bool is fine.
var globalDebug bool

// SetDebug enables or disables debug diagnostics. When enabled, structurally
// absorbed conditions that are normally silent (stale callbacks, debounced
// calls, rejected presses) are logged to stderr, and node misuse checks panic
// with descriptive messages.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugf prints a diagnostic line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[wisp] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called when debug mode is on; in release mode
// callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("wisp debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}
