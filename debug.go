package animate

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that view
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// debugStats holds per-frame counters. Only populated when Scene.debug is true.
type debugStats struct {
	inFlight  int
	pending   int
	drawCount int
}

// debugLog prints frame stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[animate] transitions: %d | dropped tokens: %d | views drawn: %d\n",
		stats.inFlight, stats.pending, stats.drawCount)
}

// debugf prints a line to stderr when the animator is in debug mode.
func (a *Animator) debugf(format string, args ...any) {
	if a == nil || !a.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[animate] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed view
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(v *View, op string) {
	if v.disposed {
		panic(fmt.Sprintf("animate debug: %s on disposed view %q", op, v.Name))
	}
}
