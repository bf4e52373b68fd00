package meadow

import (
	"fmt"
	"os"
	"time"
)

// globalDebug switches on per-frame logging and diagnostics that are too
// hot to always run.
var globalDebug bool

// SetDebugMode toggles package-wide debug behavior: frame stats on stderr
// and diagnostics-enabled pools in gardens created afterwards.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug behavior is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugWarnf prints a warning to stderr. Warnings are not gated on debug
// mode; they report conditions the caller should fix.
func debugWarnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[meadow] "+format+"\n", args...)
}

// frameStats holds per-frame timing and command metrics. Only populated
// when debug mode is on.
type frameStats struct {
	emitTime   time.Duration
	submitTime time.Duration
	commands   int
	plants     int
	motes      int
}

// logFrameStats prints the frame breakdown to stderr.
func logFrameStats(s frameStats) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[meadow] emit: %v | submit: %v | total: %v\n",
		s.emitTime, s.submitTime, s.emitTime+s.submitTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[meadow] plants: %d | commands: %d | motes: %d\n",
		s.plants, s.commands, s.motes)
}
