// Package debug checks simulation invariants. Build with -tags debug to turn
// violations into panics; release builds log them and let the caller clamp.
package debug

import (
	"fmt"
	"log/slog"
)

// Invariant reports whether cond holds. A violation panics when Enabled and
// is logged otherwise.
func Invariant(cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	msg := fmt.Sprintf(format, args...)
	if Enabled {
		panic("invariant violated: " + msg)
	}
	slog.Warn("invariant violated", "detail", msg)
	return false
}
