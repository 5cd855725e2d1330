//go:build !debug

package debug

// Enabled is true in builds tagged debug.
const Enabled = false
