//go:build geocelldebug

package debug

// Enabled reports whether precondition checks panic.
const Enabled = true
