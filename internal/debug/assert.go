package debug

import "fmt"

// Assert panics with the formatted message when cond is false and debug
// checks are enabled.
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("geocell: precondition violated: "+format, args...))
	}
}
