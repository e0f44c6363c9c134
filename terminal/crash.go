package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash is the unified panic handler: restore the terminal, print the
// panic with its stack to stderr, exit 1. A nil r is ignored.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if s := active.Load(); s != nil {
		s.Close()
	} else {
		EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mTERM-PONG CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}
