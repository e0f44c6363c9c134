// Package terminal owns the process-wide terminal mode.
//
// A Session wraps a tcell.Screen from Init to Fini. Close is idempotent and is the
// single release point for raw mode; HandleCrash uses the same release so a panic
// never leaves the user's shell without echo.
package terminal
