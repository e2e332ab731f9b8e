// Package terminal restores the TTY when the process dies with the screen still in raw mode.
package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Escape sequences undoing what a full-screen mouse-enabled session turns on
var (
	csiRIS           = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")

	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
)

// EmergencyReset writes the restore sequences to w and puts the TTY back in cooked mode.
// Best effort; errors are ignored in crash context.
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{
		csiMouseMotionOff, csiMouseDragOff, csiMouseClickOff, csiMouseSGROff,
		csiCursorShow, csiAltScreenExit, csiSGR0, csiAutoWrapOn, csiRIS,
	} {
		w.Write(seq)
	}

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// escape sequences alone don't restore termios
	resetTerminalMode()
}

// Report prints a crash banner and stack trace to w using raw-mode safe line endings
func Report(w io.Writer, where string, r any) {
	fmt.Fprintf(w, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", debug.Stack())
}

// CrashHandler returns a function for deferred use at the top of a goroutine.
// On panic it restores the terminal, reports to stderr and exits with status 1.
func CrashHandler(where string) func() {
	return func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			Report(os.Stderr, where, r)
			os.Exit(1)
		}
	}
}
