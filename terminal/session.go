package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is redirected
var ErrNotTerminal = errors.New("stdin and stdout must be a terminal")

// Session holds an initialized screen until Close
type Session struct {
	screen tcell.Screen
	saved  *term.State // cooked-mode termios captured before Init, nil for simulated screens
	fd     int
	once   sync.Once
}

// active is the session released by HandleCrash
var active atomic.Pointer[Session]

// restoreTerm is swapped in tests
var restoreTerm = term.Restore

// OpenTTY verifies the process is attached to a terminal and opens a tcell screen on it
func OpenTTY() (*Session, error) {
	inFd, outFd := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return nil, ErrNotTerminal
	}

	saved, err := term.GetState(inFd)
	if err != nil {
		return nil, fmt.Errorf("read terminal state: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}

	s, err := Open(screen)
	if err != nil {
		return nil, err
	}
	s.saved = saved
	s.fd = inFd
	return s, nil
}

// Open initializes screen, entering raw mode, and registers it for crash cleanup
func Open(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	s := &Session{screen: screen, fd: -1}
	active.Store(s)
	return s, nil
}

// Screen returns the underlying screen
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Close finalizes the screen and puts back the termios captured at OpenTTY.
// Safe to call multiple times
func (s *Session) Close() {
	s.once.Do(func() {
		s.screen.Fini()
		s.restoreMode()
		active.CompareAndSwap(s, nil)
	})
}

// restoreMode puts back the termios captured at OpenTTY
func (s *Session) restoreMode() bool {
	if s.saved == nil || s.fd < 0 {
		return false
	}
	return restoreTerm(s.fd, s.saved) == nil
}

// EmergencyReset writes reset sequences directly to w and forces cooked mode
// Used when the screen may be in an inconsistent state
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	if s := active.Load(); s != nil && s.restoreMode() {
		return
	}
	resetTerminalMode()
}
