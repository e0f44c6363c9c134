package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-pong/constants"
	"github.com/lixenwraith/term-pong/engine"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(constants.BoardCols, constants.BoardRows+constants.StatusLines)
	t.Cleanup(screen.Fini)
	return screen
}

func isLit(screen tcell.Screen, x, y int) bool {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg == tcell.ColorWhite
}

func rowText(screen tcell.Screen, y, width int) string {
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		runes = append(runes, r)
	}
	return string(runes)
}

// TestRendererDraw verifies the grid styles and status text on screen
func TestRendererDraw(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)

	s := engine.NewGameState()
	s.ScoreA = 1
	f := Compose(s, engine.DefaultBindings())
	r.Draw(&f)

	for y := range f.Grid {
		for x, c := range f.Grid[y] {
			if got := isLit(screen, x, y); got != c.Lit {
				t.Errorf("Cell (%d,%d): expected lit=%v, got %v", x, y, c.Lit, got)
			}
		}
	}

	want := f.Status[0]
	if got := rowText(screen, constants.BoardRows, len(want)); got != want {
		t.Errorf("Expected score line %q, got %q", want, got)
	}
	want = f.Status[1]
	if got := rowText(screen, constants.BoardRows+1, len(want)); got != want {
		t.Errorf("Expected controls line %q, got %q", want, got)
	}
}

// TestRendererRedraw verifies stale cells are cleared between frames
func TestRendererRedraw(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	b := engine.DefaultBindings()

	s := engine.NewGameState()
	f := Compose(s, b)
	r.Draw(&f)

	oldX, oldY := s.PuckX, s.PuckY
	s.Advance()
	f = Compose(s, b)
	r.Draw(&f)

	if isLit(screen, oldX, oldY) {
		t.Errorf("Expected old puck cell (%d,%d) cleared", oldX, oldY)
	}
	if !isLit(screen, s.PuckX, s.PuckY) {
		t.Errorf("Expected new puck cell (%d,%d) lit", s.PuckX, s.PuckY)
	}
}

// TestRendererSmallScreen verifies drawing onto a smaller terminal does not panic
func TestRendererSmallScreen(t *testing.T) {
	screen := newTestScreen(t)
	screen.SetSize(20, 5)
	r := NewRenderer(screen)

	defer func() {
		if rec := recover(); rec != nil {
			t.Errorf("Draw panicked on small screen: %v", rec)
		}
	}()

	f := Compose(engine.NewGameState(), engine.DefaultBindings())
	r.Draw(&f)
}
