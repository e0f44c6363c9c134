package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lixenwraith/term-pong/constants"
	"github.com/lixenwraith/term-pong/engine"
)

func litCells(f *Frame) map[[2]int]bool {
	lit := make(map[[2]int]bool)
	for y := range f.Grid {
		for x, c := range f.Grid[y] {
			if c.Lit {
				lit[[2]int{x, y}] = true
			}
		}
	}
	return lit
}

// TestComposeInitial verifies paddles and puck of the starting state
func TestComposeInitial(t *testing.T) {
	s := engine.NewGameState()
	f := Compose(s, engine.DefaultBindings())

	lit := litCells(&f)

	want := map[[2]int]bool{{39, 11}: true}
	for y := 10; y < 10+constants.PaddleHeight; y++ {
		want[[2]int{0, y}] = true
		want[[2]int{constants.BoardCols - 1, y}] = true
	}

	if len(lit) != len(want) {
		t.Errorf("Expected %d lit cells, got %d", len(want), len(lit))
	}
	for p := range want {
		if !lit[p] {
			t.Errorf("Expected cell %v lit", p)
		}
	}
}

// TestComposePuckOnEdge verifies a puck in a goal column is not drawn over the edge
func TestComposePuckOnEdge(t *testing.T) {
	tests := []struct {
		name  string
		puckX int
	}{
		{"Left goal", 0},
		{"Right goal", constants.BoardCols - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Paddles far from the puck row
			s := &engine.GameState{PaddleAY: 0, PaddleBY: 0, PuckX: tt.puckX, PuckY: 20}
			f := Compose(s, engine.DefaultBindings())
			if f.Grid[20][tt.puckX].Lit {
				t.Errorf("Expected edge cell (%d,20) dark", tt.puckX)
			}
			if n := len(litCells(&f)); n != 2*constants.PaddleHeight {
				t.Errorf("Expected only paddle cells lit, got %d", n)
			}
		})
	}
}

// TestComposeStatus verifies both status lines
func TestComposeStatus(t *testing.T) {
	s := engine.NewGameState()
	s.ScoreA = 3
	s.ScoreB = 12

	f := Compose(s, engine.DefaultBindings())

	if f.Status[0] != "Player a: 3    Player b: 12" {
		t.Errorf("Unexpected score line %q", f.Status[0])
	}
	if f.Status[1] != "Controls: w/s    i/k    ctrl-c to quit" {
		t.Errorf("Unexpected controls line %q", f.Status[1])
	}
}

// TestComposeDeterministic verifies equal state composes to equal frames
func TestComposeDeterministic(t *testing.T) {
	s := engine.NewGameState()
	b := engine.DefaultBindings()

	for i := 0; i < 50; i++ {
		first := Compose(s, b)
		second := Compose(s, b)
		if first != second {
			t.Fatalf("Tick %d: frames differ for unchanged state", i)
		}
		s.Advance()
	}
}

// TestFrameLines verifies the plain-text rendering geometry
func TestFrameLines(t *testing.T) {
	s := engine.NewGameState()
	f := Compose(s, engine.DefaultBindings())
	lines := f.Lines()

	if len(lines) != constants.BoardRows+constants.StatusLines {
		t.Fatalf("Expected %d lines, got %d", constants.BoardRows+constants.StatusLines, len(lines))
	}
	for y := 0; y < constants.BoardRows; y++ {
		if n := utf8.RuneCountInString(lines[y]); n != constants.BoardCols {
			t.Errorf("Row %d: expected %d runes, got %d", y, constants.BoardCols, n)
		}
	}

	row := []rune(lines[11])
	if row[0] != constants.LitGlyph || row[39] != constants.LitGlyph || row[constants.BoardCols-1] != constants.LitGlyph {
		t.Errorf("Expected paddles and puck on row 11, got %q", lines[11])
	}
	if strings.ContainsRune(lines[0], constants.LitGlyph) {
		t.Errorf("Expected empty top row, got %q", lines[0])
	}
	if lines[constants.BoardRows] != f.Status[0] {
		t.Errorf("Expected score line after grid, got %q", lines[constants.BoardRows])
	}
	if got := strings.Count(f.String(), "\n"); got != len(lines)-1 {
		t.Errorf("Expected %d newlines, got %d", len(lines)-1, got)
	}
}
