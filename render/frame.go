package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/term-pong/constants"
	"github.com/lixenwraith/term-pong/engine"
)

// Cell is one playfield position; Lit cells are drawn highlighted
type Cell struct {
	Lit bool
}

// Frame is a complete picture of the game: the playfield grid plus status lines
// Frames are plain values; equal state composes to equal frames
type Frame struct {
	Grid   [constants.BoardRows][constants.BoardCols]Cell
	Status [constants.StatusLines]string
}

// Compose builds the frame for the current state
func Compose(s *engine.GameState, b engine.Bindings) Frame {
	var f Frame

	for y := 0; y < constants.BoardRows; y++ {
		row := &f.Grid[y]

		// Edge columns show only paddles
		row[0].Lit = s.InPaddleASpan(y)
		row[constants.BoardCols-1].Lit = s.InPaddleBSpan(y)

		if y == s.PuckY && s.PuckX > 0 && s.PuckX < constants.BoardCols-1 {
			row[s.PuckX].Lit = true
		}
	}

	f.Status[0] = fmt.Sprintf(constants.ScoreFormat, s.ScoreA, s.ScoreB)
	f.Status[1] = b.Describe()

	return f
}

// Lines renders the frame as plain text, lit cells as LitGlyph
func (f *Frame) Lines() []string {
	lines := make([]string, 0, constants.BoardRows+constants.StatusLines)

	var sb strings.Builder
	for y := range f.Grid {
		sb.Reset()
		for _, c := range f.Grid[y] {
			if c.Lit {
				sb.WriteRune(constants.LitGlyph)
			} else {
				sb.WriteByte(' ')
			}
		}
		lines = append(lines, sb.String())
	}

	return append(lines, f.Status[:]...)
}

// String joins Lines with newlines
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}
