package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-pong/constants"
	"github.com/mattn/go-runewidth"
)

// Two-tone palette: white on black, inverted for paddles and puck
var (
	StyleNormal = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	StyleLit    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// Renderer presents frames on a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer drawing to screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen, writes the frame row-major from the top-left corner and shows it
func (r *Renderer) Draw(f *Frame) {
	r.screen.Clear()

	for y := range f.Grid {
		for x, c := range f.Grid[y] {
			style := StyleNormal
			if c.Lit {
				style = StyleLit
			}
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	for i, line := range f.Status {
		r.drawText(0, constants.BoardRows+i, line, StyleNormal)
	}

	r.screen.Show()
}

// drawText writes text starting at (x, y), clipped at the screen edge
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}
