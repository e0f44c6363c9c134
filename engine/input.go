package engine

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/term-pong/constants"
)

// NoInput is the key value for a frame without a keystroke
const NoInput rune = 0

// Sentinel errors
var (
	ErrBindingCount     = errors.New("bindings need exactly four keys")
	ErrBindingDuplicate = errors.New("key bound more than once")
	ErrBindingNoInput   = errors.New("NUL cannot be bound")
)

// Bindings maps the four paddle controls to keys
type Bindings struct {
	AUp   rune
	ADown rune
	BUp   rune
	BDown rune
}

// DefaultBindings returns w/s for paddle A and i/k for paddle B
func DefaultBindings() Bindings {
	return Bindings{
		AUp:   constants.DefaultKeyAUp,
		ADown: constants.DefaultKeyADown,
		BUp:   constants.DefaultKeyBUp,
		BDown: constants.DefaultKeyBDown,
	}
}

// ParseBindings reads four keys ordered A-up, A-down, B-up, B-down, e.g. "wsik"
func ParseBindings(s string) (Bindings, error) {
	if !utf8.ValidString(s) || utf8.RuneCountInString(s) != 4 {
		return Bindings{}, fmt.Errorf("parse bindings %q: %w", s, ErrBindingCount)
	}

	keys := []rune(s)
	seen := make(map[rune]bool, len(keys))
	for _, k := range keys {
		if k == NoInput {
			return Bindings{}, fmt.Errorf("parse bindings %q: %w", s, ErrBindingNoInput)
		}
		if seen[k] {
			return Bindings{}, fmt.Errorf("parse bindings %q: %q: %w", s, k, ErrBindingDuplicate)
		}
		seen[k] = true
	}

	return Bindings{AUp: keys[0], ADown: keys[1], BUp: keys[2], BDown: keys[3]}, nil
}

// Describe returns the controls status line
func (b Bindings) Describe() string {
	return fmt.Sprintf(constants.ControlsFormat, b.AUp, b.ADown, b.BUp, b.BDown)
}

// ApplyInput moves the paddle bound to key by one row, clamped to the board.
// The paddle's velocity is set even when the clamp blocks the move; Advance
// reads it as spin. Unbound keys and NoInput are ignored.
func (s *GameState) ApplyInput(b Bindings, key rune) {
	if key == NoInput {
		return
	}

	switch key {
	case b.AUp:
		s.PaddleAY = moveUp(s.PaddleAY)
		s.PaddleAVel = -1
	case b.ADown:
		s.PaddleAY = moveDown(s.PaddleAY)
		s.PaddleAVel = 1
	case b.BUp:
		s.PaddleBY = moveUp(s.PaddleBY)
		s.PaddleBVel = -1
	case b.BDown:
		s.PaddleBY = moveDown(s.PaddleBY)
		s.PaddleBVel = 1
	}
}

func moveUp(y int) int {
	if y > 0 {
		return y - 1
	}
	return y
}

func moveDown(y int) int {
	if y < constants.PaddleMaxY {
		return y + 1
	}
	return y
}
