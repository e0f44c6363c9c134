package engine

import "github.com/lixenwraith/term-pong/constants"

// GameState is the whole mutable simulation state
// Owned by the main loop; mutated by ApplyInput and Advance, read by the renderer
type GameState struct {
	// Scores
	ScoreA int
	ScoreB int

	// Paddle top edges, in [0, PaddleMaxY]
	PaddleAY int
	PaddleBY int

	// Paddle direction during the current frame: -1 up, 0 idle, 1 down
	// Cleared at the end of every Advance
	PaddleAVel int
	PaddleBVel int

	// Puck position and per-tick step
	PuckX    int
	PuckY    int
	PuckVelX int
	PuckVelY int
}

// NewGameState creates the starting configuration: centered paddles and puck,
// puck moving right, zero scores
func NewGameState() *GameState {
	return &GameState{
		PaddleAY: constants.PaddleMaxY / 2,
		PaddleBY: constants.PaddleMaxY / 2,
		PuckX:    constants.BoardCols/2 - 1,
		PuckY:    constants.BoardRows/2 - 1,
		PuckVelX: 1,
	}
}

// inPaddleSpan reports whether row lies within a paddle whose top edge is at top
func inPaddleSpan(top, row int) bool {
	return row >= top && row < top+constants.PaddleHeight
}

// InPaddleASpan reports whether row is covered by paddle A
func (s *GameState) InPaddleASpan(row int) bool {
	return inPaddleSpan(s.PaddleAY, row)
}

// InPaddleBSpan reports whether row is covered by paddle B
func (s *GameState) InPaddleBSpan(row int) bool {
	return inPaddleSpan(s.PaddleBY, row)
}
