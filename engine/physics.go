package engine

import "github.com/lixenwraith/term-pong/constants"

// StepEvents records what happened during one Advance
type StepEvents struct {
	ScoredA    bool // puck reached paddle B's edge
	ScoredB    bool // puck reached paddle A's edge
	PaddleAHit bool
	PaddleBHit bool
	WallBounce bool
}

// Scored reports whether either player scored
func (e StepEvents) Scored() bool {
	return e.ScoredA || e.ScoredB
}

// Any reports whether anything audible happened
func (e StepEvents) Any() bool {
	return e.Scored() || e.PaddleAHit || e.PaddleBHit || e.WallBounce
}

// Advance runs one simulation tick: scoring, paddle collisions, wall reflection,
// puck integration, then paddle velocity decay. It is the only place puck
// kinematics change.
func (s *GameState) Advance() StepEvents {
	var ev StepEvents

	// Scoring; the puck is served from the middle with velocity unchanged
	if s.PuckX == constants.GoalColumnA {
		s.ScoreB++
		s.PuckX = constants.ServeColumn
		ev.ScoredB = true
	}
	if s.PuckX == constants.GoalColumnB {
		s.ScoreA++
		s.PuckX = constants.ServeColumn
		ev.ScoredA = true
	}

	if s.PuckX == constants.StrikeColumnA && s.InPaddleASpan(s.PuckY) {
		s.PuckVelX = 1
		if s.PaddleAVel != 0 {
			s.PuckVelY = s.PaddleAVel
		}
		ev.PaddleAHit = true
	}

	// Paddle B spin applies on column match alone, even when the span misses
	if s.PuckX == constants.StrikeColumnB {
		if s.InPaddleBSpan(s.PuckY) {
			s.PuckVelX = -1
			ev.PaddleBHit = true
		}
		if s.PaddleBVel != 0 {
			s.PuckVelY = s.PaddleBVel
		}
	}

	// Walls reflect only a puck heading off the board
	if (s.PuckY == 0 && s.PuckVelY < 0) || (s.PuckY == constants.BoardRows-1 && s.PuckVelY > 0) {
		s.PuckVelY = -s.PuckVelY
		ev.WallBounce = true
	}

	s.PuckX += s.PuckVelX
	s.PuckY += s.PuckVelY

	s.PaddleAVel = 0
	s.PaddleBVel = 0

	return ev
}
