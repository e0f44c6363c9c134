package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle SoundType = iota // Puck struck by a paddle
	SoundWall                    // Puck reflected off top or bottom
	SoundScore                   // Point scored
	soundTypeCount
)

// String returns the name used in TERM_PONG_SFX_VOLUMES
func (t SoundType) String() string {
	switch t {
	case SoundPaddle:
		return "paddle"
	case SoundWall:
		return "wall"
	case SoundScore:
		return "score"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrUnknownSound = errors.New("unknown sound type")
)
