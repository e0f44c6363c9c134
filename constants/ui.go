package constants

// Default Key Bindings
const (
	DefaultKeyAUp   = 'w'
	DefaultKeyADown = 's'
	DefaultKeyBUp   = 'i'
	DefaultKeyBDown = 'k'

	// DefaultKeys is the -keys flag default, ordered A-up, A-down, B-up, B-down
	DefaultKeys = "wsik"
)

// Status Lines
const (
	// StatusLines is the number of text lines drawn under the playfield
	StatusLines = 2

	// ScoreFormat renders both scores on the first status line
	ScoreFormat = "Player a: %d    Player b: %d"

	// ControlsFormat renders the bindings on the second status line
	ControlsFormat = "Controls: %c/%c    %c/%c    ctrl-c to quit"

	// LitGlyph stands in for a highlighted cell in plain-text frames
	LitGlyph = '█'
)
