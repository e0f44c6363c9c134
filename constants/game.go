package constants

import "time"

// Board Geometry
const (
	// BoardCols is the playfield width in terminal columns, paddle edges included
	BoardCols = 80

	// BoardRows is the playfield height in terminal rows
	BoardRows = 24

	// PaddleHeight is the number of rows a paddle occupies
	PaddleHeight = 4

	// PaddleMaxY is the lowest row a paddle's top edge may reach
	PaddleMaxY = BoardRows - PaddleHeight
)

// Collision Columns
const (
	// GoalColumnA is paddle A's edge; a puck here scores for player B
	GoalColumnA = 0

	// GoalColumnB is paddle B's edge; a puck here scores for player A
	GoalColumnB = BoardCols - 1

	// StrikeColumnA is the column just inside paddle A where the puck bounces
	StrikeColumnA = GoalColumnA + 1

	// StrikeColumnB is the column just inside paddle B where the puck bounces
	StrikeColumnB = GoalColumnB - 1

	// ServeColumn is where the puck is put back after a point
	ServeColumn = BoardCols / 2
)

// Game Loop Timing
const (
	// FrameInterval is the per-frame input budget; one simulation step runs per frame
	FrameInterval = 100 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event pump channel
	EventQueueSize = 64
)
