package engine

import "time"

// Config holds the board geometry and scoring constants. Dimensions are
// always given rows then columns.
type Config struct {
	// Rows is the total board height, including the hidden spawn buffer
	Rows int
	// Cols is the board width
	Cols int
	// HiddenRows is the number of spawn-buffer rows above the visible field
	HiddenRows int

	// Spawn coordinate of a new piece's top-left corner
	SpawnX int
	SpawnY int

	// ScorePerLine is the base line-clear bonus; clearing k lines at once
	// awards ScorePerLine * k^2
	ScorePerLine int
	// ManualDownBonus is awarded for each player-initiated down move
	ManualDownBonus int

	// TickInterval is the automatic descent period, consumed by drivers
	TickInterval time.Duration
}

// DefaultConfig returns the standard board configuration
func DefaultConfig() Config {
	return Config{
		Rows:            25,
		Cols:            10,
		HiddenRows:      2,
		SpawnX:          4,
		SpawnY:          0,
		ScorePerLine:    50,
		ManualDownBonus: 1,
		TickInterval:    400 * time.Millisecond,
	}
}
