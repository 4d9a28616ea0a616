package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// Snapshot is the full serializable state of a game session. The engine
// can be reconstructed from a snapshot and the shape catalog.
type Snapshot struct {
	ID SessionID

	// Background holds the settled cells, excluding the falling piece
	Background Grid

	// Active piece state
	Kind          PieceKind
	RotationIndex int
	Offset        Offset

	// Lookahead
	NextKind PieceKind

	Score    int
	GameOver bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
