package model

// PieceKind identifies one of the seven canonical piece types
type PieceKind string

const (
	KindI PieceKind = "I"
	KindT PieceKind = "T"
	KindS PieceKind = "S"
	KindO PieceKind = "O"
	KindZ PieceKind = "Z"
	KindL PieceKind = "L"
	KindJ PieceKind = "J"
)

// Kinds lists all piece kinds in color-id order
var Kinds = []PieceKind{KindI, KindT, KindS, KindO, KindZ, KindL, KindJ}

// ColorID returns the stable color id for the kind (1..7), or 0 if unknown
func (k PieceKind) ColorID() int {
	for i, kind := range Kinds {
		if kind == k {
			return i + 1
		}
	}
	return 0
}

// Valid returns true if the kind is one of the seven canonical types
func (k PieceKind) Valid() bool {
	return k.ColorID() != 0
}

// Piece is a spawnable piece: its kind and its own copy of the kind's
// ordered, cyclic rotation-state list. Each piece instance owns its
// rotation grids, so rotation bookkeeping on one piece cannot affect
// another.
type Piece struct {
	Kind      PieceKind
	Rotations []Grid
}

// ViewData describes the active piece for observers: its current shape
// grid, its board offset, and the upcoming piece's first rotation state
// for previews.
type ViewData struct {
	ActiveShape Grid   `json:"active_shape"`
	Offset      Offset `json:"offset"`
	NextShape   Grid   `json:"next_shape"`
}

// ClearResult is the outcome of a row-clear pass
type ClearResult struct {
	Background   Grid
	LinesRemoved int
	ScoreBonus   int
}
