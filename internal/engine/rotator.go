package engine

import (
	"github.com/blockfall/blockfall/internal/model"
)

// Rotator tracks the active piece's rotation-state list and the current
// index into it. Rotation direction is fixed: always the next state in
// list order, wrapping at the end.
type Rotator struct {
	shapes []model.Grid
	index  int
}

// SetPiece loads the piece's rotation list and resets the index
func (r *Rotator) SetPiece(piece model.Piece) {
	r.shapes = piece.Rotations
	r.index = 0
}

// CurrentShape returns the shape at the current rotation state
func (r *Rotator) CurrentShape() model.Grid {
	return r.shapes[r.index]
}

// PeekNext returns the candidate index and shape of the next rotation
// state without mutating the cursor
func (r *Rotator) PeekNext() (int, model.Grid) {
	candidate := (r.index + 1) % len(r.shapes)
	return candidate, r.shapes[candidate]
}

// Commit sets the current rotation state to a candidate index obtained
// from PeekNext
func (r *Rotator) Commit(index int) {
	r.index = index
}

// Index returns the current rotation index
func (r *Rotator) Index() int {
	return r.index
}

// States returns the number of rotation states
func (r *Rotator) States() int {
	return len(r.shapes)
}
