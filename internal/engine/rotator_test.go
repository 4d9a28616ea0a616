package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blockfall/blockfall/internal/model"
)

func TestRotatorPeekDoesNotMutate(t *testing.T) {
	var r Rotator
	r.SetPiece(model.Piece{
		Kind: model.KindS,
		Rotations: []model.Grid{
			gridFromRows([]int{1}),
			gridFromRows([]int{2}),
		},
	})

	candidate, shape := r.PeekNext()
	assert.Equal(t, 1, candidate)
	assert.Equal(t, 2, shape.Cell(0, 0))
	assert.Equal(t, 0, r.Index())
	assert.Equal(t, 1, r.CurrentShape().Cell(0, 0))

	r.Commit(candidate)
	assert.Equal(t, 1, r.Index())
	assert.Equal(t, 2, r.CurrentShape().Cell(0, 0))
}

func TestRotatorWrapsAround(t *testing.T) {
	var r Rotator
	r.SetPiece(model.Piece{
		Kind: model.KindO,
		Rotations: []model.Grid{
			gridFromRows([]int{4}),
		},
	})

	candidate, _ := r.PeekNext()
	assert.Equal(t, 0, candidate)
}

func TestRotatorResetsOnNewPiece(t *testing.T) {
	var r Rotator
	r.SetPiece(model.Piece{Rotations: []model.Grid{
		gridFromRows([]int{1}), gridFromRows([]int{2}),
	}})
	r.Commit(1)

	r.SetPiece(model.Piece{Rotations: []model.Grid{
		gridFromRows([]int{3}), gridFromRows([]int{4}),
	}})
	assert.Equal(t, 0, r.Index())
	assert.Equal(t, 3, r.CurrentShape().Cell(0, 0))
}
