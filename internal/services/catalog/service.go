package catalog

import (
	"github.com/blockfall/blockfall/internal/model"
)

// Service is the shape catalog: for each of the seven piece kinds it holds
// the ordered, cyclic list of rotation-state grids. The tables are
// immutable; accessors hand out deep copies so callers can never corrupt
// the shared data.
type Service struct{}

// New creates a new catalog service
func New() *Service {
	return &Service{}
}

// Piece returns a fresh piece of the given kind with its own copy of the
// rotation list
func (s *Service) Piece(kind model.PieceKind) (model.Piece, error) {
	rotations, err := s.Rotations(kind)
	if err != nil {
		return model.Piece{}, err
	}
	return model.Piece{Kind: kind, Rotations: rotations}, nil
}

// Rotations returns a deep copy of the rotation-state list for the kind
func (s *Service) Rotations(kind model.PieceKind) ([]model.Grid, error) {
	states, ok := shapeTable[kind]
	if !ok {
		return nil, model.ErrUnknownPieceKind
	}
	result := make([]model.Grid, len(states))
	for i, g := range states {
		result[i] = g.Clone()
	}
	return result, nil
}

// shapeTable maps each kind to its rotation states. Every state of a kind
// uses the kind's color id for occupied cells. Rotation order is clockwise;
// symmetric kinds carry fewer states.
var shapeTable = map[model.PieceKind][]model.Grid{
	model.KindI: {
		{
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 1, 0},
		},
	},
	model.KindT: {
		{
			{0, 2, 0},
			{2, 2, 2},
			{0, 0, 0},
		},
		{
			{0, 2, 0},
			{0, 2, 2},
			{0, 2, 0},
		},
		{
			{0, 0, 0},
			{2, 2, 2},
			{0, 2, 0},
		},
		{
			{0, 2, 0},
			{2, 2, 0},
			{0, 2, 0},
		},
	},
	model.KindS: {
		{
			{0, 3, 3},
			{3, 3, 0},
			{0, 0, 0},
		},
		{
			{0, 3, 0},
			{0, 3, 3},
			{0, 0, 3},
		},
	},
	model.KindO: {
		{
			{4, 4},
			{4, 4},
		},
	},
	model.KindZ: {
		{
			{5, 5, 0},
			{0, 5, 5},
			{0, 0, 0},
		},
		{
			{0, 0, 5},
			{0, 5, 5},
			{0, 5, 0},
		},
	},
	model.KindL: {
		{
			{0, 0, 6},
			{6, 6, 6},
			{0, 0, 0},
		},
		{
			{0, 6, 0},
			{0, 6, 0},
			{0, 6, 6},
		},
		{
			{0, 0, 0},
			{6, 6, 6},
			{6, 0, 0},
		},
		{
			{6, 6, 0},
			{0, 6, 0},
			{0, 6, 0},
		},
	},
	model.KindJ: {
		{
			{7, 0, 0},
			{7, 7, 7},
			{0, 0, 0},
		},
		{
			{0, 7, 7},
			{0, 7, 0},
			{0, 7, 0},
		},
		{
			{0, 0, 0},
			{7, 7, 7},
			{0, 0, 7},
		},
		{
			{0, 7, 0},
			{0, 7, 0},
			{7, 7, 0},
		},
	},
}
