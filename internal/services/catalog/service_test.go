package catalog

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/blockfall/blockfall/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) TestAllKindsHaveRotations() {
	for _, kind := range model.Kinds {
		rotations, err := s.service.Rotations(kind)
		s.Require().NoError(err, "kind %s", kind)
		s.NotEmpty(rotations, "kind %s", kind)
	}
}

func (s *ServiceSuite) TestUnknownKind() {
	_, err := s.service.Rotations(model.PieceKind("X"))
	s.ErrorIs(err, model.ErrUnknownPieceKind)

	_, err = s.service.Piece(model.PieceKind("X"))
	s.ErrorIs(err, model.ErrUnknownPieceKind)
}

func (s *ServiceSuite) TestColorConsistentAcrossRotations() {
	for _, kind := range model.Kinds {
		rotations, err := s.service.Rotations(kind)
		s.Require().NoError(err)

		want := kind.ColorID()
		for stateIdx, shape := range rotations {
			for _, row := range shape {
				for _, cell := range row {
					if cell != 0 {
						s.Equal(want, cell, "kind %s state %d", kind, stateIdx)
					}
				}
			}
		}
	}
}

func (s *ServiceSuite) TestRotationStatesAreSquareAndUniform() {
	for _, kind := range model.Kinds {
		rotations, err := s.service.Rotations(kind)
		s.Require().NoError(err)

		size := rotations[0].Rows()
		for stateIdx, shape := range rotations {
			s.Equal(size, shape.Rows(), "kind %s state %d", kind, stateIdx)
			s.Equal(size, shape.Cols(), "kind %s state %d", kind, stateIdx)
		}
	}
}

func (s *ServiceSuite) TestEveryStateHasFourCells() {
	for _, kind := range model.Kinds {
		rotations, err := s.service.Rotations(kind)
		s.Require().NoError(err)

		for stateIdx, shape := range rotations {
			occupied := 0
			for _, row := range shape {
				for _, cell := range row {
					if cell != 0 {
						occupied++
					}
				}
			}
			s.Equal(4, occupied, "kind %s state %d", kind, stateIdx)
		}
	}
}

func (s *ServiceSuite) TestAccessorsReturnIndependentCopies() {
	first, err := s.service.Rotations(model.KindT)
	s.Require().NoError(err)

	// Mutate the returned grids
	first[0][0][0] = 99
	first[1][1][1] = 99

	second, err := s.service.Rotations(model.KindT)
	s.Require().NoError(err)
	s.Equal(0, second[0].Cell(0, 0))
	s.Equal(model.KindT.ColorID(), second[1].Cell(1, 1))
}

func (s *ServiceSuite) TestPieceOwnsItsRotations() {
	a, err := s.service.Piece(model.KindL)
	s.Require().NoError(err)
	b, err := s.service.Piece(model.KindL)
	s.Require().NoError(err)

	a.Rotations[0][0][0] = 99
	s.NotEqual(a.Rotations[0].Cell(0, 0), b.Rotations[0].Cell(0, 0))
}
