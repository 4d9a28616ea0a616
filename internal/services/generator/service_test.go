package generator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/blockfall/blockfall/internal/dependencies/mocks"
	"github.com/blockfall/blockfall/internal/model"
	"github.com/blockfall/blockfall/internal/services/catalog"
)

type ServiceSuite struct {
	suite.Suite
	catalog *catalog.Service
	random  *mocks.MockRandom
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.catalog = catalog.New()
	s.random = mocks.NewMockRandom()
}

func (s *ServiceSuite) TestDeterministicSequence() {
	// Kinds are indexed I, T, S, O, Z, L, J
	s.random.QueueIntn(0, 3, 6)
	gen := New(s.catalog, s.random)

	s.Equal(model.KindI, gen.Peek().Kind)
	s.Equal(model.KindI, gen.Take().Kind)
	s.Equal(model.KindO, gen.Take().Kind)
	s.Equal(model.KindJ, gen.Peek().Kind)
}

func (s *ServiceSuite) TestPeekDoesNotAdvance() {
	s.random.QueueIntn(2, 4)
	gen := New(s.catalog, s.random)

	s.Equal(model.KindS, gen.Peek().Kind)
	s.Equal(model.KindS, gen.Peek().Kind)
	s.Equal(model.KindS, gen.Take().Kind)
	s.Equal(model.KindZ, gen.Peek().Kind)
}

func (s *ServiceSuite) TestPiecesDoNotShareRotations() {
	s.random.QueueIntn(1, 1, 1)
	gen := New(s.catalog, s.random)

	a := gen.Take()
	b := gen.Take()
	s.Equal(a.Kind, b.Kind)

	a.Rotations[0][0][1] = 99
	s.Equal(model.KindT.ColorID(), b.Rotations[0].Cell(0, 1))
}

func (s *ServiceSuite) TestRestorePresetsLookahead() {
	gen, err := Restore(s.catalog, s.random, model.KindL)
	s.Require().NoError(err)
	s.Equal(model.KindL, gen.Peek().Kind)
	s.Equal(model.KindL, gen.Take().Kind)
}

func (s *ServiceSuite) TestRestoreUnknownKind() {
	_, err := Restore(s.catalog, s.random, model.PieceKind("X"))
	s.ErrorIs(err, model.ErrUnknownPieceKind)
}
