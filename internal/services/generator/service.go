package generator

import (
	"github.com/blockfall/blockfall/internal/dependencies/random"
	"github.com/blockfall/blockfall/internal/model"
	"github.com/blockfall/blockfall/internal/services/catalog"
)

// Service produces pieces in uniformly random order with a one-piece
// lookahead. Randomness comes through the injected random.Random, so a
// mocked source makes the sequence deterministic for tests. Every piece
// carries a fresh copy of the catalog's rotation list.
type Service struct {
	catalog *catalog.Service
	random  random.Random
	next    model.Piece
}

// New creates a generator with a randomly chosen first lookahead piece
func New(cat *catalog.Service, rnd random.Random) *Service {
	s := &Service{
		catalog: cat,
		random:  rnd,
	}
	s.next = s.draw()
	return s
}

// Restore creates a generator whose lookahead piece has the given kind.
// Used when rebuilding an engine from a stored snapshot.
func Restore(cat *catalog.Service, rnd random.Random, nextKind model.PieceKind) (*Service, error) {
	next, err := cat.Piece(nextKind)
	if err != nil {
		return nil, err
	}
	return &Service{
		catalog: cat,
		random:  rnd,
		next:    next,
	}, nil
}

// Peek returns the piece that will spawn after the current one, without
// advancing the sequence
func (s *Service) Peek() model.Piece {
	return s.next
}

// Take returns the piece to spawn now and advances the internal sequence
func (s *Service) Take() model.Piece {
	current := s.next
	s.next = s.draw()
	return current
}

func (s *Service) draw() model.Piece {
	kind := model.Kinds[s.random.Intn(len(model.Kinds))]
	// The catalog cannot fail for a canonical kind
	piece, _ := s.catalog.Piece(kind)
	return piece
}
