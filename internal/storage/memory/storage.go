package memory

import (
	"context"
	"sync"

	"github.com/blockfall/blockfall/internal/model"
	"github.com/blockfall/blockfall/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu       sync.RWMutex
	sessions map[model.SessionID]*model.Snapshot
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionID]*model.Snapshot),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, snap *model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[snap.ID] = snap
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return snap, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]model.SessionID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.SessionID, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids, nil
}
