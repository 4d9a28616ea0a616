package storage

import (
	"context"

	"github.com/blockfall/blockfall/internal/model"
)

// Storage defines the interface for session persistence
type Storage interface {
	// SaveSession stores or replaces a session snapshot
	SaveSession(ctx context.Context, snap *model.Snapshot) error

	// GetSession retrieves a session snapshot by id
	GetSession(ctx context.Context, id model.SessionID) (*model.Snapshot, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, id model.SessionID) error

	// ListSessions returns the ids of all stored sessions
	ListSessions(ctx context.Context) ([]model.SessionID, error)
}
