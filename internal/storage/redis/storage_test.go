package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/blockfall/blockfall/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	background := model.NewGrid(4, 3)
	background[3][1] = 5

	snap := &model.Snapshot{
		ID:            "session-1",
		Background:    background,
		Kind:          model.KindZ,
		RotationIndex: 1,
		Offset:        model.Offset{X: 4, Y: 2},
		NextKind:      model.KindL,
		Score:         150,
	}

	err := s.storage.SaveSession(s.ctx, snap)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.KindZ, retrieved.Kind)
	s.Equal(1, retrieved.RotationIndex)
	s.Equal(model.Offset{X: 4, Y: 2}, retrieved.Offset)
	s.Equal(model.KindL, retrieved.NextKind)
	s.Equal(150, retrieved.Score)
	s.Equal(5, retrieved.Background.Cell(3, 1))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionTTL() {
	snap := &model.Snapshot{ID: "session-1"}
	_ = s.storage.SaveSession(s.ctx, snap)

	ttl := s.mini.TTL(sessionKey("session-1"))
	s.True(ttl > 0, "session should have TTL")
}

func (s *StorageSuite) TestDeleteSession() {
	snap := &model.Snapshot{ID: "session-1"}
	_ = s.storage.SaveSession(s.ctx, snap)

	err := s.storage.DeleteSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StorageSuite) TestListSessions() {
	_ = s.storage.SaveSession(s.ctx, &model.Snapshot{ID: "a"})
	_ = s.storage.SaveSession(s.ctx, &model.Snapshot{ID: "b"})

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.SessionID{"a", "b"}, ids)
}

func (s *StorageSuite) TestListSessionsDropsExpiredEntries() {
	_ = s.storage.SaveSession(s.ctx, &model.Snapshot{ID: "a"})
	_ = s.storage.SaveSession(s.ctx, &model.Snapshot{ID: "b"})

	// Expire one snapshot but leave the index entry in place
	s.mini.FastForward(2 * time.Hour)
	_ = s.storage.SaveSession(s.ctx, &model.Snapshot{ID: "b"})

	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.SessionID{"b"}, ids)
}
