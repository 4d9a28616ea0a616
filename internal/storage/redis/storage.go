package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blockfall/blockfall/internal/model"
	"github.com/blockfall/blockfall/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Snapshots are stored as JSON with a session TTL, so abandoned games
// expire on their own.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	// Pipeline the snapshot write and the index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, sessionKey(snap.ID), data, s.cfg.SessionTTL)
	pipe.SAdd(ctx, sessionIndexKey(), string(snap.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Snapshot, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, sessionIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListSessions(ctx context.Context) ([]model.SessionID, error) {
	members, err := s.client.SMembers(ctx, sessionIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]model.SessionID, 0, len(members))
	for _, m := range members {
		// The index can outlive an expired snapshot; drop stale entries
		exists, err := s.client.Exists(ctx, sessionKey(model.SessionID(m))).Result()
		if err != nil {
			return nil, err
		}
		if exists == 0 {
			_ = s.client.SRem(ctx, sessionIndexKey(), m).Err()
			continue
		}
		ids = append(ids, model.SessionID(m))
	}
	return ids, nil
}
