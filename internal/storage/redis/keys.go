package redis

import (
	"fmt"

	"github.com/blockfall/blockfall/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "blockfall"

// sessionKey returns the Redis key for a session snapshot
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of all session ids
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}
