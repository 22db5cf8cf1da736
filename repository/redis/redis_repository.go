package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	NextSequence(ctx context.Context, name string) (int64, error)
	SetSession(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (int64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct {
	client goredis.Cmdable
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client goredis.Cmdable) Repository {
	return &redis{client: client}
}

// NextSequence atomically increments the named counter and returns the new value.
// The first id handed out for a sequence is 1.
func (r *redis) NextSequence(ctx context.Context, name string) (int64, error) {
	id, err := r.client.Incr(ctx, sequenceKey(name)).Result()
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}
	return id, nil
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (int64, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Int64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}

func sequenceKey(name string) string {
	return "sequence:" + name
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
