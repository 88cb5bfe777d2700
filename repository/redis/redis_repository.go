package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionPrefix  = "session:"
	seedVersionKey = "seed_version"
)

// RedisRepository keeps login sessions and the applied schema version.
type RedisRepository interface {
	SetSession(ctx context.Context, sessionID string, userID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetSeedVersion(ctx context.Context) (string, error)
	SetSeedVersion(ctx context.Context, version string) error
}

// ErrSessionNotFound is returned when a token id has no live session.
var ErrSessionNotFound = errors.New("session not found")

type redis struct {
	client goredis.Cmdable
}

func NewRepository(client goredis.Cmdable) RedisRepository {
	return &redis{client: client}
}

// SetSession points a token id at its user until ttl passes.
func (r *redis) SetSession(ctx context.Context, sessionID string, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, sessionPrefix+sessionID).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrSessionNotFound
	}
	return val, err
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// GetSeedVersion returns the recorded schema/seed tag, or "" when never recorded.
func (r *redis) GetSeedVersion(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, seedVersionKey).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	return val, err
}

func (r *redis) SetSeedVersion(ctx context.Context, version string) error {
	return r.client.Set(ctx, seedVersionKey, version, 0).Err()
}
