package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "user_sessions_"

// RedisSessionStore keeps each user's sessions under one string key.
// It satisfies booking.Store.
type RedisSessionStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisClient dials addr and pings it before returning.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w: %w", domain.ErrCollaboratorUnavailable, err)
	}
	return rdb, nil
}

func NewRedisSessionStore(rdb *redis.Client, prefix string) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, prefix: prefix}
}

func (s *RedisSessionStore) key(userID string) string {
	return s.prefix + sessionKeyPrefix + userID
}

func (s *RedisSessionStore) GetSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	raw, err := s.rdb.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return []domain.Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading sessions: %w: %w", domain.ErrCollaboratorUnavailable, err)
	}
	return decodeSessions(raw)
}

func (s *RedisSessionStore) PutSessions(ctx context.Context, userID string, sessions []domain.Session) error {
	raw, err := encodeSessions(sessions)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("writing sessions: %w: %w", domain.ErrCollaboratorUnavailable, err)
	}
	return nil
}
