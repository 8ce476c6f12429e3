package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks issued session tokens so they can be revoked on logout.
type SessionStore interface {
	Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID, tokenID string) error
}

type redisSessionStore struct {
	redisClient *redis.Client
}

func NewRedisSessionStore(redisClient *redis.Client) SessionStore {
	return &redisSessionStore{redisClient: redisClient}
}

func sessionKey(userID, tokenID string) string {
	return fmt.Sprintf("session_token:%s:%s", userID, tokenID)
}

func (s *redisSessionStore) Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	return s.redisClient.Set(ctx, sessionKey(userID, tokenID), "1", ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, userID, tokenID string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, userID, tokenID string) error {
	return s.redisClient.Del(ctx, sessionKey(userID, tokenID)).Err()
}
