package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrSessionDeleted   = errors.New("session delete failed")
)

const SessionTokenPrefix = "login:token"

// SessionRepository 记录已签发且未登出的 token（按 jti），值为 user id
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(jti string) string {
	return fmt.Sprintf("%s:%s", SessionTokenPrefix, jti)
}

func (r *SessionRepository) Add(ctx context.Context, jti string, userID uint64, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, sessionKey(jti), userID, ttl).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

// Exists 判断 token 是否仍有效（未登出、未过期）
func (r *SessionRepository) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := r.rdb.Exists(ctx, sessionKey(jti)).Result()
	if err != nil {
		return false, ErrRedisUnavailable
	}
	return n == 1, nil
}

func (r *SessionRepository) Delete(ctx context.Context, jti string) error {
	if err := r.rdb.Del(ctx, sessionKey(jti)).Err(); err != nil {
		return ErrSessionDeleted
	}
	return nil
}
