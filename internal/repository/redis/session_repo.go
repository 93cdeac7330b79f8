package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	SessionTokenPrefix = "login:user:token"
	SessionTokenExpire = 30 * time.Minute
)

// SessionRepository 单点登录的 access token 存储
type SessionRepository struct{}

func sessionKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", SessionTokenPrefix, userID)
}

func (r *SessionRepository) AddToken(ctx context.Context, userID uint64, token string) error {
	if err := Client.Set(ctx, sessionKey(userID), token, SessionTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetToken(ctx context.Context, userID uint64) (string, error) {
	token, err := Client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// ExtendToken 校验通过后滑动续期
func (r *SessionRepository) ExtendToken(ctx context.Context, userID uint64) error {
	if _, err := Client.Expire(ctx, sessionKey(userID), SessionTokenExpire).Result(); err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) DeleteToken(ctx context.Context, userID uint64) error {
	if err := Client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
