package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	UnreadHashTTL   = 7 * 24 * time.Hour
	UnreadKeyPrefix = "msg:unread" // 每个用户一个 hash，field 为对端用户ID
)

// UnreadCacheRepository 私信未读数缓存。MySQL 是事实来源，这里只做加速，
// 丢失后由会话读取时回填。
type UnreadCacheRepository struct {
	ttl time.Duration
}

func NewUnreadCacheRepository() *UnreadCacheRepository {
	return &UnreadCacheRepository{ttl: UnreadHashTTL}
}

func (r *UnreadCacheRepository) unreadKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", UnreadKeyPrefix, userID)
}

// IncrUnread 收到新私信后累加 (receiver, sender) 的未读数
func (r *UnreadCacheRepository) IncrUnread(ctx context.Context, receiverID, senderID uint64) error {
	k := r.unreadKey(receiverID)
	if err := Client.HIncrBy(ctx, k, fmt.Sprintf("%d", senderID), 1).Err(); err != nil {
		return err
	}
	_ = Client.Expire(ctx, k, r.ttl).Err()
	return nil
}

// ResetUnread 读会话后清零对端计数
func (r *UnreadCacheRepository) ResetUnread(ctx context.Context, receiverID, senderID uint64) error {
	return Client.HDel(ctx, r.unreadKey(receiverID), fmt.Sprintf("%d", senderID)).Err()
}

// UnreadCount 读取对端未读数；键不存在视为 0
func (r *UnreadCacheRepository) UnreadCount(ctx context.Context, receiverID, senderID uint64) (int64, error) {
	val, err := Client.HGet(ctx, r.unreadKey(receiverID), fmt.Sprintf("%d", senderID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return val, err
}

// UnreadTotals 返回各对端的未读数
func (r *UnreadCacheRepository) UnreadTotals(ctx context.Context, receiverID uint64) (map[string]string, error) {
	return Client.HGetAll(ctx, r.unreadKey(receiverID)).Result()
}
