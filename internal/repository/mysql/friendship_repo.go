package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendshipRepository struct {
	DB *gorm.DB
}

type OutboxRepository struct {
	DB *gorm.DB
}

// FriendshipExists 双向查询：(a,b) 或 (b,a) 任一方向存在即为好友
func (r *FriendshipRepository) FriendshipExists(ctx context.Context, userA, userB uint64) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&model.Friendship{}).
		Where("(user_a_id = ? AND user_b_id = ?) OR (user_a_id = ? AND user_b_id = ?)",
			userA, userB, userB, userA).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateRequest 幂等插入好友请求
func (r *FriendshipRepository) CreateRequest(ctx context.Context, req *model.FriendshipRequest) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sender_id"}, {Name: "receiver_id"}},
		DoNothing: true,
	}).Create(req).Error
}

func (r *FriendshipRepository) RequestByID(ctx context.Context, id uint64) (*model.FriendshipRequest, error) {
	var req model.FriendshipRequest
	err := r.DB.WithContext(ctx).First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *FriendshipRepository) ListRequestsForReceiver(ctx context.Context, receiverID uint64) ([]model.FriendshipRequest, error) {
	var list []model.FriendshipRequest
	err := r.DB.WithContext(ctx).Where("receiver_id = ?", receiverID).
		Order("id desc").Find(&list).Error
	return list, err
}

func (r *FriendshipRepository) DeleteRequest(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.FriendshipRequest{}, id).Error
}

// AcceptRequest 事务内删除请求、建立好友关系并写 outbox。
// 如果关系已存在则只清理请求，返回 changed=false。
func (r *FriendshipRepository) AcceptRequest(ctx context.Context, requestID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req model.FriendshipRequest
		// select for update 避免并发重复接受
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, requestID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.FriendshipRequest{}, req.ID).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&model.Friendship{}).
			Where("(user_a_id = ? AND user_b_id = ?) OR (user_a_id = ? AND user_b_id = ?)",
				req.SenderID, req.ReceiverID, req.ReceiverID, req.SenderID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			changed = false
			return nil
		}

		if err := tx.Create(&model.Friendship{
			UserAID: req.SenderID,
			UserBID: req.ReceiverID,
		}).Error; err != nil {
			return err
		}
		changed = true
		return insertOutbox(tx, "friend_accept", req.ReceiverID, req.SenderID)
	})
	return changed, err
}

// Unfriend 删除任一方向的关系，幂等
func (r *FriendshipRepository) Unfriend(ctx context.Context, userA, userB uint64) (bool, error) {
	tx := r.DB.WithContext(ctx).
		Where("(user_a_id = ? AND user_b_id = ?) OR (user_a_id = ? AND user_b_id = ?)",
			userA, userB, userB, userA).
		Delete(&model.Friendship{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *FriendshipRepository) ListFriends(ctx context.Context, userID uint64, cursor uint64, limit int) ([]model.Friendship, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.WithContext(ctx).Model(&model.Friendship{}).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.Friendship
	if err := q.Order("id DESC").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	var next uint64
	if len(rows) > limit {
		next = rows[limit-1].ID
		rows = rows[:limit]
	}
	return rows, next, nil
}

// InsertEvent 在调用方自己的事务外写一条通知事件
func (r *OutboxRepository) InsertEvent(ctx context.Context, event string, actorID, subjectID uint64) error {
	return insertOutbox(r.DB.WithContext(ctx), event, actorID, subjectID)
}

// 插入outbox事件表
func insertOutbox(tx *gorm.DB, event string, actorID, subjectID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"subject":    subjectID,
	})
	ob := &model.NotificationOutbox{
		EventType: event,
		ActorID:   actorID,
		SubjectID: subjectID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}

// List outbox查询
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.NotificationOutbox, error) {
	var list []model.NotificationOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RetryUpdate outbox记录消息失败重试
func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.NotificationOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// SuccessUpdate outbox成功记录消息更新
func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.NotificationOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}

// RequestBetween 查询两人之间的未决请求（任一方向）
func (r *FriendshipRepository) RequestBetween(ctx context.Context, userA, userB uint64) (*model.FriendshipRequest, error) {
	var req model.FriendshipRequest
	err := r.DB.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}
