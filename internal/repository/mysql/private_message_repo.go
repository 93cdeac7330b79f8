package mysql

import (
	"context"
	"time"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
)

type PrivateMessageRepository struct {
	DB *gorm.DB
}

func (r *PrivateMessageRepository) Create(ctx context.Context, msg *model.PrivateMessage) error {
	return r.DB.WithContext(ctx).Create(msg).Error
}

func (r *PrivateMessageRepository) PrivateMessageByID(ctx context.Context, id uint64) (*model.PrivateMessage, error) {
	var msg model.PrivateMessage
	err := r.DB.WithContext(ctx).First(&msg, id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListConversation 双向会话流，id 递减游标
func (r *PrivateMessageRepository) ListConversation(ctx context.Context, userID, peerID uint64, cursor uint64, limit int) ([]model.PrivateMessage, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q := r.DB.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.PrivateMessage
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

// MarkRead 只有接收方读到才落 read_at，幂等
func (r *PrivateMessageRepository) MarkRead(ctx context.Context, id uint64, readAt time.Time) error {
	return r.DB.WithContext(ctx).Model(&model.PrivateMessage{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", readAt).Error
}

func (r *PrivateMessageRepository) UpdateBody(ctx context.Context, id uint64, body string) error {
	return r.DB.WithContext(ctx).Model(&model.PrivateMessage{}).Where("id = ?", id).
		Update("body", body).Error
}

func (r *PrivateMessageRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.PrivateMessage{}, id).Error
}
