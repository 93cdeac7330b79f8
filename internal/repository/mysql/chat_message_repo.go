package mysql

import (
	"context"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
)

type ChatMessageRepository struct {
	DB *gorm.DB
}

func (r *ChatMessageRepository) Create(ctx context.Context, msg *model.ChatMessage) error {
	return r.DB.WithContext(ctx).Create(msg).Error
}

func (r *ChatMessageRepository) ChatMessageByID(ctx context.Context, id uint64) (*model.ChatMessage, error) {
	var msg model.ChatMessage
	err := r.DB.WithContext(ctx).First(&msg, id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListByChat 游标分页，id 递减
func (r *ChatMessageRepository) ListByChat(ctx context.Context, chatID uint64, cursor uint64, limit int) ([]model.ChatMessage, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q := r.DB.WithContext(ctx).Where("chat_id = ?", chatID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.ChatMessage
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

func (r *ChatMessageRepository) UpdateBody(ctx context.Context, id uint64, body string) error {
	return r.DB.WithContext(ctx).Model(&model.ChatMessage{}).Where("id = ?", id).
		Update("body", body).Error
}

func (r *ChatMessageRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.ChatMessage{}, id).Error
}
