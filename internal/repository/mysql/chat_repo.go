package mysql

import (
	"context"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatRepository struct {
	DB *gorm.DB
}

type ChatMemberRepository struct {
	DB *gorm.DB
}

// Create 事务内建群并让群主入群
func (r *ChatRepository) Create(ctx context.Context, chat *model.Chat) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		mRepo := &ChatMemberRepository{DB: tx}
		return mRepo.Join(ctx, &model.ChatMember{ChatID: chat.ID, UserID: chat.OwnerID})
	})
}

func (r *ChatRepository) ChatByID(ctx context.Context, id uint64) (*model.Chat, error) {
	var chat model.Chat
	err := r.DB.WithContext(ctx).First(&chat, id).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepository) Update(ctx context.Context, chatID uint64, name string, isPrivate bool) error {
	return r.DB.WithContext(ctx).Model(&model.Chat{}).Where("id = ?", chatID).
		Updates(map[string]any{"name": name, "is_private": isPrivate}).Error
}

// SoftDelete 幂等软删除
func (r *ChatRepository) SoftDelete(ctx context.Context, chatID uint64) error {
	return r.DB.WithContext(ctx).Model(&model.Chat{}).Where("id = ?", chatID).
		Update("deleted", true).Error
}

// Join 幂等插入：若已存在 (chat_id, user_id) 则不报错
func (r *ChatMemberRepository) Join(ctx context.Context, member *model.ChatMember) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(member).Error
}

func (r *ChatMemberRepository) Leave(ctx context.Context, chatID, userID uint64) error {
	return r.DB.WithContext(ctx).Where("chat_id = ? AND user_id = ?", chatID, userID).
		Delete(&model.ChatMember{}).Error
}

func (r *ChatMemberRepository) ChatMemberExists(ctx context.Context, chatID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.ChatMember{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error
	return count > 0, err
}
