package mysql

import (
	"context"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

// UserByID 按 id 查询用户快照
func (r *UserRepository) UserByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("username = ? OR email = ?", username, username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(user *model.User, newPassword string) error {
	return r.DB.Model(user).Update("password", newPassword).Error
}

func (r *UserRepository) SetBanned(ctx context.Context, userID uint64, banned bool) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Update("banned", banned).Error
}

// SetDeleted 软删除，保留行以便快照查询
func (r *UserRepository) SetDeleted(ctx context.Context, userID uint64, deleted bool) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Update("deleted", deleted).Error
}

func (r *UserRepository) UpdateSettings(ctx context.Context, userID uint64, postsPublic, acceptingPrivateMsgs bool) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Updates(map[string]any{
			"posts_public":           postsPublic,
			"accepting_private_msgs": acceptingPrivateMsgs,
		}).Error
}
