package mysql

import (
	"context"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// Create 事务内建社区并让创建者以 owner 角色加入
func (r *CommunityRepository) Create(ctx context.Context, c *model.Community) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		mRepo := &CommunityMemberRepository{DB: tx}
		return mRepo.Join(ctx, &model.CommunityMember{
			CommunityID: c.ID,
			UserID:      c.OwnerID,
			Role:        model.CommunityRoleOwner,
		})
	})
}

func (r *CommunityRepository) CommunityByID(ctx context.Context, id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.WithContext(ctx).First(&community, id).Error
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *CommunityRepository) List(ctx context.Context, offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.WithContext(ctx).Where("deleted = false AND banned = false").
		Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *CommunityRepository) Update(ctx context.Context, communityID uint64, description string, isPrivate bool) error {
	return r.DB.WithContext(ctx).Model(&model.Community{}).Where("id = ?", communityID).
		Updates(map[string]any{"description": description, "is_private": isPrivate}).Error
}

// SoftDelete 幂等软删除
func (r *CommunityRepository) SoftDelete(ctx context.Context, communityID uint64) error {
	return r.DB.WithContext(ctx).Model(&model.Community{}).Where("id = ?", communityID).
		Update("deleted", true).Error
}

func (r *CommunityRepository) SetBanned(ctx context.Context, communityID uint64, banned bool) error {
	return r.DB.WithContext(ctx).Model(&model.Community{}).Where("id = ?", communityID).
		Update("banned", banned).Error
}
