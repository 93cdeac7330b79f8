package mysql

import (
	"context"
	"errors"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityMemberRepository struct {
	DB *gorm.DB
}

// Join 幂等插入：若已存在 (community_id, user_id) 则不报错
func (r *CommunityMemberRepository) Join(ctx context.Context, member *model.CommunityMember) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(member).Error
}

func (r *CommunityMemberRepository) Leave(ctx context.Context, communityID, userID uint64) error {
	return r.DB.WithContext(ctx).Where("community_id = ? AND user_id = ?", communityID, userID).
		Delete(&model.CommunityMember{}).Error
}

// CommunityMemberByID returns (nil, nil) when no membership row exists; the
// permission rules treat absence as a plain negative, not a failure.
func (r *CommunityMemberRepository) CommunityMemberByID(ctx context.Context, communityID, userID uint64) (*model.CommunityMember, error) {
	var member model.CommunityMember
	err := r.DB.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *CommunityMemberRepository) UpdateRole(ctx context.Context, communityID, userID uint64, role int) error {
	return r.DB.WithContext(ctx).Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Update("role", role).Error
}
