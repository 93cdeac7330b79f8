package mysql

import (
	"context"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepository struct {
	DB *gorm.DB
}

// Create 幂等插入：同一 (sender, receiver, community) 只保留一条
func (r *InvitationRepository) Create(ctx context.Context, inv *model.CommunityInvitation) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "sender_id"}, {Name: "receiver_id"}, {Name: "community_id"},
		},
		DoNothing: true,
	}).Create(inv).Error
}

func (r *InvitationRepository) InvitationByID(ctx context.Context, id uint64) (*model.CommunityInvitation, error) {
	var inv model.CommunityInvitation
	err := r.DB.WithContext(ctx).First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) ListByCommunity(ctx context.Context, communityID uint64) ([]model.CommunityInvitation, error) {
	var list []model.CommunityInvitation
	err := r.DB.WithContext(ctx).Where("community_id = ?", communityID).
		Order("id desc").Find(&list).Error
	return list, err
}

func (r *InvitationRepository) ListByReceiver(ctx context.Context, receiverID uint64) ([]model.CommunityInvitation, error) {
	var list []model.CommunityInvitation
	err := r.DB.WithContext(ctx).Where("receiver_id = ?", receiverID).
		Order("id desc").Find(&list).Error
	return list, err
}

// Delete 幂等删除
func (r *InvitationRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.CommunityInvitation{}, id).Error
}
