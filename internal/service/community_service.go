package service

import (
	"context"

	"Nexus_Social/internal/model"
	"Nexus_Social/internal/permission"
	"Nexus_Social/internal/repository/mysql"
)

type CommunityService struct {
	repo       *mysql.CommunityRepository
	memberRepo *mysql.CommunityMemberRepository
	invRepo    *mysql.InvitationRepository
	outboxRepo *mysql.OutboxRepository
	engine     *permission.Engine
}

func NewCommunityService(engine *permission.Engine) *CommunityService {
	return &CommunityService{
		repo:       &mysql.CommunityRepository{DB: mysql.DB},
		memberRepo: &mysql.CommunityMemberRepository{DB: mysql.DB},
		invRepo:    &mysql.InvitationRepository{DB: mysql.DB},
		outboxRepo: &mysql.OutboxRepository{DB: mysql.DB},
		engine:     engine,
	}
}

// Create 建社区，创建者自动成为 owner 成员
func (s *CommunityService) Create(ctx context.Context, ownerID uint64, name, description string, isPrivate bool) (*model.Community, error) {
	if name == "" {
		return nil, ErrInvalidArgument
	}
	c := &model.Community{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		IsPrivate:   isPrivate,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommunityService) Get(ctx context.Context, actorID, communityID uint64) (*model.Community, error) {
	ok, err := s.engine.CanUserViewCommunity(ctx, actorID, communityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.repo.CommunityByID(ctx, communityID)
}

func (s *CommunityService) List(ctx context.Context, offset, limit int) ([]model.Community, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *CommunityService) Update(ctx context.Context, actorID, communityID uint64, description string, isPrivate bool) error {
	ok, err := s.engine.CanUserEditCommunity(ctx, actorID, communityID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.repo.Update(ctx, communityID, description, isPrivate)
}

// Delete 只有 owner 或平台管理员能解散社区
func (s *CommunityService) Delete(ctx context.Context, actorID, communityID uint64) error {
	owner, err := s.engine.IsUserCommunityOwner(ctx, actorID, communityID)
	if err != nil {
		return err
	}
	if !owner {
		mod, err := s.engine.IsUserSystemModerator(ctx, actorID)
		if err != nil {
			return err
		}
		if !mod {
			return ErrForbidden
		}
	}
	return s.repo.SoftDelete(ctx, communityID)
}

// SetBanned 平台管理员封禁/解封社区
func (s *CommunityService) SetBanned(ctx context.Context, actorID, communityID uint64, banned bool) error {
	mod, err := s.engine.IsUserSystemModerator(ctx, actorID)
	if err != nil {
		return err
	}
	if !mod {
		return ErrForbidden
	}
	return s.repo.SetBanned(ctx, communityID, banned)
}

// Join 公开社区可直接加入，私有社区只能通过邀请
func (s *CommunityService) Join(ctx context.Context, actorID, communityID uint64) error {
	c, err := s.repo.CommunityByID(ctx, communityID)
	if err != nil {
		return err
	}
	if !c.Active() || c.IsPrivate {
		return ErrForbidden
	}
	return s.memberRepo.Join(ctx, &model.CommunityMember{
		CommunityID: communityID,
		UserID:      actorID,
		Role:        model.CommunityRoleMember,
	})
}

func (s *CommunityService) Leave(ctx context.Context, actorID, communityID uint64) error {
	return s.memberRepo.Leave(ctx, communityID, actorID)
}

// SetMemberRole owner 才能调整成员角色，且不能改 owner 自己
func (s *CommunityService) SetMemberRole(ctx context.Context, actorID, communityID, userID uint64, role int) error {
	if role < model.CommunityRoleMember || role > model.CommunityRoleModerator {
		return ErrInvalidArgument
	}
	owner, err := s.engine.IsUserCommunityOwner(ctx, actorID, communityID)
	if err != nil {
		return err
	}
	if !owner || userID == actorID {
		return ErrForbidden
	}
	return s.memberRepo.UpdateRole(ctx, communityID, userID, role)
}

// Invite 社区管理员邀请用户；重复邀请静默成功
func (s *CommunityService) Invite(ctx context.Context, actorID, communityID, receiverID uint64) error {
	mod, err := s.engine.IsUserCommunityModerator(ctx, actorID, communityID)
	if err != nil {
		return err
	}
	if !mod {
		return ErrForbidden
	}
	active, err := s.engine.IsUserActive(ctx, receiverID)
	if err != nil {
		return err
	}
	if !active {
		return ErrForbidden
	}
	if err := s.invRepo.Create(ctx, &model.CommunityInvitation{
		SenderID:    actorID,
		ReceiverID:  receiverID,
		CommunityID: communityID,
	}); err != nil {
		return err
	}
	return s.outboxRepo.InsertEvent(ctx, "community_invite", actorID, receiverID)
}

func (s *CommunityService) ListInvitations(ctx context.Context, actorID, communityID uint64) ([]model.CommunityInvitation, error) {
	ok, err := s.engine.CanViewInvitationsInCommunity(ctx, actorID, communityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.invRepo.ListByCommunity(ctx, communityID)
}

func (s *CommunityService) ListMyInvitations(ctx context.Context, actorID uint64) ([]model.CommunityInvitation, error) {
	return s.invRepo.ListByReceiver(ctx, actorID)
}

// AcceptInvitation 受邀人接受邀请后入群并删除邀请
func (s *CommunityService) AcceptInvitation(ctx context.Context, actorID, invitationID uint64) error {
	inv, err := s.invRepo.InvitationByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv.ReceiverID != actorID {
		return ErrForbidden
	}
	if err := s.memberRepo.Join(ctx, &model.CommunityMember{
		CommunityID: inv.CommunityID,
		UserID:      actorID,
		Role:        model.CommunityRoleMember,
	}); err != nil {
		return err
	}
	return s.invRepo.Delete(ctx, invitationID)
}

func (s *CommunityService) DeleteInvitation(ctx context.Context, actorID, invitationID uint64) error {
	ok, err := s.engine.CanUserDeleteCommunityInvitation(ctx, actorID, invitationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.invRepo.Delete(ctx, invitationID)
}
