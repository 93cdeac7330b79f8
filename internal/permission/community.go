package permission

import (
	"context"

	"Nexus_Social/internal/model"
)

// IsCommunityActive reports whether the community is neither deleted nor
// banned.
func (e *Engine) IsCommunityActive(ctx context.Context, communityID uint64) (bool, error) {
	community, err := e.Communities.CommunityByID(ctx, communityID)
	if err != nil {
		return false, err
	}
	return community.Active(), nil
}

// IsUserCommunityMember reports whether a membership row exists for the pair.
func (e *Engine) IsUserCommunityMember(ctx context.Context, userID, communityID uint64) (bool, error) {
	member, err := e.CommunityMembers.CommunityMemberByID(ctx, communityID, userID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

// IsUserCommunityModerator reports whether the user is a member with the
// moderator or owner role. Non-members are never moderators.
func (e *Engine) IsUserCommunityModerator(ctx context.Context, userID, communityID uint64) (bool, error) {
	member, err := e.CommunityMembers.CommunityMemberByID(ctx, communityID, userID)
	if err != nil {
		return false, err
	}
	return member != nil && member.Role >= model.CommunityRoleModerator, nil
}

// IsUserCommunityOwner reports whether the user is a member and either holds
// the owner role or matches the community's stored owner id. Both the role
// and the owner field are authoritative; either satisfies the second clause,
// but membership is required regardless.
func (e *Engine) IsUserCommunityOwner(ctx context.Context, userID, communityID uint64) (bool, error) {
	member, err := e.CommunityMembers.CommunityMemberByID(ctx, communityID, userID)
	if err != nil {
		return false, err
	}
	if member == nil {
		return false, nil
	}
	if member.Role == model.CommunityRoleOwner {
		return true, nil
	}
	community, err := e.Communities.CommunityByID(ctx, communityID)
	if err != nil {
		return false, err
	}
	return community.OwnerID == userID, nil
}

// CanUserViewCommunity allows viewing when the community is not private, the
// actor is a member, or the actor is a system moderator.
func (e *Engine) CanUserViewCommunity(ctx context.Context, actorID, communityID uint64) (bool, error) {
	community, err := e.Communities.CommunityByID(ctx, communityID)
	if err != nil {
		return false, err
	}
	if !community.IsPrivate {
		return true, nil
	}
	member, err := e.IsUserCommunityMember(ctx, actorID, communityID)
	if err != nil {
		return false, err
	}
	if member {
		return true, nil
	}
	return e.IsUserSystemModerator(ctx, actorID)
}

// CanUserEditCommunity allows editing when the actor is a community member
// holding the moderator or owner role.
func (e *Engine) CanUserEditCommunity(ctx context.Context, actorID, communityID uint64) (bool, error) {
	return e.IsUserCommunityModerator(ctx, actorID, communityID)
}

// CanViewPostsAtCommunity allows viewing a community's wall when the
// community is not private, the actor is a member, or the actor is a system
// moderator — and the community is active.
func (e *Engine) CanViewPostsAtCommunity(ctx context.Context, actorID, communityID uint64) (bool, error) {
	community, err := e.Communities.CommunityByID(ctx, communityID)
	if err != nil {
		return false, err
	}
	if !community.Active() {
		return false, nil
	}
	if !community.IsPrivate {
		return true, nil
	}
	member, err := e.IsUserCommunityMember(ctx, actorID, communityID)
	if err != nil {
		return false, err
	}
	if member {
		return true, nil
	}
	return e.IsUserSystemModerator(ctx, actorID)
}

// CanUserCreateCommunityPost allows posting on a community wall when the
// author is a community moderator and the community is active.
func (e *Engine) CanUserCreateCommunityPost(ctx context.Context, authorID, communityID uint64) (bool, error) {
	moderator, err := e.IsUserCommunityModerator(ctx, authorID, communityID)
	if err != nil {
		return false, err
	}
	if !moderator {
		return false, nil
	}
	return e.IsCommunityActive(ctx, communityID)
}

// CanViewInvitationsInCommunity allows listing a community's invitations when
// the actor is a community moderator or a system moderator.
func (e *Engine) CanViewInvitationsInCommunity(ctx context.Context, actorID, communityID uint64) (bool, error) {
	moderator, err := e.IsUserCommunityModerator(ctx, actorID, communityID)
	if err != nil {
		return false, err
	}
	if moderator {
		return true, nil
	}
	return e.IsUserSystemModerator(ctx, actorID)
}

// CanUserDeleteCommunityInvitation allows deleting when the actor sent the
// invitation or moderates the invitation's community.
func (e *Engine) CanUserDeleteCommunityInvitation(ctx context.Context, actorID, invitationID uint64) (bool, error) {
	invitation, err := e.Invitations.InvitationByID(ctx, invitationID)
	if err != nil {
		return false, err
	}
	if invitation.SenderID == actorID {
		return true, nil
	}
	return e.IsUserCommunityModerator(ctx, actorID, invitation.CommunityID)
}
