package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Nexus_Social/internal/model"
)

func TestIsCommunityActive(t *testing.T) {
	store := newFakeStore().
		addCommunity(model.Community{ID: 1}).
		addCommunity(model.Community{ID: 2, Deleted: true}).
		addCommunity(model.Community{ID: 3, Banned: true})
	engine := newEngine(store)

	tests := []struct {
		communityID uint64
		want        bool
	}{
		{1, true},
		{2, false},
		{3, false},
	}
	for _, tt := range tests {
		got, err := engine.IsCommunityActive(context.Background(), tt.communityID)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "community %d", tt.communityID)
	}

	_, err := engine.IsCommunityActive(context.Background(), 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// A user with no membership row is neither moderator nor owner; both checks
// answer false without failing.
func TestCommunityRoleChecks_NonMember(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addCommunity(model.Community{ID: 5, OwnerID: 2})
	engine := newEngine(store)

	moderator, err := engine.IsUserCommunityModerator(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.False(t, moderator)

	owner, err := engine.IsUserCommunityOwner(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.False(t, owner)
}

func TestIsUserCommunityModerator(t *testing.T) {
	store := newFakeStore().
		addCommunity(model.Community{ID: 5}).
		addCommunityMember(5, 1, model.CommunityRoleMember).
		addCommunityMember(5, 2, model.CommunityRoleModerator).
		addCommunityMember(5, 3, model.CommunityRoleOwner)
	engine := newEngine(store)

	tests := []struct {
		userID uint64
		want   bool
	}{
		{1, false},
		{2, true},
		{3, true}, // owner role implies moderator
	}
	for _, tt := range tests {
		got, err := engine.IsUserCommunityModerator(context.Background(), tt.userID, 5)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "user %d", tt.userID)
	}
}

func TestIsUserCommunityOwner(t *testing.T) {
	store := newFakeStore().
		addCommunity(model.Community{ID: 5, OwnerID: 2}).
		addCommunityMember(5, 1, model.CommunityRoleOwner).
		addCommunityMember(5, 2, model.CommunityRoleMember).
		addCommunityMember(5, 3, model.CommunityRoleModerator)
	engine := newEngine(store)

	tests := []struct {
		name   string
		userID uint64
		want   bool
	}{
		{"owner role, owner field elsewhere", 1, true},
		{"member role, matching owner field", 2, true},
		{"moderator role, no owner field", 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.IsUserCommunityOwner(context.Background(), tt.userID, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Membership is required even when the stored owner field matches: the owner
// field alone does not grant ownership to a non-member.
func TestIsUserCommunityOwner_OwnerFieldWithoutMembership(t *testing.T) {
	store := newFakeStore().addCommunity(model.Community{ID: 5, OwnerID: 9})
	got, err := newEngine(store).IsUserCommunityOwner(context.Background(), 9, 5)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCanUserViewCommunity_PrivateMembershipFlip(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 2}).
		addCommunity(model.Community{ID: 5, IsPrivate: true}).
		addCommunityMember(5, 1, model.CommunityRoleOwner)
	engine := newEngine(store)

	got, err := engine.CanUserViewCommunity(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.False(t, got)

	store.addCommunityMember(5, 2, model.CommunityRoleMember)

	got, err = engine.CanUserViewCommunity(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestCanUserViewCommunity(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2, SystemRole: model.SystemRoleModerator}).
		addCommunity(model.Community{ID: 10, IsPrivate: false}).
		addCommunity(model.Community{ID: 11, IsPrivate: true})
	engine := newEngine(store)

	tests := []struct {
		name        string
		actorID     uint64
		communityID uint64
		want        bool
	}{
		{"public community", 1, 10, true},
		{"private community, stranger", 1, 11, false},
		{"private community, system moderator", 2, 11, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserViewCommunity(context.Background(), tt.actorID, tt.communityID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanViewPostsAtCommunity(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2, SystemRole: model.SystemRoleAdmin}).
		addCommunity(model.Community{ID: 10, IsPrivate: false}).
		addCommunity(model.Community{ID: 11, IsPrivate: true}).
		addCommunity(model.Community{ID: 12, IsPrivate: false, Banned: true}).
		addCommunityMember(11, 3, model.CommunityRoleMember)
	store.addUser(model.User{ID: 3})
	engine := newEngine(store)

	tests := []struct {
		name        string
		actorID     uint64
		communityID uint64
		want        bool
	}{
		{"public active community", 1, 10, true},
		{"private community, member", 3, 11, true},
		{"private community, stranger", 1, 11, false},
		{"private community, admin", 2, 11, true},
		{"banned community, stranger", 1, 12, false},
		{"banned community, admin", 2, 12, false}, // active gate applies to everyone
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanViewPostsAtCommunity(context.Background(), tt.actorID, tt.communityID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanUserCreateCommunityPost(t *testing.T) {
	store := newFakeStore().
		addCommunity(model.Community{ID: 10}).
		addCommunity(model.Community{ID: 11, Deleted: true}).
		addCommunityMember(10, 1, model.CommunityRoleModerator).
		addCommunityMember(10, 2, model.CommunityRoleMember).
		addCommunityMember(11, 1, model.CommunityRoleModerator)
	engine := newEngine(store)

	tests := []struct {
		name        string
		authorID    uint64
		communityID uint64
		want        bool
	}{
		{"moderator in active community", 1, 10, true},
		{"plain member", 2, 10, false},
		{"moderator in deleted community", 1, 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserCreateCommunityPost(context.Background(), tt.authorID, tt.communityID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanUserEditCommunity(t *testing.T) {
	store := newFakeStore().
		addCommunity(model.Community{ID: 10}).
		addCommunityMember(10, 1, model.CommunityRoleModerator).
		addCommunityMember(10, 2, model.CommunityRoleMember)
	engine := newEngine(store)

	got, err := engine.CanUserEditCommunity(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = engine.CanUserEditCommunity(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCanViewInvitationsInCommunity(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 3, SystemRole: model.SystemRoleModerator}).
		addCommunity(model.Community{ID: 10}).
		addCommunityMember(10, 2, model.CommunityRoleModerator)
	store.addUser(model.User{ID: 2})
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		want    bool
	}{
		{"stranger", 1, false},
		{"community moderator", 2, true},
		{"system moderator", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanViewInvitationsInCommunity(context.Background(), tt.actorID, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanUserDeleteCommunityInvitation(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addUser(model.User{ID: 3}).
		addCommunity(model.Community{ID: 10}).
		addCommunityMember(10, 3, model.CommunityRoleModerator)
	store.invitations[50] = &model.CommunityInvitation{ID: 50, SenderID: 1, ReceiverID: 2, CommunityID: 10}
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		want    bool
	}{
		{"sender", 1, true},
		{"receiver", 2, false},
		{"community moderator", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserDeleteCommunityInvitation(context.Background(), tt.actorID, 50)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := engine.CanUserDeleteCommunityInvitation(context.Background(), 1, 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
