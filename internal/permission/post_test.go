package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Nexus_Social/internal/model"
)

func TestOwnerOfPost(t *testing.T) {
	owner, err := OwnerOfPost(&model.Post{ID: 1, OwnerUserID: uptr(7)})
	require.NoError(t, err)
	assert.Equal(t, PostOwner{Kind: PostOwnerUser, ID: 7}, owner)

	owner, err = OwnerOfPost(&model.Post{ID: 2, OwnerCommunityID: uptr(5)})
	require.NoError(t, err)
	assert.Equal(t, PostOwner{Kind: PostOwnerCommunity, ID: 5}, owner)

	_, err = OwnerOfPost(&model.Post{ID: 3})
	require.Error(t, err)

	_, err = OwnerOfPost(&model.Post{ID: 4, OwnerUserID: uptr(7), OwnerCommunityID: uptr(5)})
	require.Error(t, err)
}

func TestIsUserPostOwner(t *testing.T) {
	engine := newEngine(newFakeStore())

	assert.True(t, engine.IsUserPostOwner(7, &model.Post{OwnerUserID: uptr(7)}))
	assert.False(t, engine.IsUserPostOwner(8, &model.Post{OwnerUserID: uptr(7)}))
	assert.False(t, engine.IsUserPostOwner(7, &model.Post{OwnerCommunityID: uptr(7)}))
}

// User-wall post owned by user 10, authored by user 20, wall private.
func userWallStore() *fakeStore {
	store := newFakeStore().
		addUser(model.User{ID: 10, PostsPublic: false}).
		addUser(model.User{ID: 20, PostsPublic: false}).
		addUser(model.User{ID: 30, PostsPublic: false})
	store.posts[100] = &model.Post{ID: 100, AuthorID: 20, OwnerUserID: uptr(10)}
	return store
}

func TestCanUserViewPost_UserWall(t *testing.T) {
	t.Run("stranger cannot view a private wall", func(t *testing.T) {
		got, err := newEngine(userWallStore()).CanUserViewPost(context.Background(), 30, 100)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("wall owner always views own wall", func(t *testing.T) {
		got, err := newEngine(userWallStore()).CanUserViewPost(context.Background(), 10, 100)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("author without friendship cannot view", func(t *testing.T) {
		got, err := newEngine(userWallStore()).CanUserViewPost(context.Background(), 20, 100)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("author with friendship views", func(t *testing.T) {
		store := userWallStore().addFriendship(10, 20)
		got, err := newEngine(store).CanUserViewPost(context.Background(), 20, 100)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("author views when wall is public", func(t *testing.T) {
		store := userWallStore()
		store.users[10].PostsPublic = true
		got, err := newEngine(store).CanUserViewPost(context.Background(), 20, 100)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("deleted post is invisible even to the wall owner", func(t *testing.T) {
		store := userWallStore()
		store.posts[100].Deleted = true
		got, err := newEngine(store).CanUserViewPost(context.Background(), 10, 100)
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestCanUserViewPost_CommunityWall(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addCommunity(model.Community{ID: 5, IsPrivate: true}).
		addCommunityMember(5, 1, model.CommunityRoleMember)
	store.posts[100] = &model.Post{ID: 100, AuthorID: 1, OwnerCommunityID: uptr(5)}
	engine := newEngine(store)

	got, err := engine.CanUserViewPost(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = engine.CanUserViewPost(context.Background(), 2, 100)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCanUserModifyPost(t *testing.T) {
	store := userWallStore().addFriendship(10, 20)
	engine := newEngine(store)

	// Author with view access may edit.
	got, err := engine.CanUserModifyPost(context.Background(), 20, 100)
	require.NoError(t, err)
	assert.True(t, got)

	// The wall owner is not the author and may not edit.
	got, err = engine.CanUserModifyPost(context.Background(), 10, 100)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCanUserDeletePost_UserWall(t *testing.T) {
	store := userWallStore().addUser(model.User{ID: 40, SystemRole: model.SystemRoleModerator})
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		want    bool
	}{
		{"wall owner deletes any wall post", 10, true},
		{"author without view access", 20, false},
		{"stranger", 30, false},
		{"system moderator", 40, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserDeletePost(context.Background(), tt.actorID, 100)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanUserDeletePost_CommunityWall(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addUser(model.User{ID: 3}).
		addUser(model.User{ID: 4, SystemRole: model.SystemRoleModerator}).
		addCommunity(model.Community{ID: 5}).
		addCommunityMember(5, 1, model.CommunityRoleMember).
		addCommunityMember(5, 2, model.CommunityRoleMember).
		addCommunityMember(5, 3, model.CommunityRoleModerator)
	store.posts[100] = &model.Post{ID: 100, AuthorID: 1, OwnerCommunityID: uptr(5)}
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		want    bool
	}{
		{"author", 1, true},
		{"plain member", 2, false},
		{"community moderator who is not the author", 3, true},
		{"system moderator", 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserDeletePost(context.Background(), tt.actorID, 100)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanUserModifyPostComment(t *testing.T) {
	store := userWallStore().addFriendship(10, 30)
	store.comments[200] = &model.PostComment{ID: 200, PostID: 100, AuthorID: 30}
	engine := newEngine(store)

	// Comment author with view access may edit.
	got, err := engine.CanUserModifyPostComment(context.Background(), 30, 200)
	require.NoError(t, err)
	assert.True(t, got)

	// Someone else's comment.
	got, err = engine.CanUserModifyPostComment(context.Background(), 10, 200)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCanUserDeletePostComment_UserWall(t *testing.T) {
	store := userWallStore().
		addUser(model.User{ID: 40, SystemRole: model.SystemRoleModerator}).
		addFriendship(10, 30)
	store.comments[200] = &model.PostComment{ID: 200, PostID: 100, AuthorID: 30}
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		want    bool
	}{
		{"comment author", 30, true},
		{"wall owner", 10, true},
		{"post author without view access", 20, false},
		{"system moderator", 40, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserDeletePostComment(context.Background(), tt.actorID, 200)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanUserDeletePostComment_CommunityWall(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addUser(model.User{ID: 3}).
		addCommunity(model.Community{ID: 5}).
		addCommunityMember(5, 1, model.CommunityRoleMember).
		addCommunityMember(5, 2, model.CommunityRoleMember).
		addCommunityMember(5, 3, model.CommunityRoleModerator)
	store.posts[100] = &model.Post{ID: 100, AuthorID: 2, OwnerCommunityID: uptr(5)}
	store.comments[200] = &model.PostComment{ID: 200, PostID: 100, AuthorID: 1}
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		want    bool
	}{
		{"comment author", 1, true},
		{"post author, plain member", 2, false},
		{"community moderator", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserDeletePostComment(context.Background(), tt.actorID, 200)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
