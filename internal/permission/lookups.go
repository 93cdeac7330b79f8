package permission

import (
	"context"

	"Nexus_Social/internal/model"
)

// Lookup collaborators are the engine's only view of the world. Each ByID
// lookup fails with the storage layer's not-found error when the id does not
// resolve; the engine passes that error through untouched. A false predicate
// result is never reported as an error.

type UserLookup interface {
	UserByID(ctx context.Context, id uint64) (*model.User, error)
}

type ChatLookup interface {
	ChatByID(ctx context.Context, id uint64) (*model.Chat, error)
}

type ChatMemberLookup interface {
	ChatMemberExists(ctx context.Context, chatID, userID uint64) (bool, error)
}

type ChatMessageLookup interface {
	ChatMessageByID(ctx context.Context, id uint64) (*model.ChatMessage, error)
}

type CommunityLookup interface {
	CommunityByID(ctx context.Context, id uint64) (*model.Community, error)
}

// CommunityMemberLookup returns (nil, nil) when no membership row exists:
// absence is a legitimate negative answer, not a lookup failure.
type CommunityMemberLookup interface {
	CommunityMemberByID(ctx context.Context, communityID, userID uint64) (*model.CommunityMember, error)
}

type PostLookup interface {
	PostByID(ctx context.Context, id uint64) (*model.Post, error)
}

type PostCommentLookup interface {
	PostCommentByID(ctx context.Context, id uint64) (*model.PostComment, error)
}

type PrivateMessageLookup interface {
	PrivateMessageByID(ctx context.Context, id uint64) (*model.PrivateMessage, error)
}

type CommunityInvitationLookup interface {
	InvitationByID(ctx context.Context, id uint64) (*model.CommunityInvitation, error)
}

// FriendshipLookup checks both stored orientations of the pair.
type FriendshipLookup interface {
	FriendshipExists(ctx context.Context, userA, userB uint64) (bool, error)
}
