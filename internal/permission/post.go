package permission

import (
	"context"
	"fmt"

	"Nexus_Social/internal/model"
)

// PostOwnerKind tags the wall a post lives on.
type PostOwnerKind int

const (
	PostOwnerUser PostOwnerKind = iota + 1
	PostOwnerCommunity
)

// PostOwner identifies the single owner context of a post: a user wall or a
// community wall, never both.
type PostOwner struct {
	Kind PostOwnerKind
	ID   uint64
}

// OwnerOfPost derives the tagged owner from the post's nullable owner pair.
// A post violating the exactly-one-owner invariant is a data integrity
// failure, not a false answer.
func OwnerOfPost(post *model.Post) (PostOwner, error) {
	switch {
	case post.OwnerUserID != nil && post.OwnerCommunityID == nil:
		return PostOwner{Kind: PostOwnerUser, ID: *post.OwnerUserID}, nil
	case post.OwnerCommunityID != nil && post.OwnerUserID == nil:
		return PostOwner{Kind: PostOwnerCommunity, ID: *post.OwnerCommunityID}, nil
	default:
		return PostOwner{}, fmt.Errorf("post %d has no single owner context", post.ID)
	}
}

// IsUserPostOwner reports whether the actor owns the wall of a user-wall
// post. Community-wall posts have no user owner.
func (e *Engine) IsUserPostOwner(actorID uint64, post *model.Post) bool {
	return post.OwnerUserID != nil && *post.OwnerUserID == actorID
}

// CanUserViewPost allows viewing when the post is not deleted and the actor
// may view the owning wall: the community wall for community posts, the user
// wall otherwise.
func (e *Engine) CanUserViewPost(ctx context.Context, actorID, postID uint64) (bool, error) {
	post, err := e.Posts.PostByID(ctx, postID)
	if err != nil {
		return false, err
	}
	return e.canViewPost(ctx, actorID, post)
}

func (e *Engine) canViewPost(ctx context.Context, actorID uint64, post *model.Post) (bool, error) {
	if post.Deleted {
		return false, nil
	}
	owner, err := OwnerOfPost(post)
	if err != nil {
		return false, err
	}
	switch owner.Kind {
	case PostOwnerCommunity:
		return e.CanViewPostsAtCommunity(ctx, actorID, owner.ID)
	case PostOwnerUser:
		return e.CanViewPostsAtUser(ctx, actorID, owner.ID)
	default:
		return false, fmt.Errorf("post %d: unknown owner kind %d", post.ID, owner.Kind)
	}
}

// CanUserModifyPost allows editing when the actor authored the post and may
// view it.
func (e *Engine) CanUserModifyPost(ctx context.Context, actorID, postID uint64) (bool, error) {
	post, err := e.Posts.PostByID(ctx, postID)
	if err != nil {
		return false, err
	}
	return e.canModifyPost(ctx, actorID, post)
}

func (e *Engine) canModifyPost(ctx context.Context, actorID uint64, post *model.Post) (bool, error) {
	if post.AuthorID != actorID {
		return false, nil
	}
	return e.canViewPost(ctx, actorID, post)
}

// CanUserDeletePost allows deleting when the actor may modify the post, or is
// a system moderator; community posts additionally yield to moderators of the
// owning community, user posts to the wall owner.
func (e *Engine) CanUserDeletePost(ctx context.Context, actorID, postID uint64) (bool, error) {
	post, err := e.Posts.PostByID(ctx, postID)
	if err != nil {
		return false, err
	}
	modify, err := e.canModifyPost(ctx, actorID, post)
	if err != nil {
		return false, err
	}
	if modify {
		return true, nil
	}
	moderator, err := e.IsUserSystemModerator(ctx, actorID)
	if err != nil {
		return false, err
	}
	if moderator {
		return true, nil
	}
	owner, err := OwnerOfPost(post)
	if err != nil {
		return false, err
	}
	switch owner.Kind {
	case PostOwnerCommunity:
		return e.IsUserCommunityModerator(ctx, actorID, owner.ID)
	case PostOwnerUser:
		return owner.ID == actorID, nil
	default:
		return false, fmt.Errorf("post %d: unknown owner kind %d", post.ID, owner.Kind)
	}
}

// CanUserModifyPostComment allows editing when the actor authored the comment
// and may view the parent post.
func (e *Engine) CanUserModifyPostComment(ctx context.Context, actorID, commentID uint64) (bool, error) {
	comment, err := e.PostComments.PostCommentByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	if comment.AuthorID != actorID {
		return false, nil
	}
	return e.CanUserViewPost(ctx, actorID, comment.PostID)
}

// CanUserDeletePostComment allows deleting when the actor may modify the
// comment, or is a system moderator; comments under community posts
// additionally yield to moderators of the owning community, comments under
// user posts to the wall owner.
func (e *Engine) CanUserDeletePostComment(ctx context.Context, actorID, commentID uint64) (bool, error) {
	comment, err := e.PostComments.PostCommentByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	post, err := e.Posts.PostByID(ctx, comment.PostID)
	if err != nil {
		return false, err
	}
	if comment.AuthorID == actorID {
		view, err := e.canViewPost(ctx, actorID, post)
		if err != nil {
			return false, err
		}
		if view {
			return true, nil
		}
	}
	moderator, err := e.IsUserSystemModerator(ctx, actorID)
	if err != nil {
		return false, err
	}
	if moderator {
		return true, nil
	}
	owner, err := OwnerOfPost(post)
	if err != nil {
		return false, err
	}
	switch owner.Kind {
	case PostOwnerCommunity:
		return e.IsUserCommunityModerator(ctx, actorID, owner.ID)
	case PostOwnerUser:
		return owner.ID == actorID, nil
	default:
		return false, fmt.Errorf("post %d: unknown owner kind %d", post.ID, owner.Kind)
	}
}
