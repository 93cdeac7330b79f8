package service

import (
	"context"

	"Nexus_Social/internal/model"
	"Nexus_Social/internal/permission"
	"Nexus_Social/internal/repository/mysql"
)

type PostService struct {
	repo        *mysql.PostRepository
	commentRepo *mysql.PostCommentRepository
	engine      *permission.Engine
}

func NewPostService(engine *permission.Engine) *PostService {
	return &PostService{
		repo:        &mysql.PostRepository{DB: mysql.DB},
		commentRepo: &mysql.PostCommentRepository{DB: mysql.DB},
		engine:      engine,
	}
}

// CreateUserPost 在某个用户的主页墙上发帖
func (s *PostService) CreateUserPost(ctx context.Context, authorID, wallOwnerID uint64, title, content string) (*model.Post, error) {
	if title == "" {
		return nil, ErrInvalidArgument
	}
	ok, err := s.engine.CanUserCreateUserPost(ctx, authorID, wallOwnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	post := &model.Post{
		AuthorID:    authorID,
		OwnerUserID: &wallOwnerID,
		Title:       title,
		Content:     content,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreateCommunityPost 在社区墙上发帖
func (s *PostService) CreateCommunityPost(ctx context.Context, authorID, communityID uint64, title, content string) (*model.Post, error) {
	if title == "" {
		return nil, ErrInvalidArgument
	}
	ok, err := s.engine.CanUserCreateCommunityPost(ctx, authorID, communityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	post := &model.Post{
		AuthorID:         authorID,
		OwnerCommunityID: &communityID,
		Title:            title,
		Content:          content,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, actorID, postID uint64) (*model.Post, error) {
	ok, err := s.engine.CanUserViewPost(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.repo.PostByID(ctx, postID)
}

func (s *PostService) Update(ctx context.Context, actorID, postID uint64, title, content string) error {
	ok, err := s.engine.CanUserModifyPost(ctx, actorID, postID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.repo.Update(ctx, postID, title, content)
}

func (s *PostService) Delete(ctx context.Context, actorID, postID uint64) error {
	ok, err := s.engine.CanUserDeletePost(ctx, actorID, postID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.repo.SoftDelete(ctx, postID)
}

func (s *PostService) ListCommunityWall(ctx context.Context, actorID, communityID uint64, lastID uint64, lastCreatedAt int64, limit int) ([]model.Post, error) {
	ok, err := s.engine.CanViewPostsAtCommunity(ctx, actorID, communityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.repo.ListByCommunityCursor(ctx, communityID, lastID, lastCreatedAt, limit)
}

func (s *PostService) ListUserWall(ctx context.Context, actorID, wallOwnerID uint64, offset, limit int) ([]model.Post, error) {
	ok, err := s.engine.CanViewPostsAtUser(ctx, actorID, wallOwnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.repo.ListByUserWall(ctx, wallOwnerID, offset, limit)
}

// AddComment 能看到帖子就能评论
func (s *PostService) AddComment(ctx context.Context, actorID, postID uint64, content string) (*model.PostComment, error) {
	if content == "" {
		return nil, ErrInvalidArgument
	}
	ok, err := s.engine.CanUserViewPost(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	comment := &model.PostComment{PostID: postID, AuthorID: actorID, Content: content}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *PostService) ListComments(ctx context.Context, actorID, postID uint64, cursor uint64, limit int) ([]model.PostComment, uint64, error) {
	ok, err := s.engine.CanUserViewPost(ctx, actorID, postID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrForbidden
	}
	return s.commentRepo.ListByPost(ctx, postID, cursor, limit)
}

func (s *PostService) UpdateComment(ctx context.Context, actorID, commentID uint64, content string) error {
	ok, err := s.engine.CanUserModifyPostComment(ctx, actorID, commentID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.commentRepo.UpdateContent(ctx, commentID, content)
}

func (s *PostService) DeleteComment(ctx context.Context, actorID, commentID uint64) error {
	ok, err := s.engine.CanUserDeletePostComment(ctx, actorID, commentID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.commentRepo.Delete(ctx, commentID)
}
