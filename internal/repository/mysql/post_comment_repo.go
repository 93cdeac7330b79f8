package mysql

import (
	"context"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
)

type PostCommentRepository struct {
	DB *gorm.DB
}

func (r *PostCommentRepository) Create(ctx context.Context, comment *model.PostComment) error {
	return r.DB.WithContext(ctx).Create(comment).Error
}

func (r *PostCommentRepository) PostCommentByID(ctx context.Context, id uint64) (*model.PostComment, error) {
	var comment model.PostComment
	err := r.DB.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *PostCommentRepository) ListByPost(ctx context.Context, postID uint64, cursor uint64, limit int) ([]model.PostComment, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.WithContext(ctx).Where("post_id = ?", postID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.PostComment
	if err := q.Order("id DESC").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	var next uint64
	if len(rows) > limit {
		next = rows[limit-1].ID
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (r *PostCommentRepository) UpdateContent(ctx context.Context, id uint64, content string) error {
	return r.DB.WithContext(ctx).Model(&model.PostComment{}).Where("id = ?", id).
		Update("content", content).Error
}

func (r *PostCommentRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.PostComment{}, id).Error
}
