package mysql

import (
	"context"

	"Nexus_Social/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.DB.WithContext(ctx).Create(post).Error
}

// PostByID 返回包含已删除行的快照，删除与否由权限规则判断
func (r *PostRepository) PostByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.WithContext(ctx).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByCommunityCursor 基于时间游标的社区墙查询
// lastCreatedAt=0 表示第一页；否则用 (created_at, id) 作为严格游标
func (r *PostRepository) ListByCommunityCursor(ctx context.Context, communityID uint64, lastID uint64, lastCreatedAt int64, limit int) ([]model.Post, error) {
	var list []model.Post
	q := r.DB.WithContext(ctx).Where("owner_community_id = ? AND deleted = false", communityID)
	if lastCreatedAt > 0 {
		// 先比时间，再在同一时间点用 id 打破并列
		q = q.Where("(created_at < FROM_UNIXTIME(?) OR (created_at = FROM_UNIXTIME(?) AND id < ?))", lastCreatedAt, lastCreatedAt, lastID)
	}
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByUserWall(ctx context.Context, userID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.WithContext(ctx).
		Where("owner_user_id = ? AND deleted = false", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) Update(ctx context.Context, postID uint64, title, content string) error {
	return r.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", postID).
		Updates(map[string]any{"title": title, "content": content}).Error
}

// SoftDelete 幂等软删除
func (r *PostRepository) SoftDelete(ctx context.Context, postID uint64) error {
	return r.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", postID).
		Update("deleted", true).Error
}
