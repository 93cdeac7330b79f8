package model

import "time"

// Post lives on exactly one wall: OwnerUserID is set for user-wall posts,
// OwnerCommunityID for community-wall posts, never both.
type Post struct {
	ID               uint64  `gorm:"primaryKey"`
	AuthorID         uint64  `gorm:"not null;index:idx_author_time"`
	OwnerUserID      *uint64 `gorm:"index"`
	OwnerCommunityID *uint64 `gorm:"index:idx_comm_time,priority:1"`
	Title            string  `gorm:"size:200;not null"`
	Content          string  `gorm:"type:text"`
	Deleted          bool    `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"index:idx_comm_time,priority:2,sort:desc;index:idx_author_time"`
	UpdatedAt        time.Time
}

type PostComment struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index:idx_post_time"`
	AuthorID  uint64 `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_post_time"`
	UpdatedAt time.Time
}
