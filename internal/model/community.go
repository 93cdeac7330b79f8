package model

import "time"

// Per-community privilege tiers, ordered by trust.
const (
	CommunityRoleMember    = 0
	CommunityRoleModerator = 1
	CommunityRoleOwner     = 2
)

type Community struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:64;not null"`
	Description string `gorm:"type:text"`
	OwnerID     uint64 `gorm:"not null;index"`
	IsPrivate   bool   `gorm:"not null;default:false"`
	Deleted     bool   `gorm:"not null;default:false"`
	Banned      bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Active 社区可用：未删除且未封禁
func (c *Community) Active() bool {
	return !c.Deleted && !c.Banned
}

type CommunityMember struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	Role        int    `gorm:"not null;default:0"` // 0=member 1=moderator 2=owner
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CommunityInvitation struct {
	ID          uint64 `gorm:"primaryKey"`
	SenderID    uint64 `gorm:"not null;uniqueIndex:uk_invitation"`
	ReceiverID  uint64 `gorm:"not null;index;uniqueIndex:uk_invitation"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_invitation"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
