package model

import "time"

// System-wide privilege tiers. Admin carries every moderator privilege.
const (
	SystemRoleUser      = 0
	SystemRoleModerator = 1
	SystemRoleAdmin     = 2
)

type User struct {
	ID                   uint64 `gorm:"primaryKey"`
	Username             string `gorm:"uniqueIndex;size:32;not null"`
	Password             string `gorm:"size:255;not null"`
	Email                string `gorm:"uniqueIndex;size:64;not null"`
	SystemRole           int    `gorm:"not null;default:0"` // 0=user 1=moderator 2=admin
	Deleted              bool   `gorm:"not null;default:false"`
	Banned               bool   `gorm:"not null;default:false"`
	PostsPublic          bool   `gorm:"not null;default:true"`
	AcceptingPrivateMsgs bool   `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Active 用户可用：未删除且未封禁
func (u *User) Active() bool {
	return !u.Deleted && !u.Banned
}

// SystemModerator reports whether the user holds moderator-or-above privileges.
func (u *User) SystemModerator() bool {
	return u.SystemRole >= SystemRoleModerator
}
