package model

import "time"

type Chat struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:64;not null"`
	OwnerID   uint64 `gorm:"not null;index"`
	IsPrivate bool   `gorm:"not null;default:false"`
	Deleted   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active 聊天可用：聊天没有封禁位，只看删除
func (c *Chat) Active() bool {
	return !c.Deleted
}

type ChatMember struct {
	ID        uint64 `gorm:"primaryKey"`
	ChatID    uint64 `gorm:"not null;index;uniqueIndex:uk_chat_user"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_chat_user"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChatMessage struct {
	ID        uint64 `gorm:"primaryKey"`
	ChatID    uint64 `gorm:"not null;index:idx_chat_time"`
	SenderID  uint64 `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_chat_time"`
	UpdatedAt time.Time
}
