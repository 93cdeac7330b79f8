package model

import "time"

// FriendshipRequest is pending by construction: accepting deletes the row and
// creates a Friendship, declining just deletes it.
type FriendshipRequest struct {
	ID         uint64 `gorm:"primaryKey"`
	SenderID   uint64 `gorm:"not null;index;uniqueIndex:uk_friend_request"`
	ReceiverID uint64 `gorm:"not null;index;uniqueIndex:uk_friend_request"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Friendship is stored once per pair; lookups treat (UserAID, UserBID) as
// unordered.
type Friendship struct {
	ID        uint64 `gorm:"primaryKey"`
	UserAID   uint64 `gorm:"not null;index;uniqueIndex:uk_friend_pair"`
	UserBID   uint64 `gorm:"not null;index;uniqueIndex:uk_friend_pair"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotificationOutbox 通知事件监控表
type NotificationOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // friend_request / friend_accept / community_invite / private_message
	ActorID   uint64 `gorm:"not null"`
	SubjectID uint64 `gorm:"not null;index"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NotificationOutbox) TableName() string { return "notification_outbox" }
