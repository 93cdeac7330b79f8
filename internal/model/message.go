package model

import "time"

type PrivateMessage struct {
	ID         uint64 `gorm:"primaryKey"`
	SenderID   uint64 `gorm:"not null;index:idx_sender_time"`
	ReceiverID uint64 `gorm:"not null;index:idx_receiver_time"`
	Body       string `gorm:"type:text;not null"`
	ReadAt     *time.Time
	CreatedAt  time.Time `gorm:"index:idx_sender_time;index:idx_receiver_time"`
	UpdatedAt  time.Time
}
