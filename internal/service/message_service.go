package service

import (
	"context"
	"time"

	"Nexus_Social/internal/model"
	"Nexus_Social/internal/permission"
	"Nexus_Social/internal/repository/mysql"
	"Nexus_Social/internal/repository/redis"
)

type MessageService struct {
	repo       *mysql.PrivateMessageRepository
	outboxRepo *mysql.OutboxRepository
	unread     *redis.UnreadCacheRepository
	engine     *permission.Engine
}

func NewMessageService(engine *permission.Engine) *MessageService {
	return &MessageService{
		repo:       &mysql.PrivateMessageRepository{DB: mysql.DB},
		outboxRepo: &mysql.OutboxRepository{DB: mysql.DB},
		unread:     redis.NewUnreadCacheRepository(),
		engine:     engine,
	}
}

// Send 接收方必须可用且允许私信（或双方是好友）
func (s *MessageService) Send(ctx context.Context, senderID, receiverID uint64, body string) (*model.PrivateMessage, error) {
	if body == "" {
		return nil, ErrInvalidArgument
	}
	if senderID == receiverID {
		return nil, ErrSelfTarget
	}
	ok, err := s.engine.CanSendMessageToThisUser(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	msg := &model.PrivateMessage{SenderID: senderID, ReceiverID: receiverID, Body: body}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.unread.IncrUnread(ctx, receiverID, senderID); err != nil {
		return nil, err
	}
	if err := s.outboxRepo.InsertEvent(ctx, "private_message", senderID, receiverID); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) Read(ctx context.Context, actorID, messageID uint64) (*model.PrivateMessage, error) {
	ok, err := s.engine.CanUserReadPrivateMessage(ctx, actorID, messageID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	msg, err := s.repo.PrivateMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	// 只有接收方打开消息才算已读
	if msg.ReceiverID == actorID && msg.ReadAt == nil {
		now := time.Now()
		if err := s.repo.MarkRead(ctx, messageID, now); err != nil {
			return nil, err
		}
		msg.ReadAt = &now
		if err := s.unread.ResetUnread(ctx, actorID, msg.SenderID); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

func (s *MessageService) ListConversation(ctx context.Context, actorID, peerID uint64, cursor uint64, limit int) ([]model.PrivateMessage, uint64, error) {
	msgs, next, err := s.repo.ListConversation(ctx, actorID, peerID, cursor, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := s.unread.ResetUnread(ctx, actorID, peerID); err != nil {
		return nil, 0, err
	}
	return msgs, next, nil
}

func (s *MessageService) UnreadCount(ctx context.Context, actorID, peerID uint64) (int64, error) {
	return s.unread.UnreadCount(ctx, actorID, peerID)
}

func (s *MessageService) UnreadTotals(ctx context.Context, actorID uint64) (map[string]string, error) {
	return s.unread.UnreadTotals(ctx, actorID)
}

func (s *MessageService) Edit(ctx context.Context, actorID, messageID uint64, body string) error {
	if body == "" {
		return ErrInvalidArgument
	}
	ok, err := s.engine.CanUserModifyPrivateMessage(ctx, actorID, messageID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.repo.UpdateBody(ctx, messageID, body)
}

func (s *MessageService) Delete(ctx context.Context, actorID, messageID uint64) error {
	ok, err := s.engine.CanUserDeletePrivateMessage(ctx, actorID, messageID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, messageID)
}
