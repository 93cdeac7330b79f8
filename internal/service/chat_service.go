package service

import (
	"context"

	"Nexus_Social/internal/model"
	"Nexus_Social/internal/permission"
	"Nexus_Social/internal/repository/mysql"
)

type ChatService struct {
	repo       *mysql.ChatRepository
	memberRepo *mysql.ChatMemberRepository
	msgRepo    *mysql.ChatMessageRepository
	engine     *permission.Engine
}

func NewChatService(engine *permission.Engine) *ChatService {
	return &ChatService{
		repo:       &mysql.ChatRepository{DB: mysql.DB},
		memberRepo: &mysql.ChatMemberRepository{DB: mysql.DB},
		msgRepo:    &mysql.ChatMessageRepository{DB: mysql.DB},
		engine:     engine,
	}
}

func (s *ChatService) Create(ctx context.Context, ownerID uint64, name string, isPrivate bool) (*model.Chat, error) {
	if name == "" {
		return nil, ErrInvalidArgument
	}
	chat := &model.Chat{
		Name:      name,
		OwnerID:   ownerID,
		IsPrivate: isPrivate,
	}
	if err := s.repo.Create(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) Get(ctx context.Context, actorID, chatID uint64) (*model.Chat, error) {
	chat, err := s.repo.ChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	ok, err := s.engine.CanViewChat(ctx, actorID, chat)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return chat, nil
}

func (s *ChatService) Update(ctx context.Context, actorID, chatID uint64, name string, isPrivate bool) error {
	ok, err := s.engine.CanEditChat(ctx, actorID, chatID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.repo.Update(ctx, chatID, name, isPrivate)
}

func (s *ChatService) Delete(ctx context.Context, actorID, chatID uint64) error {
	ok, err := s.engine.CanEditChat(ctx, actorID, chatID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.repo.SoftDelete(ctx, chatID)
}

// Join 公开聊天可直接加入，私聊需群主拉人
func (s *ChatService) Join(ctx context.Context, actorID, chatID uint64) error {
	chat, err := s.repo.ChatByID(ctx, chatID)
	if err != nil {
		return err
	}
	if !chat.Active() || chat.IsPrivate {
		return ErrForbidden
	}
	return s.memberRepo.Join(ctx, &model.ChatMember{ChatID: chatID, UserID: actorID})
}

// Invite 群主把人拉进私聊
func (s *ChatService) Invite(ctx context.Context, actorID, chatID, userID uint64) error {
	ok, err := s.engine.CanEditChat(ctx, actorID, chatID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.memberRepo.Join(ctx, &model.ChatMember{ChatID: chatID, UserID: userID})
}

func (s *ChatService) Leave(ctx context.Context, actorID, chatID uint64) error {
	return s.memberRepo.Leave(ctx, chatID, actorID)
}

func (s *ChatService) SendMessage(ctx context.Context, actorID, chatID uint64, body string) (*model.ChatMessage, error) {
	if body == "" {
		return nil, ErrInvalidArgument
	}
	ok, err := s.engine.CanUserCreateMessageInChat(ctx, actorID, chatID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	msg := &model.ChatMessage{ChatID: chatID, SenderID: actorID, Body: body}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ChatService) ListMessages(ctx context.Context, actorID, chatID uint64, cursor uint64, limit int) ([]model.ChatMessage, uint64, error) {
	ok, err := s.engine.CanUserViewMessagesInChat(ctx, actorID, chatID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrForbidden
	}
	return s.msgRepo.ListByChat(ctx, chatID, cursor, limit)
}

func (s *ChatService) EditMessage(ctx context.Context, actorID, messageID uint64, body string) error {
	ok, err := s.engine.CanUserModifyChatMessage(ctx, actorID, messageID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.msgRepo.UpdateBody(ctx, messageID, body)
}

func (s *ChatService) DeleteMessage(ctx context.Context, actorID, messageID uint64) error {
	ok, err := s.engine.CanUserDeleteChatMessage(ctx, actorID, messageID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.msgRepo.Delete(ctx, messageID)
}
