package service

import (
	"context"

	"Nexus_Social/internal/model"
	"Nexus_Social/internal/permission"
	"Nexus_Social/internal/repository/mysql"
)

type FriendshipService struct {
	repo   *mysql.FriendshipRepository
	outbox *mysql.OutboxRepository
	engine *permission.Engine
}

func NewFriendshipService(engine *permission.Engine) *FriendshipService {
	return &FriendshipService{
		repo:   &mysql.FriendshipRepository{DB: mysql.DB},
		outbox: &mysql.OutboxRepository{DB: mysql.DB},
		engine: engine,
	}
}

// SendRequest 只有自身可用的用户能发起请求；已是好友或已有未决请求则静默成功
func (s *FriendshipService) SendRequest(ctx context.Context, senderID, receiverID uint64) error {
	if senderID == 0 || receiverID == 0 {
		return ErrInvalidArgument
	}
	if senderID == receiverID {
		return ErrSelfTarget
	}
	ok, err := s.engine.CanSendFriendRequest(ctx, senderID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	// 接收方必须存在且可用
	active, err := s.engine.IsUserActive(ctx, receiverID)
	if err != nil {
		return err
	}
	if !active {
		return ErrForbidden
	}

	friends, err := s.repo.FriendshipExists(ctx, senderID, receiverID)
	if err != nil {
		return err
	}
	if friends {
		return nil
	}
	if err := s.repo.CreateRequest(ctx, &model.FriendshipRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
	}); err != nil {
		return err
	}
	return s.outbox.InsertEvent(ctx, "friend_request", senderID, receiverID)
}

// Accept 只有接收方能接受
func (s *FriendshipService) Accept(ctx context.Context, actorID, requestID uint64) error {
	req, err := s.repo.RequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.ReceiverID != actorID {
		return ErrForbidden
	}
	_, err = s.repo.AcceptRequest(ctx, requestID)
	return err
}

// Decline 接收方拒绝，发送方撤回
func (s *FriendshipService) Decline(ctx context.Context, actorID, requestID uint64) error {
	req, err := s.repo.RequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.ReceiverID != actorID && req.SenderID != actorID {
		return ErrForbidden
	}
	return s.repo.DeleteRequest(ctx, requestID)
}

func (s *FriendshipService) Unfriend(ctx context.Context, actorID, peerID uint64) error {
	if actorID == peerID {
		return ErrSelfTarget
	}
	_, err := s.repo.Unfriend(ctx, actorID, peerID)
	return err
}

func (s *FriendshipService) ListFriends(ctx context.Context, userID uint64, cursor uint64, limit int) ([]model.Friendship, uint64, error) {
	return s.repo.ListFriends(ctx, userID, cursor, limit)
}

func (s *FriendshipService) ListRequests(ctx context.Context, userID uint64) ([]model.FriendshipRequest, error) {
	return s.repo.ListRequestsForReceiver(ctx, userID)
}
