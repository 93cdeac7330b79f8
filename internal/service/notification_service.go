package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"Nexus_Social/internal/model"
	"Nexus_Social/internal/pkg"
	"Nexus_Social/internal/repository/mysql"
)

type Sender func(ctx context.Context, ob *model.NotificationOutbox) error

// OutboxRelayer 通知事件投递服务
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
	logger    *zap.Logger
}

func NewOutboxRelayer(sender Sender, logger *zap.Logger) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
		logger:    logger,
	}
}

// Run 投递器启动器
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

// 从数据库读取待发事件，异步交给 sender 投递
func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("outbox query", zap.Error(err))
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			r.logger.Warn("outbox send",
				zap.Uint64("id", ob.ID),
				zap.String("event", ob.EventType),
				zap.Error(err))
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// KafkaSender 把 outbox 行转成通知事件交给 Kafka
func KafkaSender(producer *pkg.NotificationProducer) Sender {
	return func(ctx context.Context, ob *model.NotificationOutbox) error {
		return producer.Publish(ctx, &pkg.NotificationEvent{
			ID:        ob.ID,
			EventType: ob.EventType,
			ActorID:   ob.ActorID,
			SubjectID: ob.SubjectID,
			Payload:   json.RawMessage(ob.Payload),
		})
	}
}

var eventSubjects = map[string]string{
	"friend_request":   "你收到一条好友请求",
	"friend_accept":    "对方接受了你的好友请求",
	"community_invite": "你收到一条社区邀请",
	"private_message":  "你收到一条新私信",
}

// EmailSender 给事件的接收方发一封提醒邮件
func EmailSender(cfg pkg.SMTPConfig) Sender {
	users := &mysql.UserRepository{DB: mysql.DB}
	return func(ctx context.Context, ob *model.NotificationOutbox) error {
		subject, known := eventSubjects[ob.EventType]
		if !known {
			return nil
		}
		user, err := users.UserByID(ctx, ob.SubjectID)
		if err != nil {
			return err
		}
		return pkg.SendEmail(cfg, user.Email, subject, pkg.NotificationHTML(user.Username, subject))
	}
}

// TeeSender 依次调用多个 sender，任何一个失败整条事件重试
func TeeSender(senders ...Sender) Sender {
	return func(ctx context.Context, ob *model.NotificationOutbox) error {
		for _, s := range senders {
			if err := s(ctx, ob); err != nil {
				return err
			}
		}
		return nil
	}
}

// LogSender 降级 sender：Kafka 不可用时只打日志
func LogSender(logger *zap.Logger) Sender {
	return func(_ context.Context, ob *model.NotificationOutbox) error {
		logger.Info("outbox event",
			zap.String("event", ob.EventType),
			zap.Uint64("actor", ob.ActorID),
			zap.Uint64("subject", ob.SubjectID))
		return nil
	}
}
