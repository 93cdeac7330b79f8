package main

import (
	"context"

	"go.uber.org/zap"

	"Nexus_Social/internal/config"
	"Nexus_Social/internal/model"
	"Nexus_Social/internal/pkg"
	"Nexus_Social/internal/repository/mysql"
	"Nexus_Social/internal/repository/redis"
	"Nexus_Social/internal/router"
	"Nexus_Social/internal/service"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	logger, err := pkg.NewLogger(cfg.Server.Debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	pkg.AccessSecret = []byte(cfg.JWT.AccessSecret)
	pkg.RefreshSecret = []byte(cfg.JWT.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQL.DSN); err != nil {
		logger.Fatal("mysql init", zap.Error(err))
	}

	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		logger.Fatal("redis init", zap.Error(err))
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Chat{},
		&model.ChatMember{},
		&model.ChatMessage{},
		&model.Community{},
		&model.CommunityMember{},
		&model.CommunityInvitation{},
		&model.Post{},
		&model.PostComment{},
		&model.PrivateMessage{},
		&model.FriendshipRequest{},
		&model.Friendship{},
		&model.NotificationOutbox{},
	); err != nil {
		logger.Fatal("auto migrate", zap.Error(err))
	}

	// outbox 投递：Kafka 不可用就降级成日志
	sender := service.LogSender(logger)
	producer, err := pkg.NewNotificationProducer(pkg.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
	if err != nil {
		logger.Warn("kafka init, falling back to log sender", zap.Error(err))
	} else {
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	if cfg.SMTP.Host != "" {
		sender = service.TeeSender(sender, service.EmailSender(pkg.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	relayer := service.NewOutboxRelayer(sender, logger)
	go relayer.Run(ctx)

	r := router.InitRouter(router.NewEngine())
	logger.Info("listening", zap.String("addr", cfg.Server.Addr))
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Fatal("server exit", zap.Error(err))
	}
}
