package pkg

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// NotificationEvent 投递到通知 topic 的事件载荷
type NotificationEvent struct {
	ID        uint64          `json:"id"`
	EventType string          `json:"event"`
	ActorID   uint64          `json:"actor"`
	SubjectID uint64          `json:"subject"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// key 按接收方分区，同一接收方的通知保持投递有序
func (ev *NotificationEvent) key() []byte {
	return []byte(strconv.FormatUint(ev.SubjectID, 10))
}

type NotificationProducer struct {
	writer *kafka.Writer
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewNotificationProducer(cfg KafkaConfig) (*NotificationProducer, error) {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &NotificationProducer{writer: w}, nil
}

func (p *NotificationProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Publish 编码并写入一条通知事件
func (p *NotificationProducer) Publish(ctx context.Context, ev *NotificationEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   ev.key(),
		Value: value,
	})
}
