package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"feastly/order-svc/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher emits lifecycle events keyed by entity id. With the hash
// balancer of config.NewKafkaWriter every event of one order or reservation
// lands on the same partition.
type KafkaPublisher struct {
	Writer messageWriter
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishEvent(ctx context.Context, msg domain.KafkaMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.EntityID),
		Value: payload,
	})
}
