package messaging

import (
	"context"

	"github.com/wyfcoding/retailmall/internal/cart/domain"
	"github.com/wyfcoding/retailmall/pkg/mq"
)

// KafkaEventPublisher 基于 Kafka 的事件发布者。producer 为 nil 时退化为空操作。
type KafkaEventPublisher struct {
	producer *mq.KafkaProducer
	topic    string
}

// NewKafkaEventPublisher 创建事件发布者实例
func NewKafkaEventPublisher(producer *mq.KafkaProducer, topic string) domain.EventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, eventType string, key string, payload any) error {
	if p.producer == nil {
		return nil
	}
	return p.producer.SendMessage(ctx, p.topic, eventType+":"+key, payload)
}
