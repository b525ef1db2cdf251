package domain

import (
	"context"
	"time"
)

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, payload any) error
}

// CheckoutCompletedEvent 结账完成事件
type CheckoutCompletedEvent struct {
	CartID        uint      `json:"cart_id"`
	CustomerID    uint      `json:"customer_id"`
	TransactionID string    `json:"transaction_id"`
	Total         string    `json:"total"`
	Timestamp     time.Time `json:"timestamp"`
}
