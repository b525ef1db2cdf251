package domain

import (
	"context"
	"time"
)

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, payload any) error
}

// CartCreatedEvent 购物车创建事件
type CartCreatedEvent struct {
	CartID     uint      `json:"cart_id"`
	CustomerID uint      `json:"customer_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// CartItemAddedEvent 购物车加购事件
type CartItemAddedEvent struct {
	CartID     uint      `json:"cart_id"`
	CustomerID uint      `json:"customer_id"`
	ProductID  uint      `json:"product_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  string    `json:"unit_price"`
	Timestamp  time.Time `json:"timestamp"`
}

// CartItemRemovedEvent 购物车移除商品事件
type CartItemRemovedEvent struct {
	CartID     uint      `json:"cart_id"`
	CustomerID uint      `json:"customer_id"`
	ProductID  uint      `json:"product_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// CartClearedEvent 清空购物车事件
type CartClearedEvent struct {
	CartID     uint      `json:"cart_id"`
	CustomerID uint      `json:"customer_id"`
	Timestamp  time.Time `json:"timestamp"`
}
