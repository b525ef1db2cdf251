package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AvailabilityResult 库存可用性检查结果
type AvailabilityResult struct {
	Available      bool   `json:"available"`
	UnavailableIDs []uint `json:"unavailable_ids,omitempty"`
}

// PaymentAuthorization 支付授权结果。未授权时 TransactionID 为空。
type PaymentAuthorization struct {
	Authorized    bool   `json:"authorized"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// StockDecrementResult 库存扣减结果
type StockDecrementResult struct {
	Success bool `json:"success"`
}

// PurchaseResult 结账终态输出
type PurchaseResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message"`
}

// InventoryGateway 库存外部服务接口。
// 可用性检查与扣减的原子性由外部服务自身保证。
type InventoryGateway interface {
	CheckAvailability(ctx context.Context, productIDs []uint, quantities []int) (*AvailabilityResult, error)
	DecrementStock(ctx context.Context, productIDs []uint, quantities []int) (*StockDecrementResult, error)
}

// PaymentGateway 支付外部服务接口。Cancel 为尽力而为的补偿调用。
type PaymentGateway interface {
	Authorize(ctx context.Context, customerID uint, amount decimal.Decimal) (*PaymentAuthorization, error)
	Cancel(ctx context.Context, customerID uint, transactionID string) error
}
