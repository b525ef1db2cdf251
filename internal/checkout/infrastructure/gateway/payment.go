package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/retailmall/internal/checkout/domain"
)

// PaymentClient 支付外部服务的 HTTP 适配器。不配置重试，每次调用只尝试一次。
type PaymentClient struct {
	client *resty.Client
}

// NewPaymentClient 创建支付服务客户端
func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &PaymentClient{client: client}
}

// 金额走十进制字符串，避免二进制浮点在传输中引入舍入偏差
type authorizeRequest struct {
	CustomerID uint   `json:"customer_id"`
	Amount     string `json:"amount"`
}

type authorizeResponse struct {
	Authorized    bool   `json:"authorized"`
	TransactionID string `json:"transaction_id"`
}

type cancelRequest struct {
	CustomerID uint `json:"customer_id"`
}

// Authorize 为客户授权指定金额的支付
func (c *PaymentClient) Authorize(ctx context.Context, customerID uint, amount decimal.Decimal) (*domain.PaymentAuthorization, error) {
	var result authorizeResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(authorizeRequest{CustomerID: customerID, Amount: amount.String()}).
		SetResult(&result).
		Post("/api/v1/payments/authorize")
	if err != nil {
		return nil, fmt.Errorf("payment authorize request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("payment authorize request: unexpected status %d", resp.StatusCode())
	}

	return &domain.PaymentAuthorization{
		Authorized:    result.Authorized,
		TransactionID: result.TransactionID,
	}, nil
}

// Cancel 撤销已授权的支付交易
func (c *PaymentClient) Cancel(ctx context.Context, customerID uint, transactionID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(cancelRequest{CustomerID: customerID}).
		Post(fmt.Sprintf("/api/v1/payments/%s/cancel", transactionID))
	if err != nil {
		return fmt.Errorf("payment cancel request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("payment cancel request: unexpected status %d", resp.StatusCode())
	}
	return nil
}
