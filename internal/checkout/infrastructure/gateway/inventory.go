package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/wyfcoding/retailmall/internal/checkout/domain"
)

// InventoryClient 库存外部服务的 HTTP 适配器。不配置重试，每次调用只尝试一次。
type InventoryClient struct {
	client *resty.Client
}

// NewInventoryClient 创建库存服务客户端
func NewInventoryClient(baseURL string, timeout time.Duration) *InventoryClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &InventoryClient{client: client}
}

type stockRequest struct {
	ProductIDs []uint `json:"product_ids"`
	Quantities []int  `json:"quantities"`
}

type availabilityResponse struct {
	Available      bool   `json:"available"`
	UnavailableIDs []uint `json:"unavailable_ids"`
}

type decrementResponse struct {
	Success bool `json:"success"`
}

// CheckAvailability 检查给定商品数量组合的库存可用性
func (c *InventoryClient) CheckAvailability(ctx context.Context, productIDs []uint, quantities []int) (*domain.AvailabilityResult, error) {
	var result availabilityResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(stockRequest{ProductIDs: productIDs, Quantities: quantities}).
		SetResult(&result).
		Post("/api/v1/stock/availability")
	if err != nil {
		return nil, fmt.Errorf("inventory availability request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("inventory availability request: unexpected status %d", resp.StatusCode())
	}

	return &domain.AvailabilityResult{
		Available:      result.Available,
		UnavailableIDs: result.UnavailableIDs,
	}, nil
}

// DecrementStock 扣减给定商品数量组合的库存
func (c *InventoryClient) DecrementStock(ctx context.Context, productIDs []uint, quantities []int) (*domain.StockDecrementResult, error) {
	var result decrementResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(stockRequest{ProductIDs: productIDs, Quantities: quantities}).
		SetResult(&result).
		Post("/api/v1/stock/decrement")
	if err != nil {
		return nil, fmt.Errorf("inventory decrement request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("inventory decrement request: unexpected status %d", resp.StatusCode())
	}

	return &domain.StockDecrementResult{Success: result.Success}, nil
}
