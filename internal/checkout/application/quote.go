package application

import (
	"context"

	"github.com/wyfcoding/retailmall/internal/checkout/domain"
)

// QuoteCheckout 只读报价：在同一事务边界内解析客户与购物车后运行计价引擎，
// 不触碰外部系统。
func (s *CheckoutService) QuoteCheckout(ctx context.Context, cartID, customerID uint) (*domain.Quote, error) {
	customer, cart, err := s.resolveParticipants(ctx, cartID, customerID)
	if err != nil {
		return nil, err
	}

	quote := domain.QuoteCart(cart, customer.Tier)
	return &quote, nil
}
