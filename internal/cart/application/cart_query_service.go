package application

import (
	"context"

	"github.com/wyfcoding/retailmall/internal/cart/domain"
)

// CartQueryService 购物车查询服务
type CartQueryService struct {
	repo domain.CartRepository
}

// NewCartQueryService 创建购物车查询服务实例
func NewCartQueryService(repo domain.CartRepository) *CartQueryService {
	return &CartQueryService{repo: repo}
}

// GetCart 获取购物车详情
func (s *CartQueryService) GetCart(ctx context.Context, cartID uint) (*domain.Cart, error) {
	return s.repo.GetByID(ctx, cartID)
}

// GetForCustomer 按归属客户获取购物车；不存在或属于其他客户时返回 domain.ErrCartNotFound
func (s *CartQueryService) GetForCustomer(ctx context.Context, cartID, customerID uint) (*domain.Cart, error) {
	return s.repo.GetByIDForCustomer(ctx, cartID, customerID)
}
