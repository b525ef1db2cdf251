package application

import (
	"context"

	"github.com/wyfcoding/retailmall/internal/cart/domain"
	"github.com/wyfcoding/retailmall/pkg/metrics"
)

// CartService 购物车服务门面，整合命令服务和查询服务
type CartService struct {
	commandService *CartCommandService
	queryService   *CartQueryService
}

// NewCartService 创建购物车服务门面实例
func NewCartService(
	repo domain.CartRepository,
	products ProductLookup,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
) *CartService {
	return &CartService{
		commandService: NewCartCommandService(repo, products, publisher, m),
		queryService:   NewCartQueryService(repo),
	}
}

// CreateCart 为客户创建新购物车
func (s *CartService) CreateCart(ctx context.Context, customerID uint) (*domain.Cart, error) {
	return s.commandService.CreateCart(ctx, customerID)
}

// AddItem 向购物车添加商品
func (s *CartService) AddItem(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	return s.commandService.AddItem(ctx, cmd)
}

// RemoveItem 从购物车移除商品
func (s *CartService) RemoveItem(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	return s.commandService.RemoveItem(ctx, cmd)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, cartID uint) error {
	return s.commandService.Clear(ctx, cartID)
}

// GetCart 获取购物车详情
func (s *CartService) GetCart(ctx context.Context, cartID uint) (*domain.Cart, error) {
	return s.queryService.GetCart(ctx, cartID)
}

// GetForCustomer 按归属客户获取购物车
func (s *CartService) GetForCustomer(ctx context.Context, cartID, customerID uint) (*domain.Cart, error) {
	return s.queryService.GetForCustomer(ctx, cartID, customerID)
}
