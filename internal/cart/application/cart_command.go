package application

import (
	"context"
	"strconv"
	"time"

	cartdomain "github.com/wyfcoding/retailmall/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/retailmall/internal/catalog/domain"
	"github.com/wyfcoding/retailmall/pkg/logger"
	"github.com/wyfcoding/retailmall/pkg/metrics"
)

// ProductLookup 商品查询接口，由目录服务实现
type ProductLookup interface {
	GetProduct(ctx context.Context, id uint) (*catalogdomain.Product, error)
}

// AddItemCommand 添加商品到购物车命令
type AddItemCommand struct {
	CartID    uint
	ProductID uint
	Quantity  int
}

// RemoveItemCommand 从购物车移除商品命令
type RemoveItemCommand struct {
	CartID    uint
	ProductID uint
}

// CartCommandService 购物车命令服务
type CartCommandService struct {
	repo      cartdomain.CartRepository
	products  ProductLookup
	publisher cartdomain.EventPublisher
	metrics   *metrics.Metrics
}

// NewCartCommandService 创建购物车命令服务实例
func NewCartCommandService(
	repo cartdomain.CartRepository,
	products ProductLookup,
	publisher cartdomain.EventPublisher,
	m *metrics.Metrics,
) *CartCommandService {
	return &CartCommandService{
		repo:      repo,
		products:  products,
		publisher: publisher,
		metrics:   m,
	}
}

// CreateCart 为客户创建新购物车
func (s *CartCommandService) CreateCart(ctx context.Context, customerID uint) (*cartdomain.Cart, error) {
	cart := &cartdomain.Cart{CustomerID: customerID}
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	event := cartdomain.CartCreatedEvent{
		CartID:     cart.ID,
		CustomerID: cart.CustomerID,
		Timestamp:  time.Now(),
	}
	s.publishEvent(ctx, "cart.created", cart.ID, event)

	return cart, nil
}

// AddItem 向购物车添加商品，行项冗余记录商品当前单价与单重
func (s *CartCommandService) AddItem(ctx context.Context, cmd AddItemCommand) (*cartdomain.Cart, error) {
	if cmd.Quantity <= 0 {
		return nil, cartdomain.ErrInvalidQuantity
	}

	cart, err := s.repo.GetByID(ctx, cmd.CartID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetProduct(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(product.ID, cmd.Quantity, product.Price, product.Weight); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.metrics.RecordCartItemAdded()

	event := cartdomain.CartItemAddedEvent{
		CartID:     cart.ID,
		CustomerID: cart.CustomerID,
		ProductID:  product.ID,
		Quantity:   cmd.Quantity,
		UnitPrice:  product.Price.String(),
		Timestamp:  time.Now(),
	}
	s.publishEvent(ctx, "cart.item.added", cart.ID, event)

	return cart, nil
}

// RemoveItem 从购物车移除商品
func (s *CartCommandService) RemoveItem(ctx context.Context, cmd RemoveItemCommand) (*cartdomain.Cart, error) {
	cart, err := s.repo.GetByID(ctx, cmd.CartID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(cmd.ProductID)
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	event := cartdomain.CartItemRemovedEvent{
		CartID:     cart.ID,
		CustomerID: cart.CustomerID,
		ProductID:  cmd.ProductID,
		Timestamp:  time.Now(),
	}
	s.publishEvent(ctx, "cart.item.removed", cart.ID, event)

	return cart, nil
}

// Clear 清空并删除购物车
func (s *CartCommandService) Clear(ctx context.Context, cartID uint) error {
	cart, err := s.repo.GetByID(ctx, cartID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, cart.ID); err != nil {
		return err
	}

	event := cartdomain.CartClearedEvent{
		CartID:     cart.ID,
		CustomerID: cart.CustomerID,
		Timestamp:  time.Now(),
	}
	s.publishEvent(ctx, "cart.cleared", cart.ID, event)

	return nil
}

func (s *CartCommandService) publishEvent(ctx context.Context, eventType string, cartID uint, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, strconv.FormatUint(uint64(cartID), 10), payload); err != nil {
		logger.Warn(ctx, "failed to publish cart event", "event_type", eventType, "cart_id", cartID, "error", err)
	}
}
