package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/retailmall/internal/catalog/domain"
	"github.com/wyfcoding/retailmall/pkg/logger"
)

// CreateProductCommand 创建商品命令
type CreateProductCommand struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Weight      int
	Category    domain.Category
}

// UpdateProductCommand 更新商品命令
type UpdateProductCommand struct {
	ProductID   uint
	Name        string
	Description string
	Price       decimal.Decimal
	Weight      int
}

// CatalogCommandService 商品命令服务
type CatalogCommandService struct {
	repo      domain.CatalogRepository
	cache     ProductCache
	publisher domain.EventPublisher
}

// NewCatalogCommandService 创建商品命令服务实例
func NewCatalogCommandService(repo domain.CatalogRepository, cache ProductCache, publisher domain.EventPublisher) *CatalogCommandService {
	return &CatalogCommandService{repo: repo, cache: cache, publisher: publisher}
}

// CreateProduct 创建商品
func (s *CatalogCommandService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Weight:      cmd.Weight,
		Category:    cmd.Category,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	event := domain.ProductCreatedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price.String(),
		Category:  product.Category,
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "product.created", productCacheKey(product.ID), event); err != nil {
		logger.Warn(ctx, "failed to publish product.created event", "product_id", product.ID, "error", err)
	}

	return product, nil
}

// UpdateProduct 更新商品并使缓存失效
func (s *CatalogCommandService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	product.Name = cmd.Name
	product.Description = cmd.Description
	product.Price = cmd.Price
	product.Weight = cmd.Weight
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, productCacheKey(product.ID)); err != nil {
			logger.Warn(ctx, "failed to invalidate product cache", "product_id", product.ID, "error", err)
		}
	}

	event := domain.ProductUpdatedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price.String(),
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "product.updated", productCacheKey(product.ID), event); err != nil {
		logger.Warn(ctx, "failed to publish product.updated event", "product_id", product.ID, "error", err)
	}

	return product, nil
}
