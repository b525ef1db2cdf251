package application

import (
	"context"
	"time"

	"github.com/wyfcoding/retailmall/internal/catalog/domain"
)

// CatalogService 商品服务门面，整合命令服务和查询服务
type CatalogService struct {
	commandService *CatalogCommandService
	queryService   *CatalogQueryService
}

// NewCatalogService 创建商品服务门面实例
func NewCatalogService(
	repo domain.CatalogRepository,
	cache ProductCache,
	publisher domain.EventPublisher,
	cacheTTL time.Duration,
) *CatalogService {
	return &CatalogService{
		commandService: NewCatalogCommandService(repo, cache, publisher),
		queryService:   NewCatalogQueryService(repo, cache, cacheTTL),
	}
}

// CreateProduct 创建商品
func (s *CatalogService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	return s.commandService.CreateProduct(ctx, cmd)
}

// UpdateProduct 更新商品
func (s *CatalogService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	return s.commandService.UpdateProduct(ctx, cmd)
}

// GetProduct 获取商品详情
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.queryService.GetProduct(ctx, id)
}

// ListProducts 分页列出商品
func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error) {
	return s.queryService.ListProducts(ctx, limit, offset)
}
