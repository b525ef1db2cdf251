package application

import (
	"context"
	"fmt"
	"time"

	"github.com/wyfcoding/retailmall/internal/catalog/domain"
	"github.com/wyfcoding/retailmall/pkg/logger"
)

// ProductCache 商品缓存接口，由 Redis 缓存实现
type ProductCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CatalogQueryService 商品查询服务，读路径带 read-through 缓存
type CatalogQueryService struct {
	repo     domain.CatalogRepository
	cache    ProductCache
	cacheTTL time.Duration
}

// NewCatalogQueryService 创建商品查询服务实例
func NewCatalogQueryService(repo domain.CatalogRepository, cache ProductCache, cacheTTL time.Duration) *CatalogQueryService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &CatalogQueryService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// GetProduct 获取商品详情，优先读缓存
func (s *CatalogQueryService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	key := productCacheKey(id)

	if s.cache != nil {
		var cached domain.Product
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil && cached.ID != 0 {
			return &cached, nil
		}
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, product, s.cacheTTL); err != nil {
			logger.Warn(ctx, "failed to cache product", "product_id", id, "error", err)
		}
	}

	return product, nil
}

// ListProducts 分页列出商品
func (s *CatalogQueryService) ListProducts(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, limit, offset)
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("catalog:product:%d", id)
}
