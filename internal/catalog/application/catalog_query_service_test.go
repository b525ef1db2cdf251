package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/retailmall/internal/catalog/domain"
	"gorm.io/gorm"
)

type fakeCatalogRepo struct {
	products map[uint]*domain.Product
	getCalls int
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	f.getCalls++
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (f *fakeCatalogRepo) Save(_ context.Context, product *domain.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeCatalogRepo) List(_ context.Context, limit, offset int) ([]*domain.Product, int64, error) {
	out := make([]*domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	_ = limit
	_ = offset
	return out, int64(len(out)), nil
}

// fakeCache 内存缓存，JSON 序列化保持与 Redis 实现一致的取值语义
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	raw, ok := f.entries[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

func newProduct(id uint, price string) *domain.Product {
	return &domain.Product{
		Model:    gorm.Model{ID: id},
		Name:     "TV",
		Price:    decimal.RequireFromString(price),
		Weight:   10,
		Category: domain.CategoryElectronic,
	}
}

func TestGetProduct_ReadThroughCache(t *testing.T) {
	repo := &fakeCatalogRepo{products: map[uint]*domain.Product{1: newProduct(1, "999.90")}}
	cache := newFakeCache()
	service := NewCatalogQueryService(repo, cache, time.Minute)

	// 第一次读走仓储并回填缓存
	first, err := service.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
	assert.Contains(t, cache.entries, "catalog:product:1")

	// 第二次命中缓存，不再读仓储
	second, err := service.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.Price.Equal(second.Price))
}

func TestGetProduct_NoCacheConfigured(t *testing.T) {
	repo := &fakeCatalogRepo{products: map[uint]*domain.Product{1: newProduct(1, "100")}}
	service := NewCatalogQueryService(repo, nil, time.Minute)

	product, err := service.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), product.ID)

	_, err = service.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := &fakeCatalogRepo{products: map[uint]*domain.Product{}}
	service := NewCatalogQueryService(repo, newFakeCache(), time.Minute)

	_, err := service.GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
