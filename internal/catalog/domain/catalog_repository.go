package domain

import "context"

// CatalogRepository 商品仓储接口
type CatalogRepository interface {
	GetByID(ctx context.Context, id uint) (*Product, error)
	Save(ctx context.Context, product *Product) error
	List(ctx context.Context, limit, offset int) ([]*Product, int64, error)
}
