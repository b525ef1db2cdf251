package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/retailmall/internal/catalog/domain"
	"gorm.io/gorm"
)

type catalogRepository struct{ db *gorm.DB }

// NewCatalogRepository 创建商品仓储实例
func NewCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) Save(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *catalogRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, int64, error) {
	var products []*domain.Product
	var total int64

	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("id").Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
