package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/retailmall/internal/cart/domain"
	pkgdb "github.com/wyfcoding/retailmall/pkg/db"
	"gorm.io/gorm"
)

type cartRepository struct{ db *gorm.DB }

// NewCartRepository 创建购物车仓储实例
func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &cartRepository{db: db}
}

// conn 取当前连接；调用方处于 WithTx 边界内时返回该事务句柄
func (r *cartRepository) conn(ctx context.Context) *gorm.DB {
	return pkgdb.TxFromContext(ctx, r.db)
}

func (r *cartRepository) GetByIDForCustomer(ctx context.Context, cartID, customerID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.conn(ctx).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Where("id = ? AND customer_id = ?", cartID, customerID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByID(ctx context.Context, cartID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.conn(ctx).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		First(&cart, cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	return r.conn(ctx).WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(cart).Error
}

func (r *cartRepository) Delete(ctx context.Context, cartID uint) error {
	if err := r.conn(ctx).WithContext(ctx).Delete(&domain.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
		return err
	}
	return r.conn(ctx).WithContext(ctx).Delete(&domain.Cart{}, cartID).Error
}
