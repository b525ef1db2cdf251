package domain

import "context"

// CartRepository 购物车仓储接口
type CartRepository interface {
	// GetByIDForCustomer 按购物车 ID 查找且校验归属客户；不存在或不属于该客户时返回 ErrCartNotFound
	GetByIDForCustomer(ctx context.Context, cartID, customerID uint) (*Cart, error)
	GetByID(ctx context.Context, cartID uint) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, cartID uint) error
}
