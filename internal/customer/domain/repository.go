package domain

import "context"

// CustomerRepository 客户仓储接口
type CustomerRepository interface {
	GetByID(ctx context.Context, id uint) (*Customer, error)
	Save(ctx context.Context, customer *Customer) error
	List(ctx context.Context, limit, offset int) ([]*Customer, int64, error)
}
