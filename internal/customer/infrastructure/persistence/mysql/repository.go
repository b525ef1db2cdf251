package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/retailmall/internal/customer/domain"
	pkgdb "github.com/wyfcoding/retailmall/pkg/db"
	"gorm.io/gorm"
)

type customerRepository struct{ db *gorm.DB }

// NewCustomerRepository 创建客户仓储实例
func NewCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return &customerRepository{db: db}
}

// conn 取当前连接；调用方处于 WithTx 边界内时返回该事务句柄
func (r *customerRepository) conn(ctx context.Context) *gorm.DB {
	return pkgdb.TxFromContext(ctx, r.db)
}

func (r *customerRepository) GetByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.conn(ctx).WithContext(ctx).First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	return r.conn(ctx).WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, int64, error) {
	var customers []*domain.Customer
	var total int64

	if err := r.conn(ctx).WithContext(ctx).Model(&domain.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.conn(ctx).WithContext(ctx).Limit(limit).Offset(offset).Order("id").Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}
