package application

import (
	"context"
	"fmt"

	"github.com/wyfcoding/retailmall/internal/customer/domain"
)

// CustomerService 客户服务，提供解析与基础维护操作
type CustomerService struct {
	repo domain.CustomerRepository
}

// NewCustomerService 创建客户服务实例
func NewCustomerService(repo domain.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Resolve 根据 ID 解析客户，不存在时返回 domain.ErrCustomerNotFound
func (s *CustomerService) Resolve(ctx context.Context, id uint) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// Register 注册新客户
func (s *CustomerService) Register(ctx context.Context, name, address string, tier domain.Tier) (*domain.Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if !tier.Valid() {
		tier = domain.TierBronze
	}

	customer := &domain.Customer{
		Name:    name,
		Address: address,
		Tier:    tier,
	}
	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// List 分页列出客户
func (s *CustomerService) List(ctx context.Context, limit, offset int) ([]*domain.Customer, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, limit, offset)
}
