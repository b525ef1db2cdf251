package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/retailmall/internal/customer/domain"
)

type fakeCustomerRepo struct {
	customers map[uint]*domain.Customer
	nextID    uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uint]*domain.Customer), nextID: 1}
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uint) (*domain.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) Save(_ context.Context, customer *domain.Customer) error {
	if customer.ID == 0 {
		customer.ID = f.nextID
		f.nextID++
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context, _, _ int) ([]*domain.Customer, int64, error) {
	out := make([]*domain.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func TestRegister(t *testing.T) {
	service := NewCustomerService(newFakeCustomerRepo())

	customer, err := service.Register(context.Background(), "Ana", "Rua A, 1", domain.TierGold)
	require.NoError(t, err)

	assert.NotZero(t, customer.ID)
	assert.Equal(t, "Ana", customer.Name)
	assert.Equal(t, domain.TierGold, customer.Tier)
}

func TestRegister_InvalidTierDefaultsToBronze(t *testing.T) {
	service := NewCustomerService(newFakeCustomerRepo())

	tests := []domain.Tier{"", "PLATINUM", "gold"}
	for _, tier := range tests {
		customer, err := service.Register(context.Background(), "Ana", "", tier)
		require.NoError(t, err)
		assert.Equal(t, domain.TierBronze, customer.Tier, "tier %q", tier)
	}
}

func TestRegister_NameRequired(t *testing.T) {
	service := NewCustomerService(newFakeCustomerRepo())

	_, err := service.Register(context.Background(), "", "Rua A, 1", domain.TierSilver)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomerService(repo)

	created, err := service.Register(context.Background(), "Bruno", "", domain.TierSilver)
	require.NoError(t, err)

	resolved, err := service.Resolve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)

	_, err = service.Resolve(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
