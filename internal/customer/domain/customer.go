package domain

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrCustomerNotFound 客户不存在
	ErrCustomerNotFound = errors.New("customer not found")
)

// Tier 客户等级，决定运费折扣资格
type Tier string

const (
	TierGold   Tier = "GOLD"
	TierSilver Tier = "SILVER"
	TierBronze Tier = "BRONZE"
)

// Valid 判断是否为已知等级
func (t Tier) Valid() bool {
	switch t {
	case TierGold, TierSilver, TierBronze:
		return true
	default:
		return false
	}
}

// Customer 客户实体
type Customer struct {
	gorm.Model
	Name    string `gorm:"column:name;type:varchar(100);not null"`
	Address string `gorm:"column:address;type:varchar(255)"`
	Tier    Tier   `gorm:"column:tier;type:varchar(10);not null;default:'BRONZE'"`
}

func (Customer) TableName() string { return "customers" }
