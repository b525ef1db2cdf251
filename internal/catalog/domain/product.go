package domain

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidPrice 商品单价非法（必须非负）
	ErrInvalidPrice = errors.New("product price must be non-negative")
	// ErrInvalidWeight 商品重量非法（必须是非负整数）
	ErrInvalidWeight = errors.New("product weight must be non-negative")
)

// Category 商品类目
type Category string

const (
	CategoryElectronic Category = "ELECTRONIC"
	CategoryClothing   Category = "CLOTHING"
	CategoryFurniture  Category = "FURNITURE"
	CategoryFood       Category = "FOOD"
)

// Product 商品实体。
// Price 使用精确小数，Weight 为整数重量单位；Category 目前不参与计价。
type Product struct {
	gorm.Model
	Name        string          `gorm:"column:name;type:varchar(255);not null"`
	Description string          `gorm:"column:description;type:text"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(20,2);not null"`
	Weight      int             `gorm:"column:weight;not null;default:0"`
	Category    Category        `gorm:"column:category;type:varchar(20);index"`
}

func (Product) TableName() string { return "products" }

// Validate 校验商品不变量
func (p *Product) Validate() error {
	if p.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if p.Weight < 0 {
		return ErrInvalidWeight
	}
	return nil
}
