package domain

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrCartNotFound 购物车不存在或不属于该客户
	ErrCartNotFound = errors.New("cart not found")
	// ErrInvalidQuantity 数量必须为正整数
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Cart 购物车聚合根。结账核心只读取购物车，不修改它。
type Cart struct {
	gorm.Model
	CustomerID uint       `gorm:"column:customer_id;index;not null"`
	Items      []CartItem `gorm:"foreignKey:CartID"`
}

func (Cart) TableName() string { return "carts" }

// CartItem 购物车行项。加入时冗余记录商品单价与单重，保证计价快照稳定。
type CartItem struct {
	gorm.Model
	CartID     uint            `gorm:"column:cart_id;index;not null"`
	ProductID  uint            `gorm:"column:product_id;index;not null"`
	Quantity   int             `gorm:"column:quantity;not null"`
	UnitPrice  decimal.Decimal `gorm:"column:unit_price;type:decimal(20,2);not null"`
	UnitWeight int             `gorm:"column:unit_weight;not null;default:0"`
}

func (CartItem) TableName() string { return "cart_items" }

// AddItem 向购物车添加商品；同一商品合并数量
func (c *Cart) AddItem(productID uint, qty int, unitPrice decimal.Decimal, unitWeight int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return nil
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID:  productID,
		Quantity:   qty,
		UnitPrice:  unitPrice,
		UnitWeight: unitWeight,
	})
	return nil
}

// RemoveItem 从购物车移除商品
func (c *Cart) RemoveItem(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// ProductsTotal 计算商品小计 Σ(单价 × 数量)
func (c *Cart) ProductsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// TotalWeight 计算总重量 Σ(单重 × 数量)
func (c *Cart) TotalWeight() int {
	var weight int
	for _, item := range c.Items {
		weight += item.UnitWeight * item.Quantity
	}
	return weight
}

// Lines 按行项顺序提取 (商品ID, 数量) 两个对齐的切片
func (c *Cart) Lines() ([]uint, []int) {
	ids := make([]uint, 0, len(c.Items))
	qtys := make([]int, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ProductID)
		qtys = append(qtys, item.Quantity)
	}
	return ids, qtys
}
