package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	cartdomain "github.com/wyfcoding/retailmall/internal/cart/domain"
	customerdomain "github.com/wyfcoding/retailmall/internal/customer/domain"
)

func cartWithWeight(t *testing.T, unitWeight, qty int) *cartdomain.Cart {
	t.Helper()
	return &cartdomain.Cart{
		Items: []cartdomain.CartItem{
			{ProductID: 1, Quantity: qty, UnitPrice: decimal.NewFromInt(10), UnitWeight: unitWeight},
		},
	}
}

func TestShippingCost_WeightBands(t *testing.T) {
	tests := []struct {
		name     string
		weight   int
		expected string
	}{
		{"zero weight", 0, "0"},
		{"at light threshold is free", 5, "0"},
		{"just above light threshold", 6, "12"},
		{"at medium lower bound", 10, "20"},
		{"just above medium lower bound", 11, "44"},
		{"at heavy lower bound stays in medium band", 50, "200"},
		{"just above heavy lower bound", 51, "357"},
		{"well into heavy band", 60, "420"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := cartWithWeight(t, tt.weight, 1)
			got := ShippingCost(cart)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"weight %d: expected %s, got %s", tt.weight, tt.expected, got)
		})
	}
}

func TestShippingCost_EmptyCart(t *testing.T) {
	cart := &cartdomain.Cart{}
	assert.True(t, ShippingCost(cart).IsZero())
}

func TestShippingCost_SumsLineItems(t *testing.T) {
	// 2 件 × 20/件 + 1 件 × 20/件 = 60，落入 >50 档
	cart := &cartdomain.Cart{
		Items: []cartdomain.CartItem{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(150), UnitWeight: 20},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(150), UnitWeight: 20},
		},
	}
	assert.True(t, ShippingCost(cart).Equal(decimal.NewFromInt(420)))
}

func TestValueDiscount_Bands(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		expected string
	}{
		{"below mid threshold", "400", "0"},
		{"exactly mid threshold gets nothing", "500", "0"},
		{"just above mid threshold", "501", "50.1"},
		{"exactly high threshold stays in mid band", "1000", "100"},
		{"just above high threshold", "1001", "200.2"},
		{"well above high threshold", "2000", "400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueDiscount(decimal.RequireFromString(tt.total))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"total %s: expected %s, got %s", tt.total, tt.expected, got)
		})
	}
}

func TestTierShippingDiscount(t *testing.T) {
	shipping := decimal.NewFromInt(60)

	tests := []struct {
		name     string
		tier     customerdomain.Tier
		expected string
	}{
		{"gold waives full shipping", customerdomain.TierGold, "60"},
		{"silver waives half", customerdomain.TierSilver, "30"},
		{"bronze pays full shipping", customerdomain.TierBronze, "0"},
		{"unknown tier behaves like bronze", customerdomain.Tier("PLATINUM"), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TierShippingDiscount(tt.tier, shipping)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)))
		})
	}
}

func TestTotal_EmptyCartIsZero(t *testing.T) {
	cart := &cartdomain.Cart{}
	for _, tier := range []customerdomain.Tier{
		customerdomain.TierGold, customerdomain.TierSilver, customerdomain.TierBronze,
	} {
		assert.True(t, Total(cart, tier).IsZero(), "tier %s", tier)
	}
}

func TestTotal_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		unitPrice  string
		unitWeight int
		qty        int
		tier       customerdomain.Tier
		expected   string
	}{
		// 商品 200，总重 4 ≤ 5 免运费
		{"light cart no shipping", "100", 2, 2, customerdomain.TierBronze, "200"},
		// 商品 450，总重 60 → 运费 420
		{"heavy cart full shipping", "150", 20, 3, customerdomain.TierBronze, "870"},
		// 商品 600 → 9 折，总重 1 免运费
		{"value discount applies", "600", 1, 1, customerdomain.TierBronze, "540"},
		// 商品 300，总重 15 → 运费 60；GOLD 全免
		{"gold waives shipping", "300", 15, 1, customerdomain.TierGold, "300"},
		// 同一购物车 SILVER 减半
		{"silver halves shipping", "300", 15, 1, customerdomain.TierSilver, "330"},
		// 同一购物车 BRONZE 全额
		{"bronze pays shipping", "300", 15, 1, customerdomain.TierBronze, "360"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &cartdomain.Cart{
				Items: []cartdomain.CartItem{
					{
						ProductID:  1,
						Quantity:   tt.qty,
						UnitPrice:  decimal.RequireFromString(tt.unitPrice),
						UnitWeight: tt.unitWeight,
					},
				},
			}
			got := Total(cart, tt.tier)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, got)
		})
	}
}

func TestTotal_IsDeterministic(t *testing.T) {
	cart := &cartdomain.Cart{
		Items: []cartdomain.CartItem{
			{ProductID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("199.99"), UnitWeight: 7},
		},
	}
	first := Total(cart, customerdomain.TierSilver)
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(Total(cart, customerdomain.TierSilver)))
	}
}

func TestQuoteCart_BreakdownConsistent(t *testing.T) {
	cart := &cartdomain.Cart{
		Items: []cartdomain.CartItem{
			{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(300), UnitWeight: 15},
		},
	}
	quote := QuoteCart(cart, customerdomain.TierSilver)

	assert.True(t, quote.ProductsTotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, quote.ShippingCost.Equal(decimal.NewFromInt(60)))
	assert.True(t, quote.ValueDiscount.IsZero())
	assert.True(t, quote.TierShippingDiscount.Equal(decimal.NewFromInt(30)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(330)))

	recomputed := quote.ProductsTotal.
		Sub(quote.ValueDiscount).
		Add(quote.ShippingCost).
		Sub(quote.TierShippingDiscount)
	assert.True(t, quote.Total.Equal(recomputed))
}
