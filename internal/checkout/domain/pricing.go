package domain

import (
	"github.com/shopspring/decimal"
	cartdomain "github.com/wyfcoding/retailmall/internal/cart/domain"
	customerdomain "github.com/wyfcoding/retailmall/internal/customer/domain"
)

// 运费按总重量分段计费，区间下界为严格大于
var (
	heavyWeightThreshold  = 50
	mediumWeightThreshold = 10
	lightWeightThreshold  = 5

	heavyWeightRate  = decimal.NewFromInt(7)
	mediumWeightRate = decimal.NewFromInt(4)
	lightWeightRate  = decimal.NewFromInt(2)
)

// 商品小计折扣阈值与比例，阈值为严格大于
var (
	highValueThreshold = decimal.NewFromInt(1000)
	midValueThreshold  = decimal.NewFromInt(500)

	highValueDiscountRate = decimal.NewFromFloat(0.20)
	midValueDiscountRate  = decimal.NewFromFloat(0.10)

	half = decimal.NewFromFloat(0.50)
)

// ShippingCost 计算运费：总重量 w>50 按 7/单位，w>10 按 4/单位，w>5 按 2/单位，否则免运费。
// 空购物车或总重为零时运费为零。
func ShippingCost(cart *cartdomain.Cart) decimal.Decimal {
	weight := cart.TotalWeight()
	w := decimal.NewFromInt(int64(weight))

	switch {
	case weight > heavyWeightThreshold:
		return w.Mul(heavyWeightRate)
	case weight > mediumWeightThreshold:
		return w.Mul(mediumWeightRate)
	case weight > lightWeightThreshold:
		return w.Mul(lightWeightRate)
	default:
		return decimal.Zero
	}
}

// ValueDiscount 计算商品小计折扣：>1000 打八折（折扣 20%），>500 打九折（折扣 10%），否则无折扣。
// 边界严格大于：恰好 1000 落入 10% 档，恰好 500 无折扣。
func ValueDiscount(productsTotal decimal.Decimal) decimal.Decimal {
	switch {
	case productsTotal.GreaterThan(highValueThreshold):
		return productsTotal.Mul(highValueDiscountRate)
	case productsTotal.GreaterThan(midValueThreshold):
		return productsTotal.Mul(midValueDiscountRate)
	default:
		return decimal.Zero
	}
}

// TierShippingDiscount 计算客户等级运费折扣：GOLD 全免，SILVER 减半，
// BRONZE 及未知等级不打折。显式 default 保证映射总是有定义。
func TierShippingDiscount(tier customerdomain.Tier, shippingCost decimal.Decimal) decimal.Decimal {
	switch tier {
	case customerdomain.TierGold:
		return shippingCost
	case customerdomain.TierSilver:
		return shippingCost.Mul(half)
	default:
		return decimal.Zero
	}
}

// Total 计算应付总额：
// 商品小计 − 小计折扣 + 运费 − 等级运费折扣。全程精确小数，不做中间舍入。
// 空购物车总额恰好为零。
func Total(cart *cartdomain.Cart, tier customerdomain.Tier) decimal.Decimal {
	productsTotal := cart.ProductsTotal()
	shipping := ShippingCost(cart)
	discount := ValueDiscount(productsTotal)
	tierDiscount := TierShippingDiscount(tier, shipping)

	return productsTotal.Sub(discount).Add(shipping).Sub(tierDiscount)
}

// Quote 计价明细，用于报价接口
type Quote struct {
	ProductsTotal        decimal.Decimal `json:"products_total"`
	ShippingCost         decimal.Decimal `json:"shipping_cost"`
	ValueDiscount        decimal.Decimal `json:"value_discount"`
	TierShippingDiscount decimal.Decimal `json:"tier_shipping_discount"`
	Total                decimal.Decimal `json:"total"`
}

// QuoteCart 一次性计算全部计价明细
func QuoteCart(cart *cartdomain.Cart, tier customerdomain.Tier) Quote {
	productsTotal := cart.ProductsTotal()
	shipping := ShippingCost(cart)
	discount := ValueDiscount(productsTotal)
	tierDiscount := TierShippingDiscount(tier, shipping)

	return Quote{
		ProductsTotal:        productsTotal,
		ShippingCost:         shipping,
		ValueDiscount:        discount,
		TierShippingDiscount: tierDiscount,
		Total:                productsTotal.Sub(discount).Add(shipping).Sub(tierDiscount),
	}
}
