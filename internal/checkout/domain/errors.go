package domain

import "errors"

// 结账流程的业务冲突错误。客户/购物车缺失错误由各自领域定义。
var (
	// ErrItemsOutOfStock 库存可用性检查未通过
	ErrItemsOutOfStock = errors.New("items out of stock")
	// ErrPaymentNotAuthorized 支付未获授权
	ErrPaymentNotAuthorized = errors.New("payment not authorized")
	// ErrStockDecrement 库存扣减失败（已触发支付补偿撤单）
	ErrStockDecrement = errors.New("stock decrement error")
)
