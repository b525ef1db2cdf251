package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	cartdomain "github.com/wyfcoding/retailmall/internal/cart/domain"
	"github.com/wyfcoding/retailmall/internal/checkout/domain"
	customerdomain "github.com/wyfcoding/retailmall/internal/customer/domain"
	"github.com/wyfcoding/retailmall/pkg/logger"
	"github.com/wyfcoding/retailmall/pkg/metrics"
)

// CustomerResolver 客户解析接口，由客户服务实现
type CustomerResolver interface {
	Resolve(ctx context.Context, customerID uint) (*customerdomain.Customer, error)
}

// CartResolver 购物车解析接口，由购物车服务实现；按归属客户校验
type CartResolver interface {
	GetForCustomer(ctx context.Context, cartID, customerID uint) (*cartdomain.Cart, error)
}

// TxRunner 事务边界，由 pkg/db 实现。fn 收到携带事务句柄的 context，
// 边界内的仓储读取落在同一事务。
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CheckoutService 结账编排服务。
// 对两个外部系统（库存、支付）执行 检查可用性 → 授权支付 → 扣减库存 的
// 线性序列，扣减失败时以撤销支付作为唯一补偿动作。每个外部调用每次结账
// 只尝试一次，不做重试。
type CheckoutService struct {
	customers CustomerResolver
	carts     CartResolver
	tx        TxRunner
	inventory domain.InventoryGateway
	payment   domain.PaymentGateway
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewCheckoutService 构造函数，所有协作者显式注入
func NewCheckoutService(
	customers CustomerResolver,
	carts CartResolver,
	tx TxRunner,
	inventory domain.InventoryGateway,
	payment domain.PaymentGateway,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
	log *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		customers: customers,
		carts:     carts,
		tx:        tx,
		inventory: inventory,
		payment:   payment,
		publisher: publisher,
		metrics:   m,
		logger:    log.With("module", "checkout"),
	}
}

// resolveParticipants 在一个事务边界内解析客户与归属购物车，
// 两次读取落在同一快照。购物车解析失败时已解析的客户照常返回，
// 供调用方区分失败阶段。
func (s *CheckoutService) resolveParticipants(ctx context.Context, cartID, customerID uint) (*customerdomain.Customer, *cartdomain.Cart, error) {
	var (
		customer *customerdomain.Customer
		cart     *cartdomain.Cart
	)
	err := s.inTx(ctx, func(txCtx context.Context) error {
		var err error
		customer, err = s.customers.Resolve(txCtx, customerID)
		if err != nil {
			return err
		}
		cart, err = s.carts.GetForCustomer(txCtx, cartID, customer.ID)
		return err
	})
	return customer, cart, err
}

func (s *CheckoutService) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.WithTx(ctx, fn)
}

// FinalizeCheckout 结账：
//  1. 解析客户
//  2. 按归属客户解析购物车（1、2 在同一事务边界内读取）
//  3. 按行项顺序提取 (商品ID, 数量)
//  4. 库存可用性检查，不可用则中止
//  5. 计算应付总额
//  6. 授权支付，被拒则中止
//  7. 扣减库存，失败则撤销刚授权的支付后中止
//  8. 成功返回交易号
//
// 返回的 PurchaseResult 始终有效；业务失败时同时返回对应的哨兵错误。
func (s *CheckoutService) FinalizeCheckout(ctx context.Context, cartID, customerID uint) (*domain.PurchaseResult, error) {
	defer logger.LogDuration(ctx, "checkout finalized",
		"cart_id", cartID,
		"customer_id", customerID,
	)()

	s.logger.InfoContext(ctx, "starting checkout",
		"cart_id", cartID,
		"customer_id", customerID,
	)

	customer, cart, err := s.resolveParticipants(ctx, cartID, customerID)
	if err != nil {
		if customer == nil {
			s.recordFailure("customer_not_found")
		} else {
			s.recordFailure("cart_not_found")
		}
		return failedResult(err), err
	}

	productIDs, quantities := cart.Lines()

	availability, err := s.inventory.CheckAvailability(ctx, productIDs, quantities)
	if err != nil {
		s.recordFailure("inventory_unreachable")
		return failedResult(err), fmt.Errorf("availability check failed: %w", err)
	}
	if !availability.Available {
		s.logger.WarnContext(ctx, "items out of stock",
			"cart_id", cartID,
			"unavailable_ids", availability.UnavailableIDs,
		)
		s.recordFailure("out_of_stock")
		return failedResult(domain.ErrItemsOutOfStock), domain.ErrItemsOutOfStock
	}

	total := domain.Total(cart, customer.Tier)

	authorization, err := s.payment.Authorize(ctx, customer.ID, total)
	if err != nil {
		s.recordFailure("payment_unreachable")
		return failedResult(err), fmt.Errorf("payment authorization failed: %w", err)
	}
	if !authorization.Authorized {
		s.logger.WarnContext(ctx, "payment not authorized",
			"cart_id", cartID,
			"customer_id", customer.ID,
			"amount", total.String(),
		)
		s.recordFailure("payment_denied")
		return failedResult(domain.ErrPaymentNotAuthorized), domain.ErrPaymentNotAuthorized
	}

	// 扣减复用支付前提取的同一份 ID/数量切片，不再重新校验可用性，
	// 以扣减调用自身的成功标志为准。
	decrement, err := s.inventory.DecrementStock(ctx, productIDs, quantities)
	if err != nil || !decrement.Success {
		s.compensatePayment(ctx, customer.ID, authorization.TransactionID)
		if err != nil {
			s.recordFailure("decrement_unreachable")
			return failedResult(err), fmt.Errorf("stock decrement failed: %w", err)
		}
		s.recordFailure("decrement_failed")
		return failedResult(domain.ErrStockDecrement), domain.ErrStockDecrement
	}

	s.metrics.RecordCheckout()
	s.logger.InfoContext(ctx, "checkout completed",
		"cart_id", cartID,
		"customer_id", customer.ID,
		"transaction_id", authorization.TransactionID,
		"total", total.String(),
	)

	s.publishCompleted(ctx, cart, authorization.TransactionID, total.String())

	return &domain.PurchaseResult{
		Success:       true,
		TransactionID: authorization.TransactionID,
		Message:       "purchase completed successfully",
	}, nil
}

// compensatePayment 撤销已授权的支付。补偿本身尽力而为：失败仅记录，不再上抛。
func (s *CheckoutService) compensatePayment(ctx context.Context, customerID uint, transactionID string) {
	s.logger.WarnContext(ctx, "stock decrement failed, cancelling payment",
		"customer_id", customerID,
		"transaction_id", transactionID,
	)
	s.metrics.RecordPaymentCancellation()

	if err := s.payment.Cancel(ctx, customerID, transactionID); err != nil {
		s.logger.WarnContext(ctx, "payment cancellation failed",
			"customer_id", customerID,
			"transaction_id", transactionID,
			"error", err,
		)
	}
}

func (s *CheckoutService) publishCompleted(ctx context.Context, cart *cartdomain.Cart, transactionID, total string) {
	if s.publisher == nil {
		return
	}
	event := domain.CheckoutCompletedEvent{
		CartID:        cart.ID,
		CustomerID:    cart.CustomerID,
		TransactionID: transactionID,
		Total:         total,
		Timestamp:     time.Now(),
	}
	key := strconv.FormatUint(uint64(cart.ID), 10)
	if err := s.publisher.Publish(ctx, "checkout.completed", key, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish checkout.completed event",
			"cart_id", cart.ID,
			"error", err,
		)
	}
}

func (s *CheckoutService) recordFailure(reason string) {
	s.metrics.RecordCheckoutFailure(reason)
}

func failedResult(err error) *domain.PurchaseResult {
	return &domain.PurchaseResult{
		Success: false,
		Message: err.Error(),
	}
}
