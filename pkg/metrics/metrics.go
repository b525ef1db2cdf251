// Package metrics 提供 Prometheus helper，包含 HTTP 与结账业务指标
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wyfcoding/retailmall/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram

	// 数据库查询耗时
	DBQueryDuration prometheus.Histogram

	// 结账成功计数
	CheckoutsTotal prometheus.Counter
	// 结账失败计数（按原因）
	CheckoutFailuresTotal *prometheus.CounterVec
	// 支付补偿（撤单）计数
	PaymentCancellationsTotal prometheus.Counter
	// 购物车商品添加计数
	CartItemsAddedTotal prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "retailmall",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "retailmall",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		DBQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "retailmall",
			Subsystem: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		CheckoutsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "retailmall",
			Subsystem: serviceName,
			Name:      "checkouts_total",
			Help:      "Total successful checkouts",
		}),
		CheckoutFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "retailmall",
			Subsystem: serviceName,
			Name:      "checkout_failures_total",
			Help:      "Total failed checkouts by reason",
		}, []string{"reason"}),
		PaymentCancellationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "retailmall",
			Subsystem: serviceName,
			Name:      "payment_cancellations_total",
			Help:      "Total compensating payment cancellations",
		}),
		CartItemsAddedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "retailmall",
			Subsystem: serviceName,
			Name:      "cart_items_added_total",
			Help:      "Total items added to carts",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	collectors := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.CheckoutsTotal,
		m.CheckoutFailuresTotal,
		m.PaymentCancellationsTotal,
		m.CartItemsAddedTotal,
	}

	for _, c := range collectors {
		if err := prometheus.DefaultRegisterer.Register(c); err != nil {
			logger.Error(context.Background(), "failed to register metric", "error", err)
			return err
		}
	}

	return nil
}

// RecordDBQuery 记录一次数据库查询耗时
func (m *Metrics) RecordDBQuery(d time.Duration) {
	if m == nil {
		return
	}
	m.DBQueryDuration.Observe(d.Seconds())
}

// RecordCheckout 记录一次成功结账
func (m *Metrics) RecordCheckout() {
	if m == nil {
		return
	}
	m.CheckoutsTotal.Inc()
}

// RecordCheckoutFailure 记录一次失败结账
func (m *Metrics) RecordCheckoutFailure(reason string) {
	if m == nil {
		return
	}
	m.CheckoutFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordPaymentCancellation 记录一次补偿撤单
func (m *Metrics) RecordPaymentCancellation() {
	if m == nil {
		return
	}
	m.PaymentCancellationsTotal.Inc()
}

// RecordCartItemAdded 记录一次购物车加购
func (m *Metrics) RecordCartItemAdded() {
	if m == nil {
		return
	}
	m.CartItemsAddedTotal.Inc()
}

// StartHTTPServer 启动 Prometheus HTTP 服务器
func StartHTTPServer(port int, path string) {
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info(context.Background(), "starting Prometheus HTTP server", "addr", addr, "path", path)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error(context.Background(), "Prometheus HTTP server stopped", "error", err)
		}
	}()
}
