package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	cartdomain "github.com/wyfcoding/retailmall/internal/cart/domain"
	"github.com/wyfcoding/retailmall/internal/checkout/application"
	"github.com/wyfcoding/retailmall/internal/checkout/domain"
	customerdomain "github.com/wyfcoding/retailmall/internal/customer/domain"
	"github.com/wyfcoding/retailmall/pkg/response"
)

// CheckoutHandler HTTP 处理器
// 负责结账与报价相关的 HTTP 请求
type CheckoutHandler struct {
	service *application.CheckoutService
}

// NewCheckoutHandler 创建 HTTP 处理器实例
func NewCheckoutHandler(service *application.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/checkout")
	{
		api.POST("", h.FinalizeCheckout) // 结账
		api.GET("/quote", h.Quote)       // 报价
	}
}

// FinalizeCheckoutRequest 结账请求
type FinalizeCheckoutRequest struct {
	CartID     uint `json:"cart_id" binding:"required"`
	CustomerID uint `json:"customer_id" binding:"required"`
}

// FinalizeCheckout 结账
func (h *CheckoutHandler) FinalizeCheckout(c *gin.Context) {
	var req FinalizeCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.service.FinalizeCheckout(c.Request.Context(), req.CartID, req.CustomerID)
	if err != nil {
		c.JSON(statusForCheckoutError(err), checkoutPayload(err, result))
		return
	}

	c.JSON(http.StatusOK, result)
}

// Quote 只读报价，不触发外部调用
func (h *CheckoutHandler) Quote(c *gin.Context) {
	cartID, err := parseUintQuery(c, "cart_id")
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid cart_id", "")
		return
	}
	customerID, err := parseUintQuery(c, "customer_id")
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid customer_id", "")
		return
	}

	quote, err := h.service.QuoteCheckout(c.Request.Context(), cartID, customerID)
	if err != nil {
		if isNotFound(err) {
			response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	response.Success(c, quote)
}

// statusForCheckoutError 错误分类到传输层状态码：
// 未找到 → 404，业务冲突 → 409，其余 → 500
func statusForCheckoutError(err error) int {
	switch {
	case isNotFound(err):
		return http.StatusNotFound
	case isConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// checkoutPayload 失败时始终返回结构化结果；未分类错误不泄露内部细节
func checkoutPayload(err error, result *domain.PurchaseResult) *domain.PurchaseResult {
	if isNotFound(err) || isConflict(err) {
		if result != nil {
			return result
		}
		return &domain.PurchaseResult{Success: false, Message: err.Error()}
	}
	return &domain.PurchaseResult{Success: false, Message: "internal server error"}
}

func isNotFound(err error) bool {
	return errors.Is(err, customerdomain.ErrCustomerNotFound) || errors.Is(err, cartdomain.ErrCartNotFound)
}

func isConflict(err error) bool {
	return errors.Is(err, domain.ErrItemsOutOfStock) ||
		errors.Is(err, domain.ErrPaymentNotAuthorized) ||
		errors.Is(err, domain.ErrStockDecrement)
}

func parseUintQuery(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
