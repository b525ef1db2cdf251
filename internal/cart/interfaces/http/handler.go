package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/retailmall/internal/cart/application"
	"github.com/wyfcoding/retailmall/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/retailmall/internal/catalog/domain"
	"github.com/wyfcoding/retailmall/pkg/response"
)

// CartHandler HTTP 处理器
type CartHandler struct {
	service *application.CartService
}

// NewCartHandler 创建 HTTP 处理器实例
func NewCartHandler(service *application.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/carts")
	{
		api.POST("", h.CreateCart)
		api.GET("/:id", h.GetCart)
		api.POST("/:id/items", h.AddItem)
		api.DELETE("/:id/items/:product_id", h.RemoveItem)
		api.DELETE("/:id", h.Clear)
	}
}

// CreateCartRequest 创建购物车请求
type CreateCartRequest struct {
	CustomerID uint `json:"customer_id" binding:"required"`
}

// AddItemRequest 加购请求
type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CreateCart 创建购物车
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cart, err := h.service.CreateCart(c.Request.Context(), req.CustomerID)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, cart)
}

// GetCart 获取购物车详情
func (h *CartHandler) GetCart(c *gin.Context) {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid cart id", "")
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), cartID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, cart)
}

// AddItem 向购物车添加商品
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid cart id", "")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), application.AddItemCommand{
		CartID:    cartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, cart)
}

// RemoveItem 从购物车移除商品
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid cart id", "")
		return
	}
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id", "")
		return
	}

	cart, err := h.service.RemoveItem(c.Request.Context(), application.RemoveItemCommand{
		CartID:    cartID,
		ProductID: productID,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, cart)
}

// Clear 清空购物车
func (h *CartHandler) Clear(c *gin.Context) {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid cart id", "")
		return
	}

	if err := h.service.Clear(c.Request.Context(), cartID); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, gin.H{"cart_id": cartID})
}

func (h *CartHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCartNotFound), errors.Is(err, catalogdomain.ErrProductNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrInvalidQuantity):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	default:
		response.ErrorWithStatus(c, http.StatusInternalServerError, "internal server error", "")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
