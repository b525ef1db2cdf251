package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/retailmall/internal/customer/application"
	"github.com/wyfcoding/retailmall/internal/customer/domain"
	"github.com/wyfcoding/retailmall/pkg/response"
)

// CustomerHandler HTTP 处理器
type CustomerHandler struct {
	service *application.CustomerService
}

// NewCustomerHandler 创建 HTTP 处理器实例
func NewCustomerHandler(service *application.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/customers")
	{
		api.POST("", h.Register)
		api.GET("/:id", h.GetCustomer)
		api.GET("", h.ListCustomers)
	}
}

// RegisterCustomerRequest 注册客户请求
type RegisterCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Tier    string `json:"tier"`
}

// Register 注册客户
func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	customer, err := h.service.Register(c.Request.Context(), req.Name, req.Address, domain.Tier(req.Tier))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, customer)
}

// GetCustomer 获取客户详情
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid customer id", "")
		return
	}

	customer, err := h.service.Resolve(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	response.Success(c, customer)
}

// ListCustomers 分页列出客户
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	customers, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	response.Success(c, gin.H{"customers": customers, "total": total})
}
