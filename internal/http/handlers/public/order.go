package public

import (
	"github.com/shoplite/internal/http/response"

	"github.com/gin-gonic/gin"
)

// OrderRequest 结算请求
type OrderRequest struct {
	UserID string `json:"user_id"`
}

// PlaceOrder 将用户购物车结算为订单
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.OrderService.Checkout(req.UserID)
	if err != nil {
		respondServiceError(c, err, orderErrorRules, "Failed to place order")
		return
	}
	response.JSON(c, gin.H{"id": order.ID, "total": order.Total})
}

// ListOrders 用户订单历史
func (h *Handler) ListOrders(c *gin.Context) {
	userID := c.Param("user_id")
	orders, err := h.OrderService.ListByUser(userID)
	if err != nil {
		respondServiceError(c, err, orderErrorRules, "Failed to list orders")
		return
	}
	response.JSON(c, orders)
}
