package public

import (
	"strconv"

	"github.com/shoplite/internal/http/response"
	"github.com/shoplite/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 加购请求。quantity 省略时默认为 1。
type CartItemRequest struct {
	UserID    string `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

// AddToCart 添加购物车项（同商品重复加购时累加数量）
func (h *Handler) AddToCart(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	id, err := h.CartService.Add(service.AddCartItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		respondServiceError(c, err, cartErrorRules, "Failed to add to cart")
		return
	}
	response.JSON(c, gin.H{"id": id})
}

// GetCart 获取用户购物车
func (h *Handler) GetCart(c *gin.Context) {
	userID := c.Param("user_id")
	items, err := h.CartService.ListByUser(userID)
	if err != nil {
		respondServiceError(c, err, cartErrorRules, "Failed to fetch cart")
		return
	}
	response.JSON(c, items)
}

// DeleteCartItem 按行 ID 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	rawID := c.Param("item_id")
	itemID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || itemID == 0 {
		response.BadRequest(c, "Invalid item id")
		return
	}
	if err := h.CartService.Remove(uint(itemID)); err != nil {
		respondServiceError(c, err, cartErrorRules, "Failed to delete cart item")
		return
	}
	response.JSON(c, gin.H{"status": "deleted"})
}
