package public

import (
	"github.com/shoplite/internal/http/response"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 创建商品请求
type ProductRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	Category    string       `json:"category"`
	ImageURL    string       `json:"image_url"`
	InStock     *bool        `json:"in_stock"`
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.CatalogService.Create(service.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		InStock:     req.InStock,
	})
	if err != nil {
		respondServiceError(c, err, nil, "Failed to create product")
		return
	}
	response.JSON(c, gin.H{"id": product.ID})
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.CatalogService.List()
	if err != nil {
		respondServiceError(c, err, nil, "Failed to list products")
		return
	}
	response.JSON(c, products)
}
