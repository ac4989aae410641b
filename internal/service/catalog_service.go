package service

import (
	"strings"

	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
)

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Title       string
	Description string
	Price       models.Money
	Category    string
	ImageURL    string
	InStock     *bool
}

// CatalogService 商品目录服务。商品创建后不可修改。
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// Create 校验并创建商品，返回持久化后的记录
func (s *CatalogService) Create(input CreateProductInput) (*models.Product, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, NewValidationError("title", "required")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, NewValidationError("category", "required")
	}
	if input.Price.IsNegative() {
		return nil, NewValidationError("price", "must be greater than or equal to 0")
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}
	product := &models.Product{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		ImageURL:    input.ImageURL,
		InStock:     inStock,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List 返回全部商品
func (s *CatalogService) List() ([]models.Product, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
