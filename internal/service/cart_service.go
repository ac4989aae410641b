package service

import (
	"strings"

	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
)

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	UserID    string
	ProductID uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cartRepo repository.CartRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// Add 添加购物车项。同一 (user_id, product_id) 已存在时在原行上累加数量，
// 返回行 ID。重复调用不幂等：每次都会继续累加。
func (s *CartService) Add(input AddCartItemInput) (uint, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return 0, NewValidationError("user_id", "required")
	}
	if input.ProductID == 0 {
		return 0, NewValidationError("product_id", "required")
	}
	if input.Quantity < 1 {
		return 0, NewValidationError("quantity", "must be greater than or equal to 1")
	}

	existing, err := s.cartRepo.GetByUserAndProduct(input.UserID, input.ProductID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		if err := s.cartRepo.AddQuantity(existing.ID, input.Quantity); err != nil {
			return 0, err
		}
		return existing.ID, nil
	}

	item := &models.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

// ListByUser 返回用户全部购物车行。行内商品可能已下架或删除，
// 此处不做有效性过滤。
func (s *CartService) ListByUser(userID string) ([]models.CartItem, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

// Remove 按行 ID 删除购物车项，无匹配行时返回 ErrCartItemNotFound
func (s *CartService) Remove(itemID uint) error {
	affected, err := s.cartRepo.DeleteByID(itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
