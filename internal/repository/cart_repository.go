package repository

import (
	"errors"

	"github.com/shoplite/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID string) ([]models.CartItem, error)
	GetByUserAndProduct(userID string, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	AddQuantity(id uint, delta int) error
	DeleteByID(id uint) (int64, error)
	ClearByUser(userID string) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction 执行事务
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListByUser 获取用户购物车项
func (r *GormCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByUserAndProduct 查找用户购物车中的指定商品行，不存在时返回 nil
func (r *GormCartRepository) GetByUserAndProduct(userID string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create 新增购物车行
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// AddQuantity 在已有行上累加数量
func (r *GormCartRepository) AddQuantity(id uint, delta int) error {
	return r.db.Model(&models.CartItem{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta)).Error
}

// DeleteByID 删除购物车行，返回受影响行数
func (r *GormCartRepository) DeleteByID(id uint) (int64, error) {
	result := r.db.Delete(&models.CartItem{}, id)
	return result.RowsAffected, result.Error
}

// ClearByUser 清空用户购物车
func (r *GormCartRepository) ClearByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
