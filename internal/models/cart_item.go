package models

import "time"

// CartItem 购物车项。每个 (user_id, product_id) 组合仅一行，
// 合并由追加式 upsert 逻辑保证，而非唯一索引。
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                               // 主键
	UserID    string    `gorm:"not null;index:idx_cart_user_product" json:"user_id"` // 用户标识（外部透传）
	ProductID uint      `gorm:"not null;index:idx_cart_user_product" json:"product_id"` // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                           // 数量
	CreatedAt time.Time `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                            // 更新时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
