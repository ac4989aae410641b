package models

import "time"

// 订单状态。订单创建后不可变，没有状态迁移。
const OrderStatusPlaced = "placed"

// Order 订单表
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                // 主键
	UserID    string    `gorm:"index;not null" json:"user_id"`                       // 用户标识
	Status    string    `gorm:"index;not null;default:'placed'" json:"status"`       // 订单状态
	Total     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total"`  // 实付金额
	CreatedAt time.Time `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                          // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
