package models

import "time"

// OrderItem 订单项表。保存下单时刻的商品标题与单价快照，
// 与在售商品解耦，后续改价不影响历史订单。
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`                      // 订单ID
	ProductID uint      `gorm:"index;not null" json:"product_id"`                    // 商品ID
	Title     string    `gorm:"not null" json:"title"`                               // 商品标题快照
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`  // 单价快照
	Quantity  int       `gorm:"not null" json:"quantity"`                            // 数量
	CreatedAt time.Time `json:"created_at"`                                          // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
