package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表。通过目录接口创建后不可修改（无更新/删除接口）。
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                             // 主键
	Title       string         `gorm:"not null;index" json:"title"`                      // 商品标题
	Description string         `gorm:"type:text" json:"description"`                     // 商品描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	Category    string         `gorm:"not null;index" json:"category"`                   // 分类
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`               // 图片地址
	InStock     bool           `gorm:"default:true" json:"in_stock"`                     // 是否有货
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                       // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                   // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
