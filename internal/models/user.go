package models

import "time"

// User 用户表。当前没有任何接口引用该表，仅随迁移建表，
// seed 命令写入演示账号。
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`              // 主键
	Name         string    `gorm:"not null" json:"name"`              // 姓名
	Email        string    `gorm:"uniqueIndex;not null" json:"email"` // 邮箱
	Address      string    `gorm:"type:varchar(500)" json:"address"`  // 地址
	Age          *int      `json:"age,omitempty"`                     // 年龄
	IsActive     bool      `gorm:"default:true" json:"is_active"`     // 是否有效
	PasswordHash string    `gorm:"type:varchar(200)" json:"-"`        // 密码哈希（仅 seed 写入）
	CreatedAt    time.Time `json:"created_at"`                        // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                        // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
