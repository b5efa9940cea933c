package model

import (
	"time"
)

// User 用户模型
// 索引与唯一约束：邮箱唯一、slug唯一
// 说明：密码仅存储哈希（PasswordHash），不存储明文
// Slug 注册时根据姓名生成一次，之后资料修改不再变更（稳定URL）

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"type:varchar(50);not null;comment:名" json:"first_name"`
	LastName     string    `gorm:"type:varchar(50);not null;comment:姓" json:"last_name"`
	Email        string    `gorm:"type:varchar(100);not null;uniqueIndex;comment:邮箱" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null;comment:密码哈希" json:"-"`
	Slug         string    `gorm:"type:varchar(100);uniqueIndex;comment:URL标识" json:"slug"`
	CreatedAt    time.Time `gorm:"comment:创建时间" json:"created_at"`
	UpdatedAt    time.Time `gorm:"comment:更新时间" json:"updated_at"`
}

// TableName 指定表名（因全局配置使用单数表名，这里与结构体名一致为 user）
func (User) TableName() string { return "user" }
