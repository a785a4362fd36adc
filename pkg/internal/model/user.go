// Package model 定义数据库实体与建表逻辑.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型，注册时创建，存储用量计数随文件操作调整.
type User struct {
	ID    string `gorm:"primaryKey;size:64" json:"id"`
	Email string `gorm:"size:255;uniqueIndex"  json:"email"`
	Name  string `gorm:"size:255"              json:"name"`
	// PasswordHash bcrypt 散列，永不出现在响应中
	PasswordHash string `gorm:"size:128" json:"-"`
	// StorageUsed 已用字节数，上传递增、彻底删除递减（下限为 0）
	StorageUsed int64     `json:"storage_used"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AutoMigrate 建表，按依赖顺序迁移所有实体.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Folder{},
		&File{},
		&Share{},
		&Comment{},
		&Activity{},
	)
}
