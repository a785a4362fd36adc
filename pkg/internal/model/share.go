package model

import (
	"time"
)

// 共享权限级别.
const (
	PermissionViewer    = "viewer"
	PermissionCommenter = "commenter"
	PermissionEditor    = "editor"
)

// Share 共享授权模型.
// (ItemID, UserID) 组合唯一：对同一条目重复共享给同一用户只更新权限，不产生新纪录.
type Share struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`
	// ItemID 被共享的文件或文件夹
	ItemID string `gorm:"size:64;index:idx_item_grantee,unique;index" json:"item_id"`
	// UserID 被授权用户
	UserID string `gorm:"size:64;index:idx_item_grantee,unique;index" json:"user_id"`
	// OwnerID 授权发起者（条目所有者）
	OwnerID    string    `gorm:"size:64;index" json:"owner_id"`
	Permission string    `gorm:"size:32"       json:"permission"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Comment 文件评论，只增不改.
type Comment struct {
	ID     string `gorm:"primaryKey;size:64" json:"id"`
	FileID string `gorm:"size:64;index"      json:"file_id"`
	UserID string `gorm:"size:64;index"      json:"user_id"`
	Text   string `gorm:"type:text"          json:"text"`

	CreatedAt time.Time `json:"created_at"`
}
