package model

import (
	"time"
)

// 活动类型.
const (
	ActivityUpload = "upload"
	ActivityEdit   = "edit"
	ActivityStar   = "star"
	ActivityDelete = "delete"
	ActivityShare  = "share"
)

// Activity 用户操作审计记录，只增不改，展示时按时间倒序.
type Activity struct {
	ID     string `gorm:"primaryKey;size:64" json:"id"`
	UserID string `gorm:"size:64;index"      json:"user_id"`
	// Kind 操作类别：upload/edit/star/delete/share
	Kind string `gorm:"size:32;index" json:"kind"`
	// ItemID 相关条目，可为空（如授权撤销后的追溯）
	ItemID string `gorm:"size:64" json:"item_id,omitempty"`
	// Description 人类可读描述，如 "Uploaded report.pdf"
	Description string    `gorm:"size:1024"  json:"description"`
	CreatedAt   time.Time `gorm:"index"      json:"created_at"`
}
