package model

import (
	"time"
)

// Folder 文件夹模型，ParentID 为空表示位于根目录.
type Folder struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	OwnerID string `gorm:"size:64;index"      json:"owner_id"`
	Name    string `gorm:"size:512;index"     json:"name"`
	// ParentID 上级文件夹，nil 表示根目录；只做单级自引用校验，
	// 多级搬移形成的环不在参考行为内主动检测
	ParentID  *string   `gorm:"size:64;index" json:"parent_id,omitempty"`
	Starred   bool      `gorm:"index"         json:"starred"`
	Trashed   bool      `gorm:"index"         json:"trashed"`
	CreatedAt time.Time `json:"created_at"`
	// ModifiedAt 任何字段变更都会刷新，含星标与回收站状态
	ModifiedAt time.Time `gorm:"index" json:"modified_at"`
}

// File 文件模型.小于 1MiB 的内容以 base64 内联存储，
// 超限文件只保留元数据，下载时合成占位内容.
type File struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	OwnerID string `gorm:"size:64;index"      json:"owner_id"`
	Name    string `gorm:"size:512;index"     json:"name"`
	// MimeType 客户端上报的内容类型，存储分类按其子串匹配
	MimeType string `gorm:"size:255;index" json:"mime_type"`
	Size     int64  `gorm:"index"          json:"size"`
	// FolderID 所在文件夹，nil 表示根目录
	FolderID *string `gorm:"size:64;index" json:"folder_id,omitempty"`
	Starred  bool    `gorm:"index"         json:"starred"`
	Trashed  bool    `gorm:"index"         json:"trashed"`
	// Content base64 编码的内联内容，空串表示未保留负载
	Content string `gorm:"type:text" json:"-"`
	// Thumbnail 可选缩略图 data-URI
	Thumbnail string `gorm:"type:text" json:"thumbnail,omitempty"`
	// LastOpenedAt 下载时刷新，recent 视图按其排序
	LastOpenedAt *time.Time `gorm:"index" json:"last_opened_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ModifiedAt   time.Time  `gorm:"index" json:"modified_at"`
}
