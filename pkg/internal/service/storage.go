package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/configs"
	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

// 存储分类键.
const (
	CategoryDocuments = "documents"
	CategoryImages    = "images"
	CategoryVideos    = "videos"
	CategoryOther     = "other"
)

// StorageService 负责存储用量与分类统计.
type StorageService struct {
	base
}

// NewStorageService 创建并返回一个新的 StorageService 实例.
func NewStorageService(c context.Context) *StorageService {
	return &StorageService{base: newBase(c)}
}

// Usage 返回存储用量与按内容类型的分类统计.
// used 读的是增量维护的计数器，breakdown 则实时扫描未回收文件得出，
// 回收站中的文件计入 used 但不计入 breakdown，这一偏差是预期行为.
func (s *StorageService) Usage(ctx context.Context, callerID string) (*types.StorageResponse, error) {
	var user model.User

	err := s.dbc.WithContext(ctx).Where("id = ?", callerID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	var files []model.File

	if err := s.dbc.WithContext(ctx).
		Select("mime_type", "size").
		Where("owner_id = ? AND trashed = ?", callerID, false).
		Limit(10000).
		Find(&files).Error; err != nil {
		return nil, fmt.Errorf("scan files: %w", err)
	}

	breakdown := map[string]int64{
		CategoryDocuments: 0,
		CategoryImages:    0,
		CategoryVideos:    0,
		CategoryOther:     0,
	}

	for _, file := range files {
		breakdown[classifyMimeType(file.MimeType)] += file.Size
	}

	total := configs.GetConfig().Quota.StorageTotal
	if total <= 0 {
		total = configs.DefaultStorageTotal
	}

	return &types.StorageResponse{
		Used:      user.StorageUsed,
		Total:     total,
		Breakdown: breakdown,
	}, nil
}

// classifyMimeType 按 MIME 子串将文件归入粗粒度分类.
// documents 的判定覆盖 pdf/word/sheet 等办公格式，优先于 images/videos.
func classifyMimeType(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "document"),
		strings.Contains(mimeType, "pdf"),
		strings.Contains(mimeType, "word"),
		strings.Contains(mimeType, "sheet"):
		return CategoryDocuments
	case strings.Contains(mimeType, "image"):
		return CategoryImages
	case strings.Contains(mimeType, "video"):
		return CategoryVideos
	default:
		return CategoryOther
	}
}
