package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/queue"
)

// InlineContentLimit 内联存储的内容上限，达到该值的文件只保留元数据，
// 下载时返回合成的占位内容.
const InlineContentLimit = 1 << 20 // 1 MiB

// FileService 负责文件上传与内容访问.
type FileService struct {
	base
}

// NewFileService 创建并返回一个新的 FileService 实例.
func NewFileService(c context.Context) *FileService {
	return &FileService{base: newBase(c)}
}

// Upload 保存上传的文件，累加所有者的存储用量并记录活动.
func (s *FileService) Upload(ctx context.Context, ownerID, name, mimeType string, content []byte, folderID *string) (*types.FileResponse, error) {
	size := int64(len(content))

	// 小文件内联保存，大文件只留元数据
	inline := ""
	if size < InlineContentLimit {
		inline = base64.StdEncoding.EncodeToString(content)
	}

	now := time.Now().UTC()
	file := model.File{
		ID:         newID(),
		OwnerID:    ownerID,
		Name:       name,
		MimeType:   mimeType,
		Size:       size,
		FolderID:   normalizeRef(folderID),
		Starred:    false,
		Trashed:    false,
		Content:    inline,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := s.dbc.WithContext(ctx).Create(&file).Error; err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	if err := s.dbc.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", ownerID).
		UpdateColumn("storage_used", gorm.Expr("storage_used + ?", size)).Error; err != nil {
		return nil, fmt.Errorf("update storage counter: %w", err)
	}

	s.logActivity(ctx, ownerID, model.ActivityUpload, file.ID, "Uploaded "+file.Name)
	s.publishItemEvent(ctx, queue.TopicItemUploaded, queue.ItemEventPayload{
		Item:    queue.ItemRef{ID: file.ID, Kind: queue.ItemKindFile, Name: file.Name, Size: size},
		OwnerID: ownerID,
	})
	s.invalidateListings(ctx)

	resp := fileResponse(&file)

	return &resp, nil
}

// DownloadResult 下载结果.
type DownloadResult struct {
	Name     string
	MimeType string
	Content  []byte
}

// Download 读取文件内容.调用者必须是所有者或持有任意级别的共享授权.
// 成功后刷新 last_opened_at.
func (s *FileService) Download(ctx context.Context, callerID, fileID string) (*DownloadResult, error) {
	var file model.File

	err := s.dbc.WithContext(ctx).Where("id = ?", fileID).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find file: %w", err)
	}

	if file.OwnerID != callerID {
		var grants int64
		if err := s.dbc.WithContext(ctx).Model(&model.Share{}).
			Where("item_id = ? AND user_id = ?", fileID, callerID).
			Count(&grants).Error; err != nil {
			return nil, fmt.Errorf("check share grant: %w", err)
		}

		if grants == 0 {
			return nil, ErrAccessDenied
		}
	}

	now := time.Now().UTC()
	if err := s.dbc.WithContext(ctx).Model(&model.File{}).
		Where("id = ?", fileID).
		UpdateColumn("last_opened_at", now).Error; err != nil {
		return nil, fmt.Errorf("update last opened: %w", err)
	}

	content, err := fileContent(&file)
	if err != nil {
		return nil, err
	}

	s.publishItemEvent(ctx, queue.TopicItemAccessed, queue.ItemEventPayload{
		Item:    queue.ItemRef{ID: file.ID, Kind: queue.ItemKindFile, Name: file.Name, Size: file.Size},
		OwnerID: file.OwnerID,
	})

	return &DownloadResult{Name: file.Name, MimeType: file.MimeType, Content: content}, nil
}

// fileContent 还原内联内容；未保留负载时合成占位内容.
func fileContent(f *model.File) ([]byte, error) {
	if f.Content != "" {
		data, err := base64.StdEncoding.DecodeString(f.Content)
		if err != nil {
			return nil, fmt.Errorf("decode inline content: %w", err)
		}

		return data, nil
	}

	placeholder := fmt.Sprintf(
		"Simulated content for %s\nSize: %d bytes\nThis is a mock file in the training environment.",
		f.Name, f.Size)

	return []byte(placeholder), nil
}

// Preview 生成预览.图片返回 data-URI，文本返回解码内容，其余不支持预览.
// 与下载不同，预览不校验共享授权，也不刷新 last_opened_at.
func (s *FileService) Preview(ctx context.Context, fileID string) (*types.PreviewResponse, error) {
	var file model.File

	err := s.dbc.WithContext(ctx).Where("id = ?", fileID).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find file: %w", err)
	}

	switch {
	case file.Content != "" && strings.HasPrefix(file.MimeType, "image/"):
		uri := fmt.Sprintf("data:%s;base64,%s", file.MimeType, file.Content)
		return &types.PreviewResponse{Preview: &uri}, nil

	case strings.HasPrefix(file.MimeType, "text/"):
		text := "Preview not available for this file."

		if file.Content != "" {
			decoded, err := base64.StdEncoding.DecodeString(file.Content)
			if err != nil {
				return nil, fmt.Errorf("decode inline content: %w", err)
			}

			text = string(decoded)
		}

		return &types.PreviewResponse{Preview: &text, Type: "text"}, nil

	default:
		return &types.PreviewResponse{Preview: nil, Message: "Preview not available"}, nil
	}
}

// fileResponse 将模型转换为响应结构.
func fileResponse(f *model.File) types.FileResponse {
	url := "/api/files/" + f.ID + "/download"

	var thumbnail *string
	if f.Thumbnail != "" {
		thumbnail = &f.Thumbnail
	}

	return types.FileResponse{
		ID:         f.ID,
		Name:       f.Name,
		Type:       f.MimeType,
		Size:       f.Size,
		FolderID:   f.FolderID,
		OwnerID:    f.OwnerID,
		Created:    types.FormatTime(f.CreatedAt),
		Modified:   types.FormatTime(f.ModifiedAt),
		Starred:    f.Starred,
		Trashed:    f.Trashed,
		Thumbnail:  thumbnail,
		LastOpened: types.FormatTimePtr(f.LastOpenedAt),
		URL:        &url,
	}
}
