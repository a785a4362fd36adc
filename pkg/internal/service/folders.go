package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/queue"
)

// FolderService 负责文件夹创建.
type FolderService struct {
	base
}

// NewFolderService 创建并返回一个新的 FolderService 实例.
func NewFolderService(c context.Context) *FolderService {
	return &FolderService{base: newBase(c)}
}

// Create 创建文件夹并记录活动.
func (s *FolderService) Create(ctx context.Context, ownerID string, req *types.FolderCreateRequest) (*types.FolderResponse, error) {
	now := time.Now().UTC()
	folder := model.Folder{
		ID:         newID(),
		OwnerID:    ownerID,
		Name:       req.Name,
		ParentID:   normalizeRef(req.ParentID),
		Starred:    false,
		Trashed:    false,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := s.dbc.WithContext(ctx).Create(&folder).Error; err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	s.logActivity(ctx, ownerID, model.ActivityUpload, folder.ID, "Created folder "+folder.Name)
	s.publishItemEvent(ctx, queue.TopicItemCreated, queue.ItemEventPayload{
		Item:    queue.ItemRef{ID: folder.ID, Kind: queue.ItemKindFolder, Name: folder.Name},
		OwnerID: ownerID,
	})
	s.invalidateListings(ctx)

	resp := folderResponse(&folder)

	return &resp, nil
}

// normalizeRef 将空字符串引用归一为 nil，与根目录语义一致.
func normalizeRef(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}

	return ref
}

// folderResponse 将模型转换为响应结构.
func folderResponse(f *model.Folder) types.FolderResponse {
	return types.FolderResponse{
		ID:       f.ID,
		Name:     f.Name,
		ParentID: f.ParentID,
		OwnerID:  f.OwnerID,
		Created:  types.FormatTime(f.CreatedAt),
		Modified: types.FormatTime(f.ModifiedAt),
		Starred:  f.Starred,
		Trashed:  f.Trashed,
	}
}
