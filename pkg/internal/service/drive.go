package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/cache"
	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

// 视图名.
const (
	ViewDrive   = "drive"
	ViewRecent  = "recent"
	ViewStarred = "starred"
	ViewShared  = "shared"
	ViewTrash   = "trash"
)

// RecentLimit recent 视图的结果上限.
const RecentLimit = 20

// DriveService 视图查询引擎，只读组合条目与共享授权.
type DriveService struct {
	base
}

// NewDriveService 创建并返回一个新的 DriveService 实例.
func NewDriveService(c context.Context) *DriveService {
	return &DriveService{base: newBase(c)}
}

// ListItems 按视图列出调用者可见的文件夹与文件.
//   - drive: 本人未回收条目，按 folderID 精确匹配层级（nil 即根目录）
//   - recent: 仅文件，打开过且未回收，按最近打开倒序，至多 20 条
//   - starred: 本人已加星且未回收的条目
//   - shared: 共享给调用者的未回收条目（所有者过滤让位于授权成员关系）
//   - trash: 本人已回收条目
//
// search 在所选视图的谓词之上追加大小写不敏感的名称子串过滤.
// 带搜索词的查询结果经 KV 缓存短暂复用，写操作会使缓存失效.
func (s *DriveService) ListItems(ctx context.Context, callerID, view string, folderID *string, search string) (*types.DriveItemsResponse, error) {
	if search == "" || s.kvc == nil {
		return s.listItems(ctx, callerID, view, folderID, search)
	}

	scope := ""
	if folderID != nil {
		scope = *folderID
	}

	key := cache.ListingKey(callerID, view, search+"\x00"+scope)

	return cache.GetOrSet(ctx, cache.NewCache(s.kvc), key, func() (*types.DriveItemsResponse, error) {
		return s.listItems(ctx, callerID, view, folderID, search)
	}, cache.DefaultListingTTL)
}

func (s *DriveService) listItems(ctx context.Context, callerID, view string, folderID *string, search string) (*types.DriveItemsResponse, error) {
	var (
		folders []model.Folder
		files   []model.File
	)

	g, gctx := errgroup.WithContext(ctx)

	if view != ViewRecent {
		g.Go(func() error {
			q := s.folderQuery(gctx, callerID, view, folderID)
			if err := applySearch(q, search).
				Order("created_at, id").Limit(1000).
				Find(&folders).Error; err != nil {
				return fmt.Errorf("list folders: %w", err)
			}

			return nil
		})
	}

	g.Go(func() error {
		q := s.fileQuery(gctx, callerID, view, folderID)
		if err := applySearch(q, search).Find(&files).Error; err != nil {
			return fmt.Errorf("list files: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &types.DriveItemsResponse{
		Folders: make([]types.FolderResponse, 0, len(folders)),
		Files:   make([]types.FileResponse, 0, len(files)),
	}

	for i := range folders {
		resp.Folders = append(resp.Folders, folderResponse(&folders[i]))
	}

	for i := range files {
		resp.Files = append(resp.Files, fileResponse(&files[i]))
	}

	return resp, nil
}

// folderQuery 构造文件夹侧的视图谓词.
func (s *DriveService) folderQuery(ctx context.Context, callerID, view string, folderID *string) *gorm.DB {
	q := s.dbc.WithContext(ctx).Model(&model.Folder{})

	switch view {
	case ViewStarred:
		return q.Where("owner_id = ? AND starred = ? AND trashed = ?", callerID, true, false)
	case ViewShared:
		return q.Where("trashed = ?", false).
			Where("id IN (?)", s.grantedItemIDs(ctx, callerID))
	case ViewTrash:
		return q.Where("owner_id = ? AND trashed = ?", callerID, true)
	default: // drive
		q = q.Where("owner_id = ? AND trashed = ?", callerID, false)
		return scopeByParent(q, "parent_id", folderID)
	}
}

// fileQuery 构造文件侧的视图谓词.
func (s *DriveService) fileQuery(ctx context.Context, callerID, view string, folderID *string) *gorm.DB {
	q := s.dbc.WithContext(ctx).Model(&model.File{})

	switch view {
	case ViewRecent:
		return q.Where("owner_id = ? AND trashed = ? AND last_opened_at IS NOT NULL", callerID, false).
			Order("last_opened_at DESC, id").
			Limit(RecentLimit)
	case ViewStarred:
		return q.Where("owner_id = ? AND starred = ? AND trashed = ?", callerID, true, false).
			Order("created_at, id").Limit(1000)
	case ViewShared:
		return q.Where("trashed = ?", false).
			Where("id IN (?)", s.grantedItemIDs(ctx, callerID)).
			Order("created_at, id").Limit(1000)
	case ViewTrash:
		return q.Where("owner_id = ? AND trashed = ?", callerID, true).
			Order("created_at, id").Limit(1000)
	default: // drive
		q = q.Where("owner_id = ? AND trashed = ?", callerID, false)
		return scopeByParent(q, "folder_id", folderID).
			Order("created_at, id").Limit(1000)
	}
}

// grantedItemIDs 子查询：共享给该用户的条目 ID 集合.
func (s *DriveService) grantedItemIDs(ctx context.Context, callerID string) *gorm.DB {
	return s.dbc.WithContext(ctx).Model(&model.Share{}).
		Select("item_id").
		Where("user_id = ?", callerID)
}

// scopeByParent 按层级精确匹配：无 folderID 时只取根级条目，而非任意层级.
func scopeByParent(q *gorm.DB, column string, folderID *string) *gorm.DB {
	if folderID == nil || *folderID == "" {
		return q.Where(column + " IS NULL")
	}

	return q.Where(column+" = ?", *folderID)
}

// applySearch 追加大小写不敏感的名称子串过滤.
func applySearch(q *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return q
	}

	pattern := "%" + strings.ToLower(search) + "%"

	return q.Where("LOWER(name) LIKE ?", pattern)
}
