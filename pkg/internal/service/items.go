package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/queue"
)

// ItemKind 条目类别判别值，内部显式区分文件与文件夹，
// 对外仍保持 /items/{id} 对两种类别透明.
type ItemKind string

const (
	KindFile   ItemKind = "file"
	KindFolder ItemKind = "folder"
)

// ownedItem 解析后的条目：带判别标签的联合体，file 与 folder 恰有一个非空.
type ownedItem struct {
	kind   ItemKind
	file   *model.File
	folder *model.Folder
}

func (it *ownedItem) id() string {
	if it.kind == KindFile {
		return it.file.ID
	}

	return it.folder.ID
}

func (it *ownedItem) name() string {
	if it.kind == KindFile {
		return it.file.Name
	}

	return it.folder.Name
}

// ItemService 负责条目的更新、删除与恢复，对文件与文件夹透明分发.
type ItemService struct {
	base
}

// NewItemService 创建并返回一个新的 ItemService 实例.
func NewItemService(c context.Context) *ItemService {
	return &ItemService{base: newBase(c)}
}

// resolveOwnedItem 按 ID 解析调用者拥有的条目：先探测文件，再探测文件夹.
// 不存在与他人所有同样返回 ErrNotFound，不泄露条目是否存在.
// 共享授权不赋予变更权限，变更路径只认所有者.
func (s *ItemService) resolveOwnedItem(ctx context.Context, callerID, itemID string) (*ownedItem, error) {
	var file model.File

	err := s.dbc.WithContext(ctx).
		Where("id = ? AND owner_id = ?", itemID, callerID).
		First(&file).Error
	if err == nil {
		return &ownedItem{kind: KindFile, file: &file}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("probe file: %w", err)
	}

	var folder model.Folder

	err = s.dbc.WithContext(ctx).
		Where("id = ? AND owner_id = ?", itemID, callerID).
		First(&folder).Error
	if err == nil {
		return &ownedItem{kind: KindFolder, folder: &folder}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("probe folder: %w", err)
	}

	return nil, ErrNotFound
}

// Update 部分字段更新.name/starred 对两种类别生效，parentId 仅文件夹、
// folderId 仅文件，类别不符的字段静默忽略.modified_at 无条件刷新.
// 活动记录：星标变更优先于重命名，两者同时出现只记星标.
func (s *ItemService) Update(ctx context.Context, callerID, itemID string, req *types.ItemUpdateRequest) error {
	item, err := s.resolveOwnedItem(ctx, callerID, itemID)
	if err != nil {
		return err
	}

	updates := map[string]any{"modified_at": time.Now().UTC()}

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Starred != nil {
		updates["starred"] = *req.Starred
	}

	switch item.kind {
	case KindFolder:
		if req.ParentID != nil {
			if *req.ParentID == itemID {
				return ErrSelfParent
			}

			updates["parent_id"] = normalizeRef(req.ParentID)
		}
	case KindFile:
		if req.FolderID != nil {
			updates["folder_id"] = normalizeRef(req.FolderID)
		}
	}

	if err := s.applyItemUpdates(ctx, item, updates); err != nil {
		return err
	}

	switch {
	case req.Starred != nil:
		action := "Starred "
		if !*req.Starred {
			action = "Unstarred "
		}

		s.logActivity(ctx, callerID, model.ActivityStar, itemID, action+item.name())
	case req.Name != nil:
		s.logActivity(ctx, callerID, model.ActivityEdit, itemID, "Renamed to "+*req.Name)
	}

	s.publishItemEvent(ctx, queue.TopicItemUpdated, queue.ItemEventPayload{
		Item:    queue.ItemRef{ID: itemID, Kind: string(item.kind), Name: item.name()},
		OwnerID: callerID,
	})
	s.invalidateListings(ctx)

	return nil
}

// Delete 删除条目.permanent=false 移入回收站（可恢复）；
// permanent=true 彻底删除，文件同时返还存储用量（下限为 0）.
// 文件夹删除不级联子条目，与参考行为保持一致.
func (s *ItemService) Delete(ctx context.Context, callerID, itemID string, permanent bool) error {
	item, err := s.resolveOwnedItem(ctx, callerID, itemID)
	if err != nil {
		return err
	}

	if !permanent {
		updates := map[string]any{"trashed": true, "modified_at": time.Now().UTC()}
		if err := s.applyItemUpdates(ctx, item, updates); err != nil {
			return err
		}

		s.logActivity(ctx, callerID, model.ActivityDelete, itemID, "Moved "+item.name()+" to trash")
		s.publishItemEvent(ctx, queue.TopicItemTrashed, queue.ItemEventPayload{
			Item:    queue.ItemRef{ID: itemID, Kind: string(item.kind), Name: item.name()},
			OwnerID: callerID,
		})
		s.invalidateListings(ctx)

		return nil
	}

	if item.kind == KindFile {
		if err := s.dbc.WithContext(ctx).Delete(&model.File{}, "id = ?", itemID).Error; err != nil {
			return fmt.Errorf("delete file: %w", err)
		}

		if err := refundStorage(s.dbc.WithContext(ctx), callerID, item.file.Size); err != nil {
			return err
		}
	} else {
		if err := s.dbc.WithContext(ctx).Delete(&model.Folder{}, "id = ?", itemID).Error; err != nil {
			return fmt.Errorf("delete folder: %w", err)
		}
	}

	s.logActivity(ctx, callerID, model.ActivityDelete, itemID, "Permanently deleted "+item.name())
	s.publishItemEvent(ctx, queue.TopicItemDeleted, queue.ItemEventPayload{
		Item:    queue.ItemRef{ID: itemID, Kind: string(item.kind), Name: item.name()},
		OwnerID: callerID,
	})
	s.invalidateListings(ctx)

	return nil
}

// Restore 从回收站恢复.不重新校验上级是否仍然存在，
// 恢复的条目可能挂在已删除的上级之下.
func (s *ItemService) Restore(ctx context.Context, callerID, itemID string) error {
	item, err := s.resolveOwnedItem(ctx, callerID, itemID)
	if err != nil {
		return err
	}

	updates := map[string]any{"trashed": false, "modified_at": time.Now().UTC()}
	if err := s.applyItemUpdates(ctx, item, updates); err != nil {
		return err
	}

	s.logActivity(ctx, callerID, model.ActivityEdit, itemID, "Restored "+item.name())
	s.publishItemEvent(ctx, queue.TopicItemRestored, queue.ItemEventPayload{
		Item:    queue.ItemRef{ID: itemID, Kind: string(item.kind), Name: item.name()},
		OwnerID: callerID,
	})
	s.invalidateListings(ctx)

	return nil
}

// applyItemUpdates 按条目类别写入对应表.
func (s *ItemService) applyItemUpdates(ctx context.Context, item *ownedItem, updates map[string]any) error {
	var err error

	if item.kind == KindFile {
		err = s.dbc.WithContext(ctx).Model(&model.File{}).
			Where("id = ?", item.id()).Updates(updates).Error
	} else {
		err = s.dbc.WithContext(ctx).Model(&model.Folder{}).
			Where("id = ?", item.id()).Updates(updates).Error
	}

	if err != nil {
		return fmt.Errorf("update %s: %w", item.kind, err)
	}

	return nil
}

// CleanTrash 永久删除在回收站中停留超过给定时间点的条目，
// 文件按所有者返还存储用量.供定时清理任务调用，跨所有用户.
func (s *ItemService) CleanTrash(ctx context.Context, before time.Time) (int64, error) {
	var files []model.File

	err := s.dbc.WithContext(ctx).
		Select("id", "owner_id", "size", "name").
		Where("trashed = ? AND modified_at < ?", true, before).
		Limit(1000).
		Find(&files).Error
	if err != nil {
		return 0, fmt.Errorf("list expired files: %w", err)
	}

	var removed int64

	for _, f := range files {
		if err := s.dbc.WithContext(ctx).Delete(&model.File{}, "id = ?", f.ID).Error; err != nil {
			return removed, fmt.Errorf("delete expired file: %w", err)
		}

		if err := refundStorage(s.dbc.WithContext(ctx), f.OwnerID, f.Size); err != nil {
			return removed, err
		}

		s.logActivity(ctx, f.OwnerID, model.ActivityDelete, f.ID, "Permanently deleted "+f.Name)
		s.publishItemEvent(ctx, queue.TopicItemDeleted, queue.ItemEventPayload{
			Item:    queue.ItemRef{ID: f.ID, Kind: string(KindFile), Name: f.Name, Size: f.Size},
			OwnerID: f.OwnerID,
			Detail:  "trash retention expired",
		})

		removed++
	}

	result := s.dbc.WithContext(ctx).
		Where("trashed = ? AND modified_at < ?", true, before).
		Delete(&model.Folder{})
	if result.Error != nil {
		return removed, fmt.Errorf("delete expired folders: %w", result.Error)
	}

	removed += result.RowsAffected

	if removed > 0 {
		s.invalidateListings(ctx)
	}

	return removed, nil
}

// refundStorage 返还存储用量，计数器不为负.
func refundStorage(tx *gorm.DB, userID string, size int64) error {
	err := tx.Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("storage_used",
			gorm.Expr("CASE WHEN storage_used >= ? THEN storage_used - ? ELSE 0 END", size, size)).Error
	if err != nil {
		return fmt.Errorf("refund storage counter: %w", err)
	}

	return nil
}
