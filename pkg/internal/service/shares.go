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

// ShareService 负责共享授权的创建、列举与撤销.
type ShareService struct {
	base
}

// NewShareService 创建并返回一个新的 ShareService 实例.
func NewShareService(c context.Context) *ShareService {
	return &ShareService{base: newBase(c)}
}

// Create 创建或更新共享授权.被授权人以邮箱指定，查不到返回 ErrNotFound.
// 同一 (条目, 被授权人) 组合已有授权时只更新权限级别，不产生新纪录.
func (s *ShareService) Create(ctx context.Context, callerID string, req *types.ShareCreateRequest) (*types.ShareResponse, error) {
	var grantee model.User

	err := s.dbc.WithContext(ctx).Where("email = ?", req.Email).First(&grantee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find grantee: %w", err)
	}

	now := time.Now().UTC()

	var share model.Share

	err = s.dbc.WithContext(ctx).
		Where("item_id = ? AND user_id = ?", req.ItemID, grantee.ID).
		First(&share).Error

	switch {
	case err == nil:
		// 已有授权，只更新权限
		if err := s.dbc.WithContext(ctx).Model(&share).
			Update("permission", req.Permission).Error; err != nil {
			return nil, fmt.Errorf("update share: %w", err)
		}

		share.Permission = req.Permission

	case errors.Is(err, gorm.ErrRecordNotFound):
		share = model.Share{
			ID:         newShareID(now),
			ItemID:     req.ItemID,
			UserID:     grantee.ID,
			OwnerID:    callerID,
			Permission: req.Permission,
			CreatedAt:  now,
		}

		if err := s.dbc.WithContext(ctx).Create(&share).Error; err != nil {
			return nil, fmt.Errorf("create share: %w", err)
		}

	default:
		return nil, fmt.Errorf("find share: %w", err)
	}

	s.logActivity(ctx, callerID, model.ActivityShare, req.ItemID, "Shared with "+req.Email)
	s.publishShareEvent(ctx, queue.ShareEventPayload{
		ShareID:      share.ID,
		Item:         queue.ItemRef{ID: req.ItemID},
		OwnerID:      callerID,
		GranteeID:    grantee.ID,
		GranteeEmail: grantee.Email,
		Permission:   req.Permission,
	})
	s.invalidateListings(ctx)

	return &types.ShareResponse{
		ID:         share.ID,
		ItemID:     req.ItemID,
		UserID:     grantee.ID,
		Permission: req.Permission,
		SharedBy:   callerID,
		SharedAt:   types.FormatTime(now),
	}, nil
}

// ListForItem 列出条目的所有被授权人，附带用户资料.
// 授权记录指向的用户已不存在时跳过该条.
func (s *ShareService) ListForItem(ctx context.Context, itemID string) ([]types.ShareWithUser, error) {
	var shares []model.Share

	if err := s.dbc.WithContext(ctx).
		Where("item_id = ?", itemID).
		Limit(1000).
		Find(&shares).Error; err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}

	result := make([]types.ShareWithUser, 0, len(shares))

	for _, share := range shares {
		var user model.User

		err := s.dbc.WithContext(ctx).Where("id = ?", share.UserID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("find grantee: %w", err)
		}

		result = append(result, types.ShareWithUser{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Permission: share.Permission,
		})
	}

	return result, nil
}

// Revoke 撤销共享授权.
func (s *ShareService) Revoke(ctx context.Context, shareID string) error {
	res := s.dbc.WithContext(ctx).Delete(&model.Share{}, "id = ?", shareID)
	if res.Error != nil {
		return fmt.Errorf("delete share: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.invalidateListings(ctx)

	return nil
}
