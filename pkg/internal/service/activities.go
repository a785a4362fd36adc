package service

import (
	"context"
	"fmt"

	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

// DefaultActivityLimit 活动日志默认分页大小.
const DefaultActivityLimit = 20

// ActivityService 负责活动日志的分页查询.
type ActivityService struct {
	base
}

// NewActivityService 创建并返回一个新的 ActivityService 实例.
func NewActivityService(c context.Context) *ActivityService {
	return &ActivityService{base: newBase(c)}
}

// List 按时间倒序列出调用者的活动记录.
func (s *ActivityService) List(ctx context.Context, callerID string, limit, offset int) ([]types.ActivityResponse, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	if offset < 0 {
		offset = 0
	}

	var activities []model.Activity

	if err := s.dbc.WithContext(ctx).
		Where("user_id = ?", callerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	result := make([]types.ActivityResponse, 0, len(activities))

	for _, activity := range activities {
		var fileID *string
		if activity.ItemID != "" {
			id := activity.ItemID
			fileID = &id
		}

		result = append(result, types.ActivityResponse{
			ID:          activity.ID,
			Type:        activity.Kind,
			UserID:      activity.UserID,
			FileID:      fileID,
			Description: activity.Description,
			Timestamp:   types.FormatTime(activity.CreatedAt),
		})
	}

	return result, nil
}
