package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

// unknownUserName 评论作者已注销时的占位名.
const unknownUserName = "Unknown"

// CommentService 负责文件评论，只增不改.
type CommentService struct {
	base
}

// NewCommentService 创建并返回一个新的 CommentService 实例.
func NewCommentService(c context.Context) *CommentService {
	return &CommentService{base: newBase(c)}
}

// Create 追加评论.
func (s *CommentService) Create(ctx context.Context, callerID string, req *types.CommentCreateRequest) (*types.CommentResponse, error) {
	userName := unknownUserName

	var user model.User
	if err := s.dbc.WithContext(ctx).Where("id = ?", callerID).First(&user).Error; err == nil {
		userName = user.Name
	}

	comment := model.Comment{
		ID:        newID(),
		FileID:    req.FileID,
		UserID:    callerID,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.dbc.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return &types.CommentResponse{
		ID:        comment.ID,
		FileID:    comment.FileID,
		UserID:    callerID,
		UserName:  userName,
		Text:      comment.Text,
		Timestamp: types.FormatTime(comment.CreatedAt),
	}, nil
}

// List 列出文件的全部评论，附带作者名，作者已不存在时标记为 Unknown.
func (s *CommentService) List(ctx context.Context, fileID string) ([]types.CommentResponse, error) {
	var comments []model.Comment

	if err := s.dbc.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("created_at, id").
		Limit(1000).
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	result := make([]types.CommentResponse, 0, len(comments))

	for _, comment := range comments {
		userName := unknownUserName

		var user model.User

		err := s.dbc.WithContext(ctx).Where("id = ?", comment.UserID).First(&user).Error
		if err == nil {
			userName = user.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find comment author: %w", err)
		}

		result = append(result, types.CommentResponse{
			ID:        comment.ID,
			FileID:    comment.FileID,
			UserID:    comment.UserID,
			UserName:  userName,
			Text:      comment.Text,
			Timestamp: types.FormatTime(comment.CreatedAt),
		})
	}

	return result, nil
}
