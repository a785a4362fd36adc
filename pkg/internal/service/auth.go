package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/drivevault/pkg/auth"
	"github.com/yeisme/drivevault/pkg/configs"
	"github.com/yeisme/drivevault/pkg/internal/model"
	"github.com/yeisme/drivevault/pkg/internal/types"
)

// AuthService 负责注册、登录与身份解析.
type AuthService struct {
	base
}

// NewAuthService 创建并返回一个新的 AuthService 实例.
func NewAuthService(c context.Context) *AuthService {
	return &AuthService{base: newBase(c)}
}

// Register 注册新用户并签发 token.邮箱冲突返回 ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	var count int64
	if err := s.dbc.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}

	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:           newID(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		StorageUsed:  0,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.dbc.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.tokenResponse(&user)
}

// Login 校验凭证并签发 token.
// 邮箱不存在与密码错误返回同一个错误，不泄露账号是否存在.
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	var user model.User

	err := s.dbc.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.tokenResponse(&user)
}

// Me 按 ID 解析当前用户.
func (s *AuthService) Me(ctx context.Context, userID string) (*types.UserResponse, error) {
	var user model.User

	err := s.dbc.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &types.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func (s *AuthService) tokenResponse(user *model.User) (*types.TokenResponse, error) {
	token, err := auth.NewToken(configs.GetConfig().Auth, user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &types.TokenResponse{
		User:  types.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		Token: token,
	}, nil
}
