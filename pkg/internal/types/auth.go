// Package types 定义 HTTP 层的请求与响应结构.
// 时间字段一律以 ISO8601 + "Z" 的字符串下发，与前端约定保持一致.
package types

import "time"

// FormatTime 输出 ISO8601 格式并带 Z 后缀的时间字符串.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999") + "Z"
}

// FormatTimePtr 可空时间的格式化，nil 原样透传.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := FormatTime(*t)

	return &s
}

// RegisterRequest 注册请求.
type RegisterRequest struct {
	Email    string `json:"email"    rule:"required,email"`
	Name     string `json:"name"     rule:"required,max=255"`
	Password string `json:"password" rule:"required,min=6"`
}

// LoginRequest 登录请求.
type LoginRequest struct {
	Email    string `json:"email"    rule:"required,email"`
	Password string `json:"password" rule:"required"`
}

// UserResponse 用户公开信息.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse 注册/登录成功后的响应，token 为 Bearer 凭证.
type TokenResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
