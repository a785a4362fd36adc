package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/handle"
)

// RegisterAuthRoutes 注册认证相关路由.
func RegisterAuthRoutes(g *gin.RouterGroup) {
	authRoutes := g.Group("/auth")
	{
		// 注册与登录不要求认证（由中间件的 skip_paths 放行）
		authRoutes.POST("/register", handle.Register)
		authRoutes.POST("/login", handle.Login)
		// 当前用户资料
		authRoutes.GET("/me", handle.Me)
	}
}
