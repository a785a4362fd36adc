package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/handle"
)

// RegisterSharesRoutes 注册共享相关路由.
func RegisterSharesRoutes(g *gin.RouterGroup) {
	sharesRoutes := g.Group("/shares")
	{
		sharesRoutes.POST("", handle.CreateShare)       // 授予或更新共享
		sharesRoutes.GET("/:id", handle.ListShares)     // 列出条目的被授权人
		sharesRoutes.DELETE("/:id", handle.RevokeShare) // 按授权 ID 撤销
	}
}

// RegisterCommentsRoutes 注册评论相关路由.
func RegisterCommentsRoutes(g *gin.RouterGroup) {
	commentsRoutes := g.Group("/comments")
	{
		commentsRoutes.POST("", handle.CreateComment)
		commentsRoutes.GET("/:fileId", handle.ListComments)
	}
}
