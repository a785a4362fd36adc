package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/handle"
)

// RegisterDriveRoutes 注册网盘视图路由.
func RegisterDriveRoutes(g *gin.RouterGroup) {
	driveRoutes := g.Group("/drive")
	{
		// 五个视图 + 搜索的统一入口
		driveRoutes.GET("/items", handle.ListDriveItems)
	}
}

// RegisterItemsRoutes 注册条目变更路由，对文件与文件夹一视同仁.
func RegisterItemsRoutes(g *gin.RouterGroup) {
	itemsRoutes := g.Group("/items/:id")
	{
		// 重命名 / 星标 / 移动
		itemsRoutes.PATCH("", handle.UpdateItem)
		// 回收站或永久删除
		itemsRoutes.DELETE("", handle.DeleteItem)
		// 从回收站恢复
		itemsRoutes.POST("/restore", handle.RestoreItem)
	}
}
