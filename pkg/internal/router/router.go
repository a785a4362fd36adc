// Package router 管理路由配置，用于设置HTTP服务的路由规则.
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes 将全部业务路由绑定到传入的 gin 路由组.
// 上层假定会传入 e.Group("/api")，各子路由只关心自己的相对路径.
func RegisterAPIRoutes(g *gin.RouterGroup) {
	RegisterAuthRoutes(g)
	RegisterFoldersRoutes(g)
	RegisterFilesRoutes(g)
	RegisterDriveRoutes(g)
	RegisterItemsRoutes(g)
	RegisterSharesRoutes(g)
	RegisterCommentsRoutes(g)
	RegisterActivitiesRoutes(g)
	RegisterStorageRoutes(g)
}
