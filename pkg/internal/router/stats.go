package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/handle"
)

// RegisterActivitiesRoutes 注册活动记录路由.
func RegisterActivitiesRoutes(g *gin.RouterGroup) {
	g.GET("/activities", handle.ListActivities)
}

// RegisterStorageRoutes 注册存储用量路由.
func RegisterStorageRoutes(g *gin.RouterGroup) {
	g.GET("/storage", handle.GetStorage)
}
