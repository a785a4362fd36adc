// Package api 将业务路由组装到 gin 引擎上.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/router"
)

// RegisterGroup 注册全部路由组到传入的 gin 引擎.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	router.RegisterAPIRoutes(e.Group("/api"))
	router.RegisterHealthCheckRoute(e.Group("/api/v1"))

	return e
}
