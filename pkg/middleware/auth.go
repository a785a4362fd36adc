package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/auth"
	"github.com/yeisme/drivevault/pkg/configs"
)

// CallerIDKey 认证中间件写入 gin 上下文的调用者 ID 键名.
const CallerIDKey = "caller_id"

const bearerPrefix = "Bearer "

// AuthMiddleware 校验 Authorization: Bearer <token> 并把用户 ID 注入请求上下文。
//   - 支持通过配置跳过某些路径（如 /metrics, 注册与登录）
//   - token 非法或缺失统一返回 401，不区分失败原因.
func AuthMiddleware(conf configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !conf.Enabled || isSkippedPath(c.Request.URL.Path, conf.SkipPaths) {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

		userID, err := auth.ParseToken(conf, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(CallerIDKey, userID)
		c.Next()
	}
}

func isSkippedPath(path string, skips []string) bool {
	if path == "" || len(skips) == 0 {
		return false
	}

	for _, p := range skips {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
