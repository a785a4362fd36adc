package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/log"
	"github.com/yeisme/drivevault/pkg/rule"
)

// Register 处理用户注册.
//
//	@Summary		注册新用户
//	@Description	创建用户账号并返回 Bearer token 与用户资料，邮箱重复时返回 400
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			user	body		types.RegisterRequest	true	"注册请求"
//	@Success		200		{object}	types.TokenResponse		"token 与用户资料"
//	@Failure		400		{object}	map[string]string		"请求参数错误或邮箱已注册"
//	@Router			/api/auth/register [post]
func Register(c *gin.Context) {
	l := log.Logger()

	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid register request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		l.Warn().Err(err).Msg("register request failed validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewAuthService(c.Request.Context())

	resp, err := svc.Register(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login 处理用户登录.
//
//	@Summary		用户登录
//	@Description	校验邮箱与密码，返回 Bearer token 与用户资料；任何失败都返回同一个 401
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		types.LoginRequest	true	"登录请求"
//	@Success		200			{object}	types.TokenResponse	"token 与用户资料"
//	@Failure		401			{object}	map[string]string	"凭证无效"
//	@Router			/api/auth/login [post]
func Login(c *gin.Context) {
	l := log.Logger()

	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid login request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewAuthService(c.Request.Context())

	resp, err := svc.Login(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me 返回当前调用者的用户资料.
//
//	@Summary		当前用户资料
//	@Tags			认证
//	@Produce		json
//	@Success		200	{object}	types.UserResponse	"用户资料"
//	@Failure		401	{object}	map[string]string	"未认证"
//	@Router			/api/auth/me [get]
func Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	svc := service.NewAuthService(c.Request.Context())

	resp, err := svc.Me(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
