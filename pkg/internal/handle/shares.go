package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/log"
	"github.com/yeisme/drivevault/pkg/rule"
)

// CreateShare 按被授权人邮箱授予或更新共享.
//
//	@Summary		共享条目
//	@Description	同一 (条目, 被授权人) 已存在授权时只更新权限级别
//	@Tags			共享
//	@Accept			json
//	@Produce		json
//	@Param			share	body		types.ShareCreateRequest	true	"共享请求"
//	@Success		200		{object}	types.ShareResponse			"授权记录"
//	@Failure		404		{object}	map[string]string			"被授权人不存在"
//	@Router			/api/shares [post]
func CreateShare(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	l := log.Logger()

	var req types.ShareCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid share request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewShareService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListShares 列出条目的被授权人.
//
//	@Summary		列出被授权人
//	@Description	逐个解析被授权人资料，账号已删除的授权静默跳过
//	@Tags			共享
//	@Produce		json
//	@Param			id	path	string	true	"条目 ID"
//	@Success		200	{array}	types.ShareWithUser	"被授权人列表"
//	@Router			/api/shares/{id} [get]
func ListShares(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	svc := service.NewShareService(c.Request.Context())

	resp, err := svc.ListForItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RevokeShare 撤销共享授权.
//
//	@Summary		撤销授权
//	@Tags			共享
//	@Produce		json
//	@Param			id	path		string	true	"授权 ID"
//	@Success		200	{object}	types.SuccessResponse
//	@Failure		404	{object}	map[string]string	"授权不存在"
//	@Router			/api/shares/{id} [delete]
func RevokeShare(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	svc := service.NewShareService(c.Request.Context())

	if err := svc.Revoke(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
