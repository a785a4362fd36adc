package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/log"
)

// UpdateItem 部分更新文件或文件夹.
//
//	@Summary		更新条目
//	@Description	支持重命名、星标与移动；parentId 仅对文件夹生效，folderId 仅对文件生效，传错的一侧静默忽略
//	@Tags			条目
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"条目 ID"
//	@Param			update	body		types.ItemUpdateRequest	true	"更新字段"
//	@Success		200		{object}	types.SuccessResponse
//	@Failure		404		{object}	map[string]string	"条目不存在或非所有者"
//	@Router			/api/items/{id} [patch]
func UpdateItem(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req types.ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid item update request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewItemService(c.Request.Context())

	if err := svc.Update(c.Request.Context(), userID, c.Param("id"), &req); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// DeleteItem 移入回收站或永久删除.
//
//	@Summary		删除条目
//	@Description	缺省移入回收站；permanent=true 时永久删除并返还文件占用的存储额度
//	@Tags			条目
//	@Produce		json
//	@Param			id			path		string	true	"条目 ID"
//	@Param			permanent	query		bool	false	"是否永久删除"	default(false)
//	@Success		200			{object}	types.SuccessResponse
//	@Failure		404			{object}	map[string]string	"条目不存在或非所有者"
//	@Router			/api/items/{id} [delete]
func DeleteItem(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	permanent, _ := strconv.ParseBool(c.DefaultQuery("permanent", "false"))

	svc := service.NewItemService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), userID, c.Param("id"), permanent); err != nil {
		writeServiceError(c, err)
		return
	}

	msg := "Item moved to trash"
	if permanent {
		msg = "Item deleted permanently"
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true, Message: msg})
}

// RestoreItem 从回收站恢复条目.
//
//	@Summary		恢复条目
//	@Tags			条目
//	@Produce		json
//	@Param			id	path		string	true	"条目 ID"
//	@Success		200	{object}	types.SuccessResponse
//	@Failure		404	{object}	map[string]string	"条目不存在或非所有者"
//	@Router			/api/items/{id}/restore [post]
func RestoreItem(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	svc := service.NewItemService(c.Request.Context())

	if err := svc.Restore(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
