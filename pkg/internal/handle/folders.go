package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/log"
	"github.com/yeisme/drivevault/pkg/rule"
)

// CreateFolder 创建文件夹.
//
//	@Summary		创建文件夹
//	@Description	在根目录或指定上级文件夹下创建文件夹
//	@Tags			文件夹
//	@Accept			json
//	@Produce		json
//	@Param			folder	body		types.FolderCreateRequest	true	"文件夹创建请求"
//	@Success		200		{object}	types.FolderResponse		"新建文件夹"
//	@Failure		400		{object}	map[string]string			"请求参数错误"
//	@Router			/api/folders [post]
func CreateFolder(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	l := log.Logger()

	var req types.FolderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid folder request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewFolderService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
