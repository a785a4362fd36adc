package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
)

// ListDriveItems 按视图列出文件夹与文件.
//
//	@Summary		列出网盘条目
//	@Description	view 取 drive/recent/starred/shared/trash，drive 视图支持 folderId 定位，search 做大小写不敏感的名称过滤
//	@Tags			网盘
//	@Produce		json
//	@Param			view		query		string	false	"视图名称"	default(drive)
//	@Param			folderId	query		string	false	"文件夹 ID，仅 drive 视图生效"
//	@Param			search		query		string	false	"名称搜索串"
//	@Success		200			{object}	types.DriveItemsResponse	"文件夹与文件列表"
//	@Router			/api/drive/items [get]
func ListDriveItems(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	view := c.DefaultQuery("view", service.ViewDrive)

	var folderID *string
	if v := c.Query("folderId"); v != "" {
		folderID = &v
	}

	svc := service.NewDriveService(c.Request.Context())

	resp, err := svc.ListItems(c.Request.Context(), userID, view, folderID, c.Query("search"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
