package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
)

// GetStorage 返回调用者的存储用量与分类统计.
//
//	@Summary		存储用量
//	@Description	used 为累计计数，breakdown 为未回收文件按 MIME 分类的读取时统计
//	@Tags			存储
//	@Produce		json
//	@Success		200	{object}	types.StorageResponse	"用量与分类"
//	@Router			/api/storage [get]
func GetStorage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	svc := service.NewStorageService(c.Request.Context())

	resp, err := svc.Usage(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
