package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
)

// ListActivities 列出调用者的活动记录，最新在前.
//
//	@Summary		活动记录
//	@Tags			活动
//	@Produce		json
//	@Param			limit	query	int	false	"每页条数"	default(20)
//	@Param			offset	query	int	false	"偏移量"	default(0)
//	@Success		200		{array}	types.ActivityResponse	"活动列表"
//	@Router			/api/activities [get]
func ListActivities(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	svc := service.NewActivityService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
