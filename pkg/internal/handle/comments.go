package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/types"
	"github.com/yeisme/drivevault/pkg/log"
	"github.com/yeisme/drivevault/pkg/rule"
)

// CreateComment 在文件上追加评论.
//
//	@Summary		追加评论
//	@Tags			评论
//	@Accept			json
//	@Produce		json
//	@Param			comment	body		types.CommentCreateRequest	true	"评论请求"
//	@Success		200		{object}	types.CommentResponse		"新建评论"
//	@Failure		400		{object}	map[string]string			"请求参数错误"
//	@Router			/api/comments [post]
func CreateComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req types.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid comment request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewCommentService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListComments 按时间顺序列出文件的评论.
//
//	@Summary		列出评论
//	@Tags			评论
//	@Produce		json
//	@Param			fileId	path	string	true	"文件 ID"
//	@Success		200		{array}	types.CommentResponse	"评论列表"
//	@Router			/api/comments/{fileId} [get]
func ListComments(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	svc := service.NewCommentService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
