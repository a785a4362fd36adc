package handle

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/log"
)

const defaultMimeType = "application/octet-stream"

// UploadFile 处理单个文件上传.
//
//	@Summary		上传文件
//	@Description	multipart 上传单个文件，可选 folderId 指定目标文件夹
//	@Tags			文件
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file		formData	file				true	"上传的文件"
//	@Param			folderId	formData	string				false	"目标文件夹 ID"
//	@Success		200			{object}	types.FileResponse	"新建文件"
//	@Failure		400			{object}	map[string]string	"请求参数错误"
//	@Router			/api/files/upload [post]
func UploadFile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	l := log.Logger()

	file, err := c.FormFile("file")
	if err != nil {
		l.Warn().Err(err).Msg("failed to get uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})

		return
	}

	var folderID *string
	if v := c.PostForm("folderId"); v != "" {
		folderID = &v
	}

	src, err := file.Open()
	if err != nil {
		l.Error().Err(err).Msg("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})

		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		l.Error().Err(err).Msg("failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})

		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	svc := service.NewFileService(c.Request.Context())

	resp, err := svc.Upload(c.Request.Context(), userID, file.Filename, mimeType, content, folderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadFile 下载文件内容.
//
//	@Summary		下载文件
//	@Description	返回文件字节流，所有者或任意被授权人可访问
//	@Tags			文件
//	@Produce		octet-stream
//	@Param			id	path		string	true	"文件 ID"
//	@Success		200	{file}		binary
//	@Failure		403	{object}	map[string]string	"无访问权限"
//	@Failure		404	{object}	map[string]string	"文件不存在"
//	@Router			/api/files/{id}/download [get]
func DownloadFile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	svc := service.NewFileService(c.Request.Context())

	result, err := svc.Download(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Name))
	c.Data(http.StatusOK, result.MimeType, result.Content)
}

// PreviewFile 返回文件的内联预览.
//
//	@Summary		预览文件
//	@Description	图片返回 data-URI，文本返回解码内容，其余类型返回空预览
//	@Tags			文件
//	@Produce		json
//	@Param			id	path		string					true	"文件 ID"
//	@Success		200	{object}	types.PreviewResponse	"预览负载"
//	@Failure		404	{object}	map[string]string		"文件不存在"
//	@Router			/api/files/{id}/preview [get]
func PreviewFile(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	svc := service.NewFileService(c.Request.Context())

	resp, err := svc.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
