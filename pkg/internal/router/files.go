package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/drivevault/pkg/internal/handle"
)

// RegisterFoldersRoutes 注册文件夹相关路由.
func RegisterFoldersRoutes(g *gin.RouterGroup) {
	g.POST("/folders", handle.CreateFolder)
}

// RegisterFilesRoutes 注册文件操作相关路由.
func RegisterFilesRoutes(g *gin.RouterGroup) {
	filesRoutes := g.Group("/files")
	{
		// 上传文件（multipart）
		filesRoutes.POST("/upload", handle.UploadFile)

		// 单个文件操作
		singleGroup := filesRoutes.Group("/:id")
		{
			// 下载文件
			singleGroup.GET("/download", handle.DownloadFile)
			// 内联预览
			singleGroup.GET("/preview", handle.PreviewFile)
		}
	}
}
