package types

// FolderCreateRequest 创建文件夹请求.
type FolderCreateRequest struct {
	Name     string  `json:"name"     rule:"required,max=512"`
	ParentID *string `json:"parentId"`
}

// FolderResponse 文件夹视图.
type FolderResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
	OwnerID  string  `json:"ownerId"`
	Created  string  `json:"created"`
	Modified string  `json:"modified"`
	Starred  bool    `json:"starred"`
	Trashed  bool    `json:"trashed"`
}

// FileResponse 文件视图.
type FileResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"` // MIME 类型
	Size     int64   `json:"size"`
	FolderID *string `json:"folderId"`
	OwnerID  string  `json:"ownerId"`
	Created  string  `json:"created"`
	Modified string  `json:"modified"`
	Starred  bool    `json:"starred"`
	Trashed  bool    `json:"trashed"`
	// Thumbnail 缩略图 data-URI，上传时未生成则为 null
	Thumbnail  *string `json:"thumbnail"`
	LastOpened *string `json:"lastOpened"`
	URL        *string `json:"url"`
}

// ItemUpdateRequest 条目部分更新请求.
// ParentID 仅对文件夹生效、FolderID 仅对文件生效，传错类别时静默忽略.
type ItemUpdateRequest struct {
	Name     *string `json:"name"`
	Starred  *bool   `json:"starred"`
	ParentID *string `json:"parentId"`
	FolderID *string `json:"folderId"`
}

// DriveItemsResponse 视图查询结果，recent 视图下 Folders 恒为空.
type DriveItemsResponse struct {
	Folders []FolderResponse `json:"folders"`
	Files   []FileResponse   `json:"files"`
}

// PreviewResponse 文件预览结果.
// 图片返回 data-URI，文本返回解码内容并置 Type="text"，
// 其余 Preview 为 null 并附带说明.
type PreviewResponse struct {
	Preview *string `json:"preview"`
	Type    string  `json:"type,omitempty"`
	Message string  `json:"message,omitempty"`
}

// SuccessResponse 简单成功响应.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
