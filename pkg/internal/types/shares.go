package types

// ShareCreateRequest 创建/更新共享授权请求，被授权人以邮箱指定.
type ShareCreateRequest struct {
	ItemID     string `json:"itemId"     rule:"required"`
	Email      string `json:"email"      rule:"required,email"`
	Permission string `json:"permission" rule:"required,oneof=viewer commenter editor"`
}

// ShareResponse 共享授权记录.
type ShareResponse struct {
	ID         string `json:"id"`
	ItemID     string `json:"itemId"`
	UserID     string `json:"userId"`
	Permission string `json:"permission"`
	SharedBy   string `json:"sharedBy"`
	SharedAt   string `json:"sharedAt"`
}

// ShareWithUser 条目的被授权人列表项，附带用户资料.
type ShareWithUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Permission string `json:"permission"`
}

// CommentCreateRequest 追加评论请求.
type CommentCreateRequest struct {
	FileID string `json:"fileId" rule:"required"`
	Text   string `json:"text"   rule:"required"`
}

// CommentResponse 评论列表项，UserName 查不到作者时为 "Unknown".
type CommentResponse struct {
	ID        string `json:"id"`
	FileID    string `json:"fileId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// ActivityResponse 活动日志项，按时间倒序下发.
type ActivityResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	UserID      string  `json:"userId"`
	FileID      *string `json:"fileId"`
	Description string  `json:"description"`
	Timestamp   string  `json:"timestamp"`
}

// StorageResponse 存储用量响应.
// Breakdown 读取时扫描未回收文件按 MIME 分类得出，与 Used 计数可能存在
// 预期内的偏差（回收站中的文件仍计入 Used 但不进入 Breakdown）.
type StorageResponse struct {
	Used      int64            `json:"used"`
	Total     int64            `json:"total"`
	Breakdown map[string]int64 `json:"breakdown"`
}
