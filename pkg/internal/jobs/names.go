package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobTrashAutoClean = "trash.auto_clean"
)
