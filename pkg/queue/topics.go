// Package queue 定义消息主题常量与分组，供发布/订阅使用.
package queue

// 主题命名规范：dv.<域>.<动作>，尽量稳定且向后兼容.
// 域：item(文件与文件夹)、share(共享授权)
// 动作：uploaded/created/renamed/starred/trashed/restored/deleted/accessed 等

const (
	// 条目领域.
	TopicItemUploaded = "dv.item.uploaded" // 文件上传完成，元数据已入库
	TopicItemCreated  = "dv.item.created"  // 文件夹创建完成
	TopicItemUpdated  = "dv.item.updated"  // 重命名、移动或星标变更
	TopicItemTrashed  = "dv.item.trashed"  // 移入回收站
	TopicItemRestored = "dv.item.restored" // 从回收站恢复
	TopicItemDeleted  = "dv.item.deleted"  // 彻底删除，存储用量已返还
	TopicItemAccessed = "dv.item.accessed" // 文件被下载（用于最近访问统计）

	// 共享领域.
	TopicShareCreated = "dv.share.created" // 新建或更新共享授权
)

// 主题分组，用于批量订阅.
var (
	// 条目相关主题集合.
	ItemTopics = []string{
		TopicItemUploaded, TopicItemCreated, TopicItemUpdated,
		TopicItemTrashed, TopicItemRestored, TopicItemDeleted,
		TopicItemAccessed,
	}

	// 共享相关主题集合.
	ShareTopics = []string{
		TopicShareCreated,
	}

	// AllTopics 全量主题，事件消费者按此订阅.
	AllTopics = append(append([]string{}, ItemTopics...), ShareTopics...)
)
