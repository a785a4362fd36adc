package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// 条目类型.
const (
	ItemKindFile   = "file"
	ItemKindFolder = "folder"
)

// ItemRef 标识一个文件或文件夹.
type ItemRef struct {
	ID   string `json:"id"`
	Kind string `json:"kind"` // file | folder
	Name string `json:"name,omitempty"`
	Size int64  `json:"size,omitempty"` // 仅文件
}

// ItemEventPayload 条目领域事件的通用负载.
type ItemEventPayload struct {
	Item    ItemRef `json:"item"`
	OwnerID string  `json:"owner_id"`
	// Optional 业务上下文，如移动目标、重命名前的名称等.
	Detail string `json:"detail,omitempty"`
}

// ShareEventPayload 共享授权创建/更新事件负载.
type ShareEventPayload struct {
	ShareID      string  `json:"share_id"`
	Item         ItemRef `json:"item"`
	OwnerID      string  `json:"owner_id"`
	GranteeID    string  `json:"grantee_id"`
	GranteeEmail string  `json:"grantee_email,omitempty"`
	Permission   string  `json:"permission"`
}
