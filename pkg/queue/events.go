package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishItemEvent 发布条目领域事件到指定主题.
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息.
func PublishItemEvent(pub message.Publisher, topic string, payload ItemEventPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(topic, msg)
}

// ParseItemEvent 将 Watermill 消息解析为强类型 Envelope（ItemEventPayload）.
func ParseItemEvent(msg *message.Message) (Message[ItemEventPayload], error) {
	return ParseWatermillMessage[ItemEventPayload](msg)
}

// PublishShareCreated 发布 dv.share.created 事件.
func PublishShareCreated(pub message.Publisher, payload ShareEventPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicShareCreated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicShareCreated, msg)
}

// ParseShareCreated 将 Watermill 消息解析为强类型 Envelope（ShareEventPayload）.
func ParseShareCreated(msg *message.Message) (Message[ShareEventPayload], error) {
	return ParseWatermillMessage[ShareEventPayload](msg)
}
