// Package mq 提供进程内 gochannel 消息队列实现。
// 此文件包含默认的 channel 工厂函数，无需外部 broker，单进程部署开箱即用。
package mq

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/yeisme/drivevault/pkg/configs"
)

// init 注册 channel 工厂.
func init() {
	RegisterFactory(configs.MQTypeChannel, channelFactory)
}

// channelFactory 创建进程内 Publisher & Subscriber.
// gochannel 的同一实例同时实现 Publisher 与 Subscriber，消息不跨进程.
func channelFactory(
	ctx context.Context,
	cfg *configs.MQConfig,
	logger watermill.LoggerAdapter) (
	message.Publisher, message.Subscriber, error) {
	ch := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            int64(cfg.Channel.Buffer),
			Persistent:                     cfg.Channel.Persistent,
			BlockPublishUntilSubscriberAck: false,
		},
		logger,
	)

	return ch, ch, nil
}
