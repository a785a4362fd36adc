package configs

import (
	"github.com/spf13/viper"
)

// MQType 消息队列类型.
type MQType string

const (
	MQTypeChannel MQType = "channel" // 进程内 gochannel，默认
	MQTypeNATS    MQType = "nats"

	DefaultMQURL         = "nats://localhost:4222"
	DefaultMaxReconnects = 5  // 默认最大重连次数
	DefaultReconnectWait = 5  // 默认重连等待时间（秒）
	DefaultPingInterval  = 20 // 默认ping间隔（秒）

	DefaultChannelBuffer = 64 // gochannel 输出缓冲
)

// MQConfig 消息队列配置，用于 drive 事件总线.
type MQConfig struct {
	Type     MQType          `mapstructure:"type"    rule:"oneof=channel nats"`
	ClientID string          `mapstructure:"client_id"`
	Channel  MQChannelConfig `mapstructure:"channel"`
	NATS     MQNATSConfig    `mapstructure:"nats"`
}

// MQChannelConfig 进程内 gochannel 配置.
type MQChannelConfig struct {
	Buffer     int  `mapstructure:"buffer"     rule:"min=0,max=65536"`
	Persistent bool `mapstructure:"persistent"`
}

// MQNATSConfig NATS 配置.
type MQNATSConfig struct {
	URL              string   `mapstructure:"url"`
	User             string   `mapstructure:"user"`
	Password         string   `mapstructure:"password"`
	JWT              string   `mapstructure:"jwt"`
	NKey             string   `mapstructure:"nkey"`
	ClusterURLs      []string `mapstructure:"cluster_urls"`
	MaxReconnects    int      `mapstructure:"max_reconnects"    rule:"min=0,max=100"`
	ReconnectWait    int      `mapstructure:"reconnect_wait"    rule:"min=1,max=300"`
	PingInterval     int      `mapstructure:"ping_interval"     rule:"min=1,max=300"`
	JetStreamEnabled bool     `mapstructure:"jetstream_enabled"`
	DurablePrefix    string   `mapstructure:"durable_prefix"`
}

// GetMQType 返回当前配置的消息队列类型.
func (c *MQConfig) GetMQType() MQType {
	return c.Type
}

// setDefaults 设置MQ配置的默认值.
func (c *MQConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mq.type", MQTypeChannel)
	v.SetDefault("mq.client_id", "drivevault-app")

	// gochannel 默认值
	v.SetDefault("mq.channel.buffer", DefaultChannelBuffer)
	v.SetDefault("mq.channel.persistent", false)

	// NATS 默认值
	v.SetDefault("mq.nats.url", DefaultMQURL)
	v.SetDefault("mq.nats.max_reconnects", DefaultMaxReconnects)
	v.SetDefault("mq.nats.reconnect_wait", DefaultReconnectWait)
	v.SetDefault("mq.nats.ping_interval", DefaultPingInterval)
	v.SetDefault("mq.nats.jetstream_enabled", false)
	v.SetDefault("mq.nats.durable_prefix", "drivevault-durable")
	v.SetDefault("mq.nats.cluster_urls", []string{})
}
