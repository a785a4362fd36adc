package configs

import "github.com/spf13/viper"

const (
	DefaultRateLimitRPS   = 50  // 默认每秒请求数
	DefaultRateLimitBurst = 100 // 默认突发容量
)

// RateLimitConfig 限流配置.
// Key 取值：global（全局单一限流器）、ip（按客户端IP）、header:<名称>（按请求头）.
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"     rule:"min=0"`
	Burst   int     `mapstructure:"burst"   rule:"min=0"`
	Key     string  `mapstructure:"key"`
}

func (c *RateLimitConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.rps", DefaultRateLimitRPS)
	v.SetDefault("rate_limit.burst", DefaultRateLimitBurst)
	v.SetDefault("rate_limit.key", "ip")
}
