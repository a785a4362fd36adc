package configs

import "github.com/spf13/viper"

const (
	DefaultTokenTTLDays = 7 // Bearer token 有效期（天）
)

// AuthConfig 控制 Bearer token 认证.
// Secret 用于 HS256 签名，生产环境必须通过配置或环境变量覆盖.
type AuthConfig struct {
	Enabled      bool     `mapstructure:"enabled"`        // 开启认证校验
	Secret       string   `mapstructure:"secret"`         // 签名密钥
	TokenTTLDays int      `mapstructure:"token_ttl_days"` // token 有效期（天）
	SkipPaths    []string `mapstructure:"skip_paths"`     // 跳过认证的路径前缀
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.secret", "change-me-in-production")
	v.SetDefault("auth.token_ttl_days", DefaultTokenTTLDays)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/api/v1/health",
		"/api/auth/register",
		"/api/auth/login",
	})
}
