package configs

import "github.com/spf13/viper"

const (
	// DefaultStorageTotal 每用户存储总额度（100 GiB）.
	DefaultStorageTotal = int64(100) << 30
	// DefaultTrashRetentionDays 回收站保留天数，超过后自动清理任务可以永久删除.
	DefaultTrashRetentionDays = 30
	// DefaultTrashCleanCron 回收站清理任务的 cron 表达式（每天凌晨4点）.
	DefaultTrashCleanCron = "0 4 * * *"
)

// QuotaConfig 存储配额与回收站清理配置.
type QuotaConfig struct {
	StorageTotal       int64  `mapstructure:"storage_total"        rule:"min=0"`
	TrashCleanEnabled  bool   `mapstructure:"trash_clean_enabled"`
	TrashRetentionDays int    `mapstructure:"trash_retention_days" rule:"min=1"`
	TrashCleanCron     string `mapstructure:"trash_clean_cron"`
}

func (c *QuotaConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("quota.storage_total", DefaultStorageTotal)
	v.SetDefault("quota.trash_clean_enabled", false)
	v.SetDefault("quota.trash_retention_days", DefaultTrashRetentionDays)
	v.SetDefault("quota.trash_clean_cron", DefaultTrashCleanCron)
}
