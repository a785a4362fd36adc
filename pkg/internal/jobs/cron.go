// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/yeisme/drivevault/pkg/configs"
	ctxPkg "github.com/yeisme/drivevault/pkg/context"
	"github.com/yeisme/drivevault/pkg/internal/service"
	"github.com/yeisme/drivevault/pkg/internal/storage"
	"github.com/yeisme/drivevault/pkg/log"
	"github.com/yeisme/drivevault/pkg/scheduler"
)

const hoursPerDay = 24

// RegisterCronJobs 配置业务定时任务：按配置的 cron 表达式自动清理回收站，
// 永久删除在回收站中停留超过保留期的条目并返还文件占用的存储额度.
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager, cfg configs.QuotaConfig) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	if !cfg.TrashCleanEnabled {
		return nil
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	return sched.AddCron(JobTrashAutoClean, cfg.TrashCleanCron, func(ctx context.Context) {
		runTrashAutoClean(ctx, cfg.TrashRetentionDays)
	}, baseCtx)
}

// runTrashAutoClean 执行一轮回收站清理.
func runTrashAutoClean(ctx context.Context, retentionDays int) {
	l := log.Logger().With().Str("job", JobTrashAutoClean).Logger()

	if retentionDays <= 0 {
		retentionDays = configs.DefaultTrashRetentionDays
	}

	before := time.Now().UTC().Add(-time.Duration(retentionDays) * hoursPerDay * time.Hour)

	n, err := service.NewItemService(ctx).CleanTrash(ctx, before)
	if err != nil {
		l.Error().Err(err).Int64("removed", n).Msg("trash clean failed")
		return
	}

	if n > 0 {
		l.Info().Int64("removed", n).Time("before", before).Msg("auto cleaned trash")
	}
}
