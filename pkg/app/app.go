// Package app 提供应用程序的初始化和配置功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/drivevault/pkg/api"
	"github.com/yeisme/drivevault/pkg/configs"
	"github.com/yeisme/drivevault/pkg/internal/jobs"
	"github.com/yeisme/drivevault/pkg/internal/storage"
	"github.com/yeisme/drivevault/pkg/log"
	"github.com/yeisme/drivevault/pkg/metrics"
	"github.com/yeisme/drivevault/pkg/middleware"
	"github.com/yeisme/drivevault/pkg/queue"
	"github.com/yeisme/drivevault/pkg/scheduler"
)

type App struct {
	Engine    *gin.Engine
	config    *configs.AppConfig
	manager   *storage.Manager
	scheduler *scheduler.Scheduler
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	log.Init()

	if config.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.CORSMiddleware(config.Server),
		middleware.GinLoggerMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.StorageMiddleware(manager),
		middleware.AuthMiddleware(config.Auth),
	)

	api.RegisterGroup(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	a := &App{
		Engine:  engine,
		config:  config,
		manager: manager,
	}

	a.startEventConsumer(ctx)
	a.startScheduler()

	return a
}

// startEventConsumer 订阅全部业务事件主题，按主题计数.
// 事件总线在当前部署中只承担观测职责，消费失败不影响请求路径.
func (a *App) startEventConsumer(ctx contextPkg.Context) {
	if a.manager == nil || a.manager.MQ == nil {
		return
	}

	l := log.Logger()

	for _, topic := range queue.AllTopics {
		ch, err := a.manager.MQ.Subscribe(ctx, topic)
		if err != nil {
			l.Warn().Err(err).Str("topic", topic).Msg("failed to subscribe topic")
			continue
		}

		go func(topic string) {
			for msg := range ch {
				metrics.DriveEventCounter.WithLabelValues(topic).Inc()
				msg.Ack()
			}
		}(topic)
	}
}

// startScheduler 按配置启动回收站清理等定时任务.
func (a *App) startScheduler() {
	if !a.config.Quota.TrashCleanEnabled {
		return
	}

	l := log.Logger()

	sched, err := scheduler.NewScheduler()
	if err != nil {
		l.Error().Err(err).Msg("failed to create scheduler")
		return
	}

	if err := jobs.RegisterCronJobs(sched, a.manager, a.config.Quota); err != nil {
		l.Error().Err(err).Msg("failed to register cron jobs")
		return
	}

	sched.Start()
	a.scheduler = sched
}

func (a *App) Run() error {
	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}

// Shutdown 停止后台组件.
func (a *App) Shutdown() error {
	if a.scheduler != nil {
		if err := a.scheduler.Stop(); err != nil {
			return err
		}
	}

	if a.manager != nil && a.manager.MQ != nil {
		return a.manager.MQ.Close()
	}

	return nil
}
