package task

import (
	"log/slog"
	"os"

	parameter_service "github.com/xyhcode/gocms/pkg/service/parameter"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron     *cron.Cron
	logger   *slog.Logger
	paramSvc parameter_service.Service
}

// NewScheduler 是 Scheduler 的构造函数。
func NewScheduler(paramSvc parameter_service.Service) *Scheduler {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron:     c,
		logger:   logger,
		paramSvc: paramSvc,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	// --- 任务: 周期性重载配置参数缓存 ---
	reloadJob := NewParameterReloadJob(s.paramSvc)
	_, err := s.cron.AddJob("0 * * * * *", reloadJob)
	if err != nil {
		s.logger.Error("Failed to add 'ParameterReloadJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'ParameterReloadJob'", "schedule", "every minute")

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 优雅地停止 cron 调度器。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}
