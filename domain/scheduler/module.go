package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/ratelimit"
)

// Module provides scheduled task functionality
var Module = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
		NewHandler,
	),
	fx.Invoke(
		RegisterTasks,
		RegisterRoutes,
		RegisterSchedulerLifecycle,
	),
)

// TaskParams contains dependencies for creating scheduled tasks
type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Blog      *blog.Service
	Limiter   *ratelimit.KeyedLimiter `optional:"true"`
	Log       *slog.Logger
	Cfg       *config.Config
}

// RegisterTasks registers all scheduled tasks
func RegisterTasks(p TaskParams) error {
	if !p.Cfg.Scheduler.Enabled {
		p.Log.Info("scheduler disabled, skipping task registration")
		return nil
	}

	refresh := NewBlogRefreshTask(p.Blog, p.Log)
	if err := p.Scheduler.AddIntervalTask(TaskBlogRefresh, p.Cfg.Blog.RefreshInterval, refresh.Run); err != nil {
		p.Log.Error("failed to register blog refresh task", logger.Error(err))
	}

	if p.Limiter != nil {
		sweep := NewLimiterSweepTask(p.Limiter, p.Cfg.Scheduler.LimiterIdle, p.Log)
		if err := p.Scheduler.AddIntervalTask(TaskLimiterSweep, p.Cfg.Scheduler.LimiterSweepInterval, sweep.Run); err != nil {
			p.Log.Error("failed to register limiter sweep task", logger.Error(err))
		}
	}

	p.Log.Info("registered scheduled tasks",
		slog.Any("tasks", p.Scheduler.ListTasks()))

	return nil
}

// RegisterSchedulerLifecycle registers the scheduler with fx lifecycle
func RegisterSchedulerLifecycle(lc fx.Lifecycle, scheduler *Scheduler, cfg *config.Config) {
	if !cfg.Scheduler.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
