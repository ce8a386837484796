package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

const (
	TaskBlogRefresh  = "blog.refresh"
	TaskLimiterSweep = "chat.limiter_sweep"
)

// Refresher reloads content from its source.
type Refresher interface {
	Refresh(ctx context.Context) error
	Count() int
}

// BlogRefreshTask re-reads the blog directory so new posts show up without
// a restart.
type BlogRefreshTask struct {
	blog Refresher
	log  *slog.Logger
}

func NewBlogRefreshTask(blog Refresher, log *slog.Logger) *BlogRefreshTask {
	return &BlogRefreshTask{
		blog: blog,
		log:  log.With(logger.Scope("scheduler.blog_refresh")),
	}
}

// Run executes the refresh
func (t *BlogRefreshTask) Run(ctx context.Context) error {
	start := time.Now()
	if err := t.blog.Refresh(ctx); err != nil {
		return err
	}
	t.log.Debug("blog refreshed",
		slog.Int("posts", t.blog.Count()),
		slog.Duration("duration", time.Since(start)))
	return nil
}

// Sweeper drops idle per-client state.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// LimiterSweepTask removes chat rate limiters for clients that went quiet.
type LimiterSweepTask struct {
	limiter Sweeper
	idle    time.Duration
	log     *slog.Logger
}

func NewLimiterSweepTask(limiter Sweeper, idle time.Duration, log *slog.Logger) *LimiterSweepTask {
	return &LimiterSweepTask{
		limiter: limiter,
		idle:    idle,
		log:     log.With(logger.Scope("scheduler.limiter_sweep")),
	}
}

// Run executes the sweep
func (t *LimiterSweepTask) Run(ctx context.Context) error {
	if n := t.limiter.Sweep(t.idle); n > 0 {
		t.log.Debug("dropped idle rate limiters", slog.Int("count", n))
	}
	return nil
}
