package website

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/supernalintelligence/interface-docs-sub001/domain/analytics"
	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/domain/chat"
	"github.com/supernalintelligence/interface-docs-sub001/domain/scheduler"
	"github.com/supernalintelligence/interface-docs-sub001/domain/site"
	"github.com/supernalintelligence/interface-docs-sub001/domain/theme"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/internal/website/handlers"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

// App is the assembled website with its background tasks.
type App struct {
	Handler   http.Handler
	Blog      *blog.Service
	Registry  *tools.Registry
	Scheduler *scheduler.Scheduler
}

// New wires the domain services behind the HTML routes. Posts are read
// from blogFS, or from cfg.Blog.Dir when blogFS is nil.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, httpLogger *logger.HTTPLogger, blogFS fs.FS) (*App, error) {
	var posts *blog.Service
	if blogFS != nil {
		posts = blog.NewServiceFS(blogFS, log)
	} else {
		posts = blog.NewService(cfg, log)
	}
	if err := posts.Refresh(ctx); err != nil {
		log.Warn("initial blog load failed", logger.Error(err))
	}

	themes := theme.NewService()
	pages := site.NewService(cfg, log)

	reg := tools.NewRegistry(log)
	if err := errors.Join(
		blog.RegisterTools(reg, posts),
		theme.RegisterTools(reg, themes),
		site.RegisterTools(reg, pages),
	); err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}

	limiter := chat.NewLimiter(cfg)
	sched := scheduler.NewScheduler(log)
	if err := scheduler.RegisterTasks(scheduler.TaskParams{
		Scheduler: sched,
		Blog:      posts,
		Limiter:   limiter,
		Log:       log,
		Cfg:       cfg,
	}); err != nil {
		return nil, err
	}

	h := handlers.New(handlers.Deps{
		Config:   cfg,
		Log:      log,
		Blog:     posts,
		Themes:   themes,
		Site:     pages,
		Chat:     chat.NewService(reg, cfg, log),
		Events:   analytics.NewService(log),
		Registry: reg,
	})

	router, err := NewRouter(RouterParams{
		Handlers:   h,
		Pages:      pages.Pages(),
		Limiter:    limiter,
		HTTPLogger: httpLogger,
		Log:        log,
		StaticDir:  cfg.Website.StaticDir,
	})
	if err != nil {
		return nil, err
	}

	return &App{Handler: router, Blog: posts, Registry: reg, Scheduler: sched}, nil
}
