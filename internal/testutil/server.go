package testutil

import (
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/supernalintelligence/interface-docs-sub001/domain/analytics"
	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/domain/chat"
	"github.com/supernalintelligence/interface-docs-sub001/domain/health"
	"github.com/supernalintelligence/interface-docs-sub001/domain/mcptools"
	"github.com/supernalintelligence/interface-docs-sub001/domain/scheduler"
	"github.com/supernalintelligence/interface-docs-sub001/domain/site"
	"github.com/supernalintelligence/interface-docs-sub001/domain/theme"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/internal/server"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

// TestServer wraps an Echo instance with every API route registered.
type TestServer struct {
	Echo      *echo.Echo
	Config    *config.Config
	Log       *slog.Logger
	Registry  *tools.Registry
	Blog      *blog.Service
	Chat      *chat.Service
	Scheduler *scheduler.Scheduler
}

// Option customizes NewTestServer.
type Option func(*options)

type options struct {
	cfg  *config.Config
	blog fs.FS
}

// WithConfig lets a test change the default config.
func WithConfig(fn func(*config.Config)) Option {
	return func(o *options) { fn(o.cfg) }
}

// WithBlogFS replaces the default blog fixture.
func WithBlogFS(fsys fs.FS) Option {
	return func(o *options) { o.blog = fsys }
}

// DefaultConfig mirrors the env defaults with rate limiting off.
func DefaultConfig() *config.Config {
	return &config.Config{
		ServerPort:    3002,
		ServerAddress: "127.0.0.1",
		Environment:   "test",
		Blog:          config.BlogConfig{Dir: "content/blog", RefreshInterval: 5 * time.Minute, SearchLimit: 10},
		Chat:          config.ChatConfig{MaxMessageLength: 500},
		MCP:           config.MCPConfig{Enabled: true, Path: "/mcp"},
		Scheduler:     config.SchedulerConfig{Enabled: true, LimiterSweepInterval: 10 * time.Minute, LimiterIdle: 30 * time.Minute},
	}
}

// NewTestServer creates a test server with all routes registered over an
// in-memory blog.
func NewTestServer(opts ...Option) *TestServer {
	o := &options{cfg: DefaultConfig(), blog: BlogFS()}
	for _, opt := range opts {
		opt(o)
	}
	cfg := o.cfg

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	e := server.New(cfg, log, logger.NewHTTPLoggerWriter(io.Discard))

	reg := tools.NewRegistry(log)

	blogSvc := blog.NewServiceFS(o.blog, log)
	if err := blogSvc.Refresh(context.Background()); err != nil {
		panic(err)
	}
	blog.RegisterRoutes(e, blog.NewHandler(blogSvc, cfg), log)
	must(blog.RegisterTools(reg, blogSvc))

	themeSvc := theme.NewService()
	theme.RegisterRoutes(e, theme.NewHandler(themeSvc))
	must(theme.RegisterTools(reg, themeSvc))

	siteSvc := site.NewService(cfg, log)
	site.RegisterRoutes(e, site.NewHandler(siteSvc), log)
	must(site.RegisterTools(reg, siteSvc))

	tools.RegisterRoutes(e, tools.NewHandler(reg, log), log)

	limiter := chat.NewLimiter(cfg)
	chatSvc := chat.NewService(reg, cfg, log)
	chat.RegisterRoutes(e, chat.NewHandler(chatSvc), limiter, log)

	analytics.RegisterRoutes(e, analytics.NewHandler(analytics.NewService(log)), log)

	health.RegisterRoutes(e, health.NewHandler(blogSvc, reg, cfg), health.NewMetricsHandler())

	sched := scheduler.NewScheduler(log)
	must(scheduler.RegisterTasks(scheduler.TaskParams{
		Scheduler: sched,
		Blog:      blogSvc,
		Limiter:   limiter,
		Log:       log,
		Cfg:       cfg,
	}))
	scheduler.RegisterRoutes(e, scheduler.NewHandler(sched), log)

	mcptools.RegisterRoutes(e, reg, cfg, log)

	return &TestServer{
		Echo:      e,
		Config:    cfg,
		Log:       log,
		Registry:  reg,
		Blog:      blogSvc,
		Chat:      chatSvc,
		Scheduler: sched,
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Request performs an HTTP request against the test server
func (s *TestServer) Request(method, path string, opts ...RequestOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "192.0.2.10:5555"

	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

// GET performs a GET request
func (s *TestServer) GET(path string, opts ...RequestOption) *httptest.ResponseRecorder {
	return s.Request(http.MethodGet, path, opts...)
}

// POST performs a POST request
func (s *TestServer) POST(path string, opts ...RequestOption) *httptest.ResponseRecorder {
	return s.Request(http.MethodPost, path, opts...)
}

// RequestOption modifies an HTTP request
type RequestOption func(*http.Request)

// WithHeader adds a header to the request
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// WithRemoteAddr sets the client address seen by the server
func WithRemoteAddr(addr string) RequestOption {
	return func(r *http.Request) {
		r.RemoteAddr = addr
	}
}

// WithBody adds a raw JSON request body
func WithBody(body string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set("Content-Type", "application/json")
		r.Body = io.NopCloser(strings.NewReader(body))
		r.ContentLength = int64(len(body))
	}
}

// WithJSONBody sets Content-Type to application/json and marshals the body to JSON
func WithJSONBody(body any) RequestOption {
	return func(r *http.Request) {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		WithBody(string(data))(r)
	}
}
