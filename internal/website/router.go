// Package website assembles the HTML site: chi routes, middleware and
// embedded static assets.
package website

import (
	"embed"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/supernalintelligence/interface-docs-sub001/domain/chat"
	"github.com/supernalintelligence/interface-docs-sub001/domain/site"
	"github.com/supernalintelligence/interface-docs-sub001/internal/website/handlers"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/ratelimit"
)

//go:embed static
var staticFS embed.FS

var dedicated = map[string]struct{}{"/": {}, "/blog": {}, "/health": {}}

// RouterParams holds what NewRouter needs besides the page handlers.
type RouterParams struct {
	Handlers *handlers.Handlers
	// Pages get a generic section page unless a dedicated route exists.
	Pages      []site.Page
	Limiter    *ratelimit.KeyedLimiter
	HTTPLogger *logger.HTTPLogger
	Log        *slog.Logger
	// StaticDir serves assets from disk when set.
	StaticDir string
}

func NewRouter(p RouterParams) (http.Handler, error) {
	static, err := staticFiles(p.StaticDir)
	if err != nil {
		return nil, err
	}
	h := p.Handlers

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(p.HTTPLogger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/", h.LandingPage)
	r.Get("/health", h.Health)
	r.Get("/blog", h.BlogIndex)
	r.Get("/blog/{slug}", h.BlogPost)
	r.Post("/theme", h.SetTheme)
	r.With(RateLimit(p.Limiter, p.Log)).Post("/chat", h.ChatCommand)

	for _, page := range p.Pages {
		if _, taken := dedicated[page.Path]; taken {
			continue
		}
		r.Get(page.Path, h.SectionPage(page))
	}

	r.NotFound(h.NotFound)

	return otelhttp.NewHandler(r, "website", otelhttp.WithFilter(traced)), nil
}

// traced keeps probes and assets out of traces.
func traced(r *http.Request) bool {
	return r.URL.Path != "/health" && !strings.HasPrefix(r.URL.Path, "/static/")
}

func staticFiles(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(staticFS, "static")
}

// RequestLogger writes one access line per request.
func RequestLogger(httpLogger *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			httpLogger.LogRequest(clientIP(r), r.Method, r.URL.RequestURI(), status,
				time.Since(start), r.UserAgent(), middleware.GetReqID(r.Context()))
		})
	}
}

// RateLimit rejects chat posts from clients over their budget. A nil
// limiter disables the check.
func RateLimit(l *ratelimit.KeyedLimiter, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, _ := l.Allow(clientIP(r))
			if !ok {
				chat.RateLimited.Inc()
				log.Debug("chat command rate limited", slog.String("ip", clientIP(r)))
				http.Error(w, "Too many commands, slow down.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port RemoteAddr carries when no proxy header was set.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
