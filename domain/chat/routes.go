package chat

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/apperror"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/ratelimit"
)

// NewLimiter builds the per-client limiter for chat commands. It is nil
// when CHAT_RATE_LIMIT is 0.
func NewLimiter(cfg *config.Config) *ratelimit.KeyedLimiter {
	if !cfg.Chat.RateLimited() {
		return nil
	}
	return ratelimit.New(cfg.Chat.RateLimit, cfg.Chat.RateBurst)
}

func RegisterRoutes(e *echo.Echo, h *Handler, limiter *ratelimit.KeyedLimiter, log *slog.Logger) {
	g := e.Group("/api/chat")

	var mw []echo.MiddlewareFunc
	if limiter != nil {
		mw = append(mw, RateLimit(limiter))
	}
	g.POST("/commands", h.Command, mw...)

	log.Info("registered chat routes",
		slog.String("prefix", "/api/chat"),
		slog.Bool("rate_limited", limiter != nil))
}

// RateLimit rejects clients that exceed their token bucket, keyed by
// client IP.
func RateLimit(store middleware.RateLimiterStore) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperror.NewBadRequest("cannot identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			RateLimited.Inc()
			return apperror.ErrRateLimited
		},
	})
}
