package analytics

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *Handler, log *slog.Logger) {
	g := e.Group("/api/analytics")

	g.POST("/events", h.TrackEvent)
	g.GET("/summary", h.GetSummary)

	log.Info("registered analytics routes", slog.String("prefix", "/api/analytics"))
}
