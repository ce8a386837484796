package site

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *Handler, log *slog.Logger) {
	g := e.Group("/api/site")

	g.GET("/pages", h.ListPages)
	g.GET("/hero", h.GetHero)

	log.Info("registered site routes", slog.String("prefix", "/api/site"))
}
