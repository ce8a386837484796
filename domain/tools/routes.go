package tools

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *Handler, log *slog.Logger) {
	g := e.Group("/api/tools")

	g.GET("", h.ListTools)
	g.GET("/:name", h.GetTool)
	g.POST("/:name/invoke", h.InvokeTool)

	log.Info("registered tool routes", slog.String("prefix", "/api/tools"))
}
