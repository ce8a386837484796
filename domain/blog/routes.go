package blog

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *Handler, log *slog.Logger) {
	g := e.Group("/api/blog")

	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:slug", h.GetPost)
	g.GET("/search", h.SearchPosts)
	g.GET("/tags", h.ListTags)

	log.Info("registered blog routes", slog.String("prefix", "/api/blog"))
}
