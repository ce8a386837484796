package theme

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/themes", h.ListThemes)
	e.POST("/api/themes/toggle", h.Toggle)
}
