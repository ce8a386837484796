package theme

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/apperror"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListThemes handles GET /api/themes
func (h *Handler) ListThemes(c echo.Context) error {
	return c.JSON(http.StatusOK, ListThemesResponse{
		Themes:  h.svc.List(),
		Default: h.svc.Default().Name,
	})
}

// Toggle handles POST /api/themes/toggle
func (h *Handler) Toggle(c echo.Context) error {
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	return c.JSON(http.StatusOK, ToggleResponse{Theme: h.svc.Toggle(req.Current)})
}
