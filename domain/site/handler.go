package site

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListPages handles GET /api/site/pages
func (h *Handler) ListPages(c echo.Context) error {
	p := h.svc.Pages()
	return c.JSON(http.StatusOK, ListPagesResponse{Pages: p, Total: len(p)})
}

// GetHero handles GET /api/site/hero
func (h *Handler) GetHero(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.AssignHero(c.QueryParam("visitor")))
}
