package analytics

import (
	"errors"
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

// TrackEvent handles POST /api/analytics/events
func (h *Handler) TrackEvent(c echo.Context) error {
	var ev Event
	if err := c.Bind(&ev); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if _, err := h.svc.Track(c.Request().Context(), ev); err != nil {
		if errors.Is(err, ErrInvalidName) || errors.Is(err, ErrTooManyProps) || errors.Is(err, ErrPropertyTooLong) ||
			errors.Is(err, ErrInvalidPropertyKey) {
			return apperror.NewValidation(err.Error())
		}
		return apperror.NewInternal("failed to record event", err)
	}

	return c.JSON(http.StatusAccepted, TrackResponse{Accepted: true})
}

// GetSummary handles GET /api/analytics/summary
func (h *Handler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Summary())
}
