package chat

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

// Command handles POST /api/chat/commands
// @Summary      Resolve a chat command
// @Description  Maps a free-text message onto a site tool, runs it and returns the reply and UI action
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body CommandRequest true "Message and page state"
// @Success      200 {object} Response
// @Failure      400 {object} apperror.Error "Empty message"
// @Failure      422 {object} apperror.Error "Message too long"
// @Failure      429 {object} apperror.Error "Rate limited"
// @Router       /api/chat/commands [post]
func (h *Handler) Command(c echo.Context) error {
	var req CommandRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	resp, err := h.svc.Resolve(c.Request().Context(), req.Message, req.State)
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return apperror.NewBadRequest("message is required")
	case errors.Is(err, ErrMessageTooLong):
		return apperror.NewValidation(err.Error())
	case err != nil:
		return apperror.NewInternal("failed to resolve command", err)
	}

	return c.JSON(http.StatusOK, resp)
}
