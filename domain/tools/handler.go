package tools

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/apperror"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

// Handler serves the tool catalog and direct invocation.
type Handler struct {
	reg *Registry
	log *slog.Logger
}

func NewHandler(reg *Registry, log *slog.Logger) *Handler {
	return &Handler{reg: reg, log: log.With(logger.Scope("tools.handler"))}
}

// ListTools handles GET /api/tools
func (h *Handler) ListTools(c echo.Context) error {
	list := h.reg.List()
	out := make([]Descriptor, 0, len(list))
	for _, t := range list {
		out = append(out, t.Describe())
	}
	return c.JSON(http.StatusOK, ListToolsResponse{Tools: out, Total: len(out)})
}

// GetTool handles GET /api/tools/:name
func (h *Handler) GetTool(c echo.Context) error {
	t, ok := h.reg.Get(c.Param("name"))
	if !ok {
		return apperror.ErrToolNotFound.WithMessage("tool '" + c.Param("name") + "' not found")
	}
	return c.JSON(http.StatusOK, t.Describe())
}

// InvokeTool handles POST /api/tools/:name/invoke
func (h *Handler) InvokeTool(c echo.Context) error {
	name := c.Param("name")

	var req InvokeRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	res, err := h.reg.Invoke(c.Request().Context(), name, req.Args)
	switch {
	case errors.Is(err, ErrToolNotFound):
		return apperror.ErrToolNotFound.WithMessage("tool '" + name + "' not found")
	case errors.Is(err, ErrMissingArgument):
		return apperror.NewValidation(err.Error())
	case err != nil:
		h.log.Error("tool invocation failed", slog.String("tool", name), logger.Error(err))
		return apperror.NewInternal("tool invocation failed", err)
	}

	return c.JSON(http.StatusOK, res)
}
