package scheduler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/apperror"
)

type Handler struct {
	s *Scheduler
}

func NewHandler(s *Scheduler) *Handler {
	return &Handler{s: s}
}

type TasksResponse struct {
	Running bool       `json:"running"`
	Tasks   []TaskInfo `json:"tasks"`
}

// ListTasks handles GET /api/scheduler/tasks
func (h *Handler) ListTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, TasksResponse{Running: h.s.IsRunning(), Tasks: h.s.GetTaskInfo()})
}

// RunTask handles POST /api/scheduler/tasks/:name/run
func (h *Handler) RunTask(c echo.Context) error {
	name := c.Param("name")
	err := h.s.RunNow(c.Request().Context(), name)
	if errors.Is(err, ErrUnknownTask) {
		return apperror.NewNotFound("task", name)
	}
	if err != nil {
		return apperror.NewInternal("task failed", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func RegisterRoutes(e *echo.Echo, h *Handler, log *slog.Logger) {
	g := e.Group("/api/scheduler")

	g.GET("/tasks", h.ListTasks)
	g.POST("/tasks/:name/run", h.RunTask)

	log.Info("registered scheduler routes", slog.String("prefix", "/api/scheduler"))
}
