package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/internal/version"
)

// ContentIndex is the part of the blog service health checks look at.
type ContentIndex interface {
	Loaded() time.Time
	Count() int
}

// Handler handles health check requests
type Handler struct {
	index   ContentIndex
	reg     *tools.Registry
	cfg     *config.Config
	startAt time.Time
}

// NewHandler creates a new health handler
func NewHandler(posts *blog.Service, reg *tools.Registry, cfg *config.Config) *Handler {
	return newHandler(posts, reg, cfg)
}

func newHandler(index ContentIndex, reg *tools.Registry, cfg *config.Config) *Handler {
	return &Handler{
		index:   index,
		reg:     reg,
		cfg:     cfg,
		startAt: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) checks() (map[string]Check, bool) {
	healthy := true

	blogCheck := Check{Status: "healthy"}
	if loaded := h.index.Loaded(); loaded.IsZero() {
		blogCheck = Check{Status: "unhealthy", Message: "blog index not loaded"}
		healthy = false
	} else {
		blogCheck.Message = time.Since(loaded).Round(time.Second).String() + " since refresh"
	}

	toolsCheck := Check{Status: "healthy"}
	if len(h.reg.List()) == 0 {
		toolsCheck = Check{Status: "unhealthy", Message: "no tools registered"}
		healthy = false
	}

	return map[string]Check{"blog": blogCheck, "tools": toolsCheck}, healthy
}

// Health returns the overall service health
// @Summary      Get service health
// @Description  Returns the blog index and tool registry status and uptime
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse "Service is healthy"
// @Success      503 {object} HealthResponse "Service is unhealthy"
// @Router       /health [get]
func (h *Handler) Health(c echo.Context) error {
	checks, healthy := h.checks()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// Healthz returns a simple health check (for k8s liveness probe)
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready returns readiness status (for k8s readiness probe)
func (h *Handler) Ready(c echo.Context) error {
	if _, healthy := h.checks(); !healthy {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Site content not loaded",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Version returns build information
func (h *Handler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Info())
}

// Debug returns debug information (only in development)
// @Summary      Get debug information
// @Description  Returns runtime and host memory/load stats (development only)
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]any "Debug information"
// @Failure      404 {object} map[string]any "Not found in production"
// @Router       /debug [get]
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"num_cpu":     runtime.NumCPU(),
		"memory": map[string]any{
			"alloc_mb":       ms.Alloc / 1024 / 1024,
			"total_alloc_mb": ms.TotalAlloc / 1024 / 1024,
			"sys_mb":         ms.Sys / 1024 / 1024,
			"num_gc":         ms.NumGC,
		},
		"host": hostStats(ctx),
		"content": map[string]any{
			"blog_dir":    h.cfg.Blog.Dir,
			"posts":       h.index.Count(),
			"loaded_at":   h.index.Loaded(),
			"tools":       len(h.reg.List()),
			"mcp_enabled": h.cfg.MCP.Enabled,
		},
	})
}

// hostStats reads host memory and load. Failures are reported inline since
// some platforms do not expose load averages.
func hostStats(ctx context.Context) map[string]any {
	out := map[string]any{}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		out["memory_error"] = err.Error()
	} else {
		out["memory_total_mb"] = vm.Total / 1024 / 1024
		out["memory_used_percent"] = vm.UsedPercent
	}

	if avg, err := load.AvgWithContext(ctx); err != nil {
		out["load_error"] = err.Error()
	} else {
		out["load"] = map[string]float64{"1m": avg.Load1, "5m": avg.Load5, "15m": avg.Load15}
	}

	return out
}
