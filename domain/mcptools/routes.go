package mcptools

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/mark3labs/mcp-go/server"

	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
)

// RegisterRoutes mounts the streamable HTTP transport. It must run after
// every domain has registered its tools.
func RegisterRoutes(e *echo.Echo, reg *tools.Registry, cfg *config.Config, log *slog.Logger) {
	if !cfg.MCP.Enabled {
		log.Info("mcp endpoint disabled")
		return
	}

	h := server.NewStreamableHTTPServer(NewServer(reg, log), server.WithStateLess(true))
	e.Any(cfg.MCP.Path, echo.WrapHandler(h))

	log.Info("registered mcp routes", slog.String("path", cfg.MCP.Path))
}
