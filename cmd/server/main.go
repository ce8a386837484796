// Package main runs the site API: blog, chat commands, themes, pages,
// analytics, health, metrics and the MCP tool endpoint.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/supernalintelligence/interface-docs-sub001/domain/analytics"
	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/domain/chat"
	"github.com/supernalintelligence/interface-docs-sub001/domain/health"
	"github.com/supernalintelligence/interface-docs-sub001/domain/mcptools"
	"github.com/supernalintelligence/interface-docs-sub001/domain/scheduler"
	"github.com/supernalintelligence/interface-docs-sub001/domain/site"
	"github.com/supernalintelligence/interface-docs-sub001/domain/theme"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tracing"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/internal/server"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

func main() {
	// .env.local overrides .env
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		tracing.Module,
		server.Module,

		// Registry first so domain modules can add their tools.
		tools.Module,

		// Domain modules
		blog.Module,
		theme.Module,
		site.Module,
		chat.Module,
		analytics.Module,
		health.Module,
		scheduler.Module,

		// Publishes the registry over MCP; keep after every tool provider.
		mcptools.Module,
	).Run()
}
