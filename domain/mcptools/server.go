// Package mcptools publishes the site's tool registry over the Model
// Context Protocol so agents can drive the same commands as the chat widget.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/version"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

const serverName = "supernal-site"

// ToolName converts a registry name such as "blog.open" into an MCP tool
// name ("blog_open").
func ToolName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

// NewServer builds an MCP server exposing every tool currently in reg.
// Tools registered later are not picked up.
func NewServer(reg *tools.Registry, log *slog.Logger) *server.MCPServer {
	log = log.With(logger.Scope("mcp"))
	s := server.NewMCPServer(serverName, version.Version, server.WithToolCapabilities(true))

	for _, t := range reg.List() {
		s.AddTool(describe(t), handler(t, log))
	}

	log.Info("mcp tools published", slog.Int("count", len(reg.List())))
	return s
}

func describe(t *tools.Tool) mcp.Tool {
	desc := t.Description
	if len(t.Examples) > 0 {
		desc += ". Chat examples: " + strings.Join(t.Examples, "; ")
	}

	opts := []mcp.ToolOption{mcp.WithDescription(desc)}
	for _, p := range t.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		opts = append(opts, mcp.WithString(p.Name, propOpts...))
	}
	return mcp.NewTool(ToolName(t.Name), opts...)
}

func handler(t *tools.Tool, log *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := tools.Args{}
		for _, p := range t.Params {
			if v := req.GetString(p.Name, ""); v != "" {
				args[p.Name] = v
			}
		}

		res, err := t.Call(ctx, args)
		if errors.Is(err, tools.ErrMissingArgument) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err != nil {
			log.Error("mcp tool failed", slog.String("tool", t.Name), logger.Error(err))
			return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", t.Name, err)), nil
		}

		body, err := json.Marshal(res)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s result: %w", t.Name, err)
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}
