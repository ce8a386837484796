package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
)

func testRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	reg := tools.NewRegistry(slog.Default())
	require.NoError(t, reg.Register(tools.Tool{
		Name:        "page.open",
		Description: "Open a page",
		Examples:    []string{"open docs"},
		Params:      []tools.Param{{Name: "page", Description: "Page name", Required: true}},
		Run: func(_ context.Context, args tools.Args) (*tools.Result, error) {
			return &tools.Result{
				Reply:  "Going to " + args.Get("page"),
				Action: &tools.Action{Type: tools.ActionNavigate, Path: "/" + args.Get("page")},
			}, nil
		},
	}))
	require.NoError(t, reg.Register(tools.Tool{
		Name:        "broken",
		Description: "Always fails",
		Run: func(context.Context, tools.Args) (*tools.Result, error) {
			return nil, errors.New("boom")
		},
	}))
	return reg
}

type rpcResponse struct {
	Result struct {
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			InputSchema struct {
				Properties map[string]any `json:"properties"`
				Required   []string       `json:"required"`
			} `json:"inputSchema"`
		} `json:"tools"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func handle(t *testing.T, s *server.MCPServer, msg map[string]any) rpcResponse {
	t.Helper()
	reqBytes, err := json.Marshal(msg)
	require.NoError(t, err)

	result := s.HandleMessage(context.Background(), reqBytes)
	resultBytes, err := json.Marshal(result)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(resultBytes, &resp))
	return resp
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) rpcResponse {
	return handle(t, s, map[string]any{
		"jsonrpc": "2.0",
		"method":  "tools/call",
		"id":      1,
		"params":  map[string]any{"name": name, "arguments": args},
	})
}

func TestToolName(t *testing.T) {
	assert.Equal(t, "blog_open", ToolName("blog.open"))
	assert.Equal(t, "help", ToolName("help"))
}

func TestNewServer_ListTools(t *testing.T) {
	s := NewServer(testRegistry(t), slog.Default())

	resp := handle(t, s, map[string]any{"jsonrpc": "2.0", "method": "tools/list", "id": 1})
	require.Nil(t, resp.Error)
	require.Len(t, resp.Result.Tools, 2)

	byName := map[string]int{}
	for i, tool := range resp.Result.Tools {
		byName[tool.Name] = i
	}
	require.Contains(t, byName, "page_open")
	open := resp.Result.Tools[byName["page_open"]]
	assert.Contains(t, open.Description, "open docs")
	assert.Contains(t, open.InputSchema.Properties, "page")
	assert.Equal(t, []string{"page"}, open.InputSchema.Required)
}

func TestNewServer_CallTool(t *testing.T) {
	s := NewServer(testRegistry(t), slog.Default())

	resp := callTool(t, s, "page_open", map[string]any{"page": "docs"})
	require.Nil(t, resp.Error)
	require.Len(t, resp.Result.Content, 1)
	assert.False(t, resp.Result.IsError)

	var res tools.Result
	require.NoError(t, json.Unmarshal([]byte(resp.Result.Content[0].Text), &res))
	assert.Equal(t, "Going to docs", res.Reply)
	assert.Equal(t, "/docs", res.Action.Path)
}

func TestNewServer_MissingArgument(t *testing.T) {
	s := NewServer(testRegistry(t), slog.Default())

	resp := callTool(t, s, "page_open", map[string]any{})
	require.Nil(t, resp.Error)
	assert.True(t, resp.Result.IsError)
	require.NotEmpty(t, resp.Result.Content)
	assert.Contains(t, resp.Result.Content[0].Text, "missing required argument")
}

func TestNewServer_ToolFailure(t *testing.T) {
	s := NewServer(testRegistry(t), slog.Default())

	resp := callTool(t, s, "broken", map[string]any{})
	require.Nil(t, resp.Error)
	assert.True(t, resp.Result.IsError)
	require.NotEmpty(t, resp.Result.Content)
	assert.Equal(t, "broken failed: boom", resp.Result.Content[0].Text)
}

func TestRegisterRoutes(t *testing.T) {
	reg := testRegistry(t)

	e := echo.New()
	RegisterRoutes(e, reg, &config.Config{MCP: config.MCPConfig{Enabled: true, Path: "/mcp"}}, slog.Default())

	body := `{"jsonrpc":"2.0","method":"tools/list","id":1}`
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "page_open")

	disabled := echo.New()
	RegisterRoutes(disabled, reg, &config.Config{MCP: config.MCPConfig{Enabled: false, Path: "/mcp"}}, slog.Default())
	rec = httptest.NewRecorder()
	disabled.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
