package tools

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/apperror"
)

func echoTool(name string, priority int, patterns ...string) Tool {
	var run RunFunc = func(_ context.Context, args Args) (*Result, error) {
		return &Result{Reply: name + ":" + args.Get("x")}, nil
	}
	return Tool{
		Name:     name,
		Priority: priority,
		Patterns: patterns,
		Run:      run,
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry(slog.Default())
	require.NoError(t, reg.Register(echoTool("navigate", 10, `(?:go to|open) (?P<x>.+)`)))
	require.NoError(t, reg.Register(Tool{
		Name:     "blog.open",
		Aliases:  []string{"read post"},
		Priority: 20,
		Params:   []Param{{Name: "query", Required: true}},
		Patterns: []string{`open (?:blog|post) (?P<query>.+)`},
		Run: func(_ context.Context, args Args) (*Result, error) {
			return &Result{Reply: "blog:" + args.Get("query"), Action: &Action{Type: ActionNavigate, Path: "/blog/x"}}, nil
		},
	}))
	require.NoError(t, reg.Register(Tool{
		Name:    "help",
		Aliases: []string{"what can you do", "commands"},
		Run: func(context.Context, Args) (*Result, error) {
			return nil, nil
		},
	}))
	return reg
}

func TestRegister_Validation(t *testing.T) {
	reg := NewRegistry(slog.Default())

	err := reg.Register(Tool{Run: echoTool("x", 0).Run})
	assert.ErrorIs(t, err, ErrInvalidTool)

	err = reg.Register(Tool{Name: "nohandler"})
	assert.ErrorIs(t, err, ErrInvalidTool)

	err = reg.Register(echoTool("bad", 0, `(unclosed`))
	assert.ErrorIs(t, err, ErrInvalidTool)

	require.NoError(t, reg.Register(echoTool("dup", 0)))
	assert.ErrorIs(t, reg.Register(echoTool("dup", 0)), ErrDuplicateTool)

	_, ok := reg.Get("bad")
	assert.False(t, ok)
}

func TestList_PriorityThenRegistrationOrder(t *testing.T) {
	reg := newTestRegistry(t)

	var names []string
	for _, tool := range reg.List() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"blog.open", "navigate", "help"}, names)
}

func TestExamples_Limit(t *testing.T) {
	reg := NewRegistry(slog.Default())
	for _, name := range []string{"a", "b", "c"} {
		tool := echoTool(name, 0)
		tool.Examples = []string{"run " + name, "other " + name}
		require.NoError(t, reg.Register(tool))
	}

	assert.Equal(t, []string{"run a", "run b", "run c"}, reg.Examples(10))
	assert.Equal(t, []string{"run a", "run b"}, reg.Examples(2))

	for _, limit := range []int{0, -1} {
		got := reg.Examples(limit)
		assert.NotNil(t, got)
		assert.Empty(t, got, "limit %d", limit)
	}
}

func TestMatch(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name     string
		message  string
		wantTool string
		wantArgs Args
	}{
		{"priority wins over earlier registration", "open blog Type-Safe Testing", "blog.open", Args{"query": "Type-Safe Testing"}},
		{"case insensitive", "OPEN POST boilerplate", "blog.open", Args{"query": "boilerplate"}},
		{"lower priority fallback", "go to showcase", "navigate", Args{"x": "showcase"}},
		{"whitespace and punctuation", "  go   to   the blog!! ", "navigate", Args{"x": "the blog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := reg.Match(tt.message)
			require.True(t, ok)
			assert.Equal(t, tt.wantTool, inv.Tool.Name)
			assert.Equal(t, tt.wantArgs, inv.Args)
		})
	}

	_, ok := reg.Match("make me a sandwich")
	assert.False(t, ok)
	_, ok = reg.Match("   ")
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	reg := newTestRegistry(t)

	tool, ok := reg.Find("help")
	require.True(t, ok)
	assert.Equal(t, "help", tool.Name)

	tool, ok = reg.Find("What can you do?")
	require.True(t, ok)
	assert.Equal(t, "help", tool.Name)

	tool, ok = reg.Find("blog open")
	require.True(t, ok)
	assert.Equal(t, "blog.open", tool.Name)

	_, ok = reg.Find("the to a")
	assert.False(t, ok)

	_, ok = reg.Find("zzz")
	assert.False(t, ok)
}

func TestCall_RequiredArgsAndDefaults(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Invoke(ctx, "blog.open", Args{"query": "  "})
	assert.ErrorIs(t, err, ErrMissingArgument)

	_, err = reg.Invoke(ctx, "nope", nil)
	assert.ErrorIs(t, err, ErrToolNotFound)

	res, err := reg.Invoke(ctx, "help", nil)
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, ActionNone, res.Action.Type)

	boom := errors.New("boom")
	require.NoError(t, reg.Register(Tool{Name: "fail", Run: func(context.Context, Args) (*Result, error) { return nil, boom }}))
	_, err = reg.Invoke(ctx, "fail", nil)
	assert.ErrorIs(t, err, boom)
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, "toggle dark mode", Keywords("Please toggle the dark mode!"))
	assert.Equal(t, "", Keywords("to the"))
	assert.Equal(t, "open blog", NormalizeMessage("open   blog?"))
}

func TestRenderReply(t *testing.T) {
	assert.Equal(t, `Opening "Tom & Jerry".`, RenderReply("blog.opened", map[string]any{"title": "Tom & Jerry"}))
	assert.Equal(t,
		`Found 2 posts for "ui": A; B.`,
		RenderReply("blog.results", map[string]any{"count": 2, "single": false, "query": "ui", "titles": []string{"A", "B"}}))
	assert.Equal(t,
		`Found 1 post for "ui": A.`,
		RenderReply("blog.results", map[string]any{"count": 1, "single": true, "query": "ui", "titles": []string{"A"}}))
	assert.Equal(t,
		`I don't know a theme called "blue". Try light or dark.`,
		RenderReply("theme.unknown", map[string]any{"query": "blue", "themes": []string{"light", "dark"}}))
	assert.True(t, strings.HasPrefix(RenderReply("nope", nil), "[missing reply"))
}

func TestHandler_Routes(t *testing.T) {
	reg := newTestRegistry(t)
	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(slog.Default())
	RegisterRoutes(e, NewHandler(reg, slog.Default()), slog.Default())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list ListToolsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, "blog.open", list.Tools[0].Name)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/tools/blog.open/invoke", strings.NewReader(`{"args":{"query":"ui"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "blog:ui", res.Reply)
	assert.Equal(t, ActionNavigate, res.Action.Type)

	req = httptest.NewRequest(http.MethodPost, "/api/tools/blog.open/invoke", strings.NewReader(`{"args":{}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
