package blog

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/apperror"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(slog.Default())
	cfg := &config.Config{Blog: config.BlogConfig{SearchLimit: 10}}
	RegisterRoutes(e, NewHandler(newTestService(t), cfg), slog.Default())
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_ListPosts(t *testing.T) {
	e := newTestEcho(t)

	rec := get(e, "/api/blog/posts")
	require.Equal(t, http.StatusOK, rec.Code)
	var list PostList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 3, list.Total)

	rec = get(e, "/api/blog/posts?tag=chat")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "chat-commands", list.Posts[0].Slug)
}

func TestHandler_GetPost(t *testing.T) {
	e := newTestEcho(t)

	rec := get(e, "/api/blog/posts/chat-commands")
	require.Equal(t, http.StatusOK, rec.Code)
	var post Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "Chat Commands for Any App", post.Title)
	assert.Contains(t, post.Content, "toggle dark mode")

	rec = get(e, "/api/blog/posts/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "post_not_found")
}

func TestHandler_SearchPosts(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantTotal  int
	}{
		{"results", "/api/blog/search?q=testing", http.StatusOK, 2},
		{"limited", "/api/blog/search?q=testing&limit=1", http.StatusOK, 1},
		{"no match", "/api/blog/search?q=zzz-no-match", http.StatusOK, 0},
		{"missing q", "/api/blog/search", http.StatusBadRequest, 0},
		{"bad limit", "/api/blog/search?q=x&limit=0", http.StatusBadRequest, 0},
		{"limit too high", "/api/blog/search?q=x&limit=51", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(e, tt.target)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp SearchResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.NotNil(t, resp.Posts)
		})
	}
}

func TestHandler_ListTags(t *testing.T) {
	e := newTestEcho(t)

	rec := get(e, "/api/blog/tags")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp TagsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)
}
