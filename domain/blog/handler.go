package blog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/apperror"
)

// Handler handles HTTP requests for the blog
type Handler struct {
	svc         *Service
	searchLimit int
}

func NewHandler(svc *Service, cfg *config.Config) *Handler {
	return &Handler{svc: svc, searchLimit: cfg.Blog.SearchLimit}
}

// ListPosts handles GET /api/blog/posts
// @Summary      List blog posts
// @Description  Returns post metadata newest first, optionally filtered by tag
// @Tags         blog
// @Produce      json
// @Param        tag query string false "Only posts with this tag"
// @Success      200 {object} PostList
// @Router       /api/blog/posts [get]
func (h *Handler) ListPosts(c echo.Context) error {
	posts := h.svc.List(c.QueryParam("tag"))
	return c.JSON(http.StatusOK, PostList{Posts: posts, Total: len(posts)})
}

// GetPost handles GET /api/blog/posts/:slug
// @Summary      Get blog post
// @Tags         blog
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} Post
// @Failure      404 {object} apperror.Error "Post not found"
// @Router       /api/blog/posts/{slug} [get]
func (h *Handler) GetPost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := h.svc.Get(slug)
	if errors.Is(err, ErrPostNotFound) {
		return apperror.ErrPostNotFound.WithMessage("post '" + slug + "' not found")
	}
	if err != nil {
		return apperror.NewInternal("failed to get post", err)
	}
	return c.JSON(http.StatusOK, post)
}

// SearchPosts handles GET /api/blog/search
// @Summary      Search blog posts
// @Description  Ranks posts by fuzzy relevance of title, slug, description and tags
// @Tags         blog
// @Produce      json
// @Param        q query string true "Query"
// @Param        limit query int false "Max results (1-50)"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} apperror.Error "Invalid parameters"
// @Router       /api/blog/search [get]
func (h *Handler) SearchPosts(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return apperror.NewBadRequest("q is required")
	}

	limit := h.searchLimit
	if s := c.QueryParam("limit"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 1 || parsed > 50 {
			return apperror.NewBadRequest("limit must be between 1 and 50")
		}
		limit = parsed
	}

	posts := h.svc.Search(c.Request().Context(), q, limit)
	return c.JSON(http.StatusOK, SearchResponse{Query: q, Posts: posts, Total: len(posts)})
}

// ListTags handles GET /api/blog/tags
func (h *Handler) ListTags(c echo.Context) error {
	tags := h.svc.Tags()
	return c.JSON(http.StatusOK, TagsResponse{Tags: tags, Total: len(tags)})
}
