// Package handlers serves the HTML pages of the site and executes chat
// commands submitted from the page.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	g "maragu.dev/gomponents"

	"github.com/supernalintelligence/interface-docs-sub001/domain/analytics"
	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/domain/chat"
	"github.com/supernalintelligence/interface-docs-sub001/domain/site"
	"github.com/supernalintelligence/interface-docs-sub001/domain/theme"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/internal/website/components"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

const (
	// ReplyParam carries the chat reply across the post-redirect-get.
	ReplyParam = "reply"

	chatExampleLimit = 4
	cookieMaxAge     = 365 * 24 * 60 * 60
)

// Deps are the services the pages read from.
type Deps struct {
	Config   *config.Config
	Log      *slog.Logger
	Blog     *blog.Service
	Themes   *theme.Service
	Site     *site.Service
	Chat     *chat.Service
	Events   *analytics.Service
	Registry *tools.Registry
}

type Handlers struct {
	cfg     config.WebsiteConfig
	log     *slog.Logger
	blog    *blog.Service
	themes  *theme.Service
	site    *site.Service
	chat    *chat.Service
	events  *analytics.Service
	reg     *tools.Registry
	searchN int
	now     func() time.Time
}

func New(d Deps) *Handlers {
	return &Handlers{
		cfg:     d.Config.Website,
		log:     d.Log.With(logger.Scope("website")),
		blog:    d.Blog,
		themes:  d.Themes,
		site:    d.Site,
		chat:    d.Chat,
		events:  d.Events,
		reg:     d.Registry,
		searchN: d.Config.Blog.SearchLimit,
		now:     time.Now,
	}
}

// currentTheme reads the theme cookie, falling back to the default theme.
func (h *Handlers) currentTheme(r *http.Request) theme.Theme {
	if c, err := r.Cookie(h.cfg.ThemeCookie); err == nil {
		if t, ok := h.themes.Get(c.Value); ok {
			return t
		}
	}
	return h.themes.Default()
}

func (h *Handlers) setTheme(w http.ResponseWriter, t theme.Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.ThemeCookie,
		Value:    t.Name,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// visitorID returns the visitor cookie, issuing a new id when absent.
func (h *Handlers) visitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(h.cfg.VisitorCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// track records a page event. Failures are logged; pages still render.
func (h *Handlers) track(r *http.Request, name, visitor string, props map[string]string) {
	if h.events == nil {
		return
	}
	_, err := h.events.Track(r.Context(), analytics.Event{
		Name:       name,
		Path:       r.URL.Path,
		VisitorID:  visitor,
		Properties: props,
	})
	if err != nil {
		h.log.Warn("page event rejected", slog.String("event", name), logger.Error(err))
	}
}

func (h *Handlers) navLinks(current string) []components.NavLink {
	var out []components.NavLink
	for _, p := range h.site.Pages() {
		if !p.Nav {
			continue
		}
		out = append(out, components.NavLink{
			Title:  p.Title,
			Path:   p.Path,
			Active: isActive(p.Path, current),
		})
	}
	return out
}

func isActive(pagePath, current string) bool {
	if pagePath == "/" {
		return current == "/"
	}
	return current == pagePath || strings.HasPrefix(current, pagePath+"/")
}

func (h *Handlers) themeOptions(current theme.Theme) []components.ThemeOption {
	list := h.themes.List()
	out := make([]components.ThemeOption, len(list))
	for i, t := range list {
		out[i] = components.ThemeOption{Name: t.Name, Label: t.Label, Active: t.Name == current.Name}
	}
	return out
}

// render wraps body in the layout with top bar, chat widget and footer.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, title, description string, body ...g.Node) {
	current := h.currentTheme(r)
	path := r.URL.Path
	links := h.navLinks(path)

	page := components.Layout(
		components.PageConfig{
			Title:       title,
			Description: description,
			Theme:       current.UIName,
		},
		components.Topbar(links, h.themeOptions(current), path),
		g.Group(body),
		components.ChatWidget(path, r.URL.Query().Get(ReplyParam), h.reg.Examples(chatExampleLimit)),
		components.PageFooter(links, h.now().Year()),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.log.Error("render failed", slog.String("path", path), logger.Error(err))
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "Not found", "", components.NotFound(r.URL.Path))
}
