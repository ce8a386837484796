package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/supernalintelligence/interface-docs-sub001/domain/chat"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

const (
	emptyReply   = `Type a command, for example "help".`
	tooLongReply = "That message is too long."
)

// ChatCommand resolves the submitted message and applies its action:
// navigation redirects to the target page, theme actions set the theme
// cookie. The reply travels to the next page in the query string.
func (h *Handlers) ChatCommand(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	back := localPath(r.PostFormValue("path"))
	current := h.currentTheme(r)

	resp, err := h.chat.Resolve(r.Context(), r.PostFormValue("message"), chat.State{
		Theme: current.Name,
		Path:  back,
	})
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		redirectWithReply(w, r, back, emptyReply)
		return
	case errors.Is(err, chat.ErrMessageTooLong):
		redirectWithReply(w, r, back, tooLongReply)
		return
	case err != nil:
		h.log.Error("chat command failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	target := back
	if a := resp.Action; a != nil {
		switch a.Type {
		case tools.ActionNavigate:
			target = localPath(a.Path)
		case tools.ActionSetTheme, tools.ActionToggleTheme:
			if t, ok := h.themes.Get(a.Theme); ok {
				h.setTheme(w, t)
			}
		}
	}

	h.log.Debug("chat command applied",
		slog.String("tool", resp.Tool),
		slog.String("matched", string(resp.Matched)),
		slog.String("target", target))
	redirectWithReply(w, r, target, resp.Reply)
}

// SetTheme handles the theme picker form.
func (h *Handlers) SetTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	back := localPath(r.PostFormValue("path"))
	if t, ok := h.themes.Get(r.PostFormValue("theme")); ok {
		h.setTheme(w, t)
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// localPath keeps redirects on this site. Anything that is not an
// absolute path becomes "/".
func localPath(p string) string {
	if p == "" || p[0] != '/' || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}

func redirectWithReply(w http.ResponseWriter, r *http.Request, target, reply string) {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	if reply != "" {
		q.Set(ReplyParam, reply)
	}
	u.RawQuery = q.Encode()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}
