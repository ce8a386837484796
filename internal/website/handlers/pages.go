package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/domain/site"
	"github.com/supernalintelligence/interface-docs-sub001/internal/website/components"
)

func (h *Handlers) LandingPage(w http.ResponseWriter, r *http.Request) {
	visitor := h.visitorID(w, r)
	hero := h.site.AssignHero(visitor)
	h.track(r, "hero.view", visitor, map[string]string{"variant": hero.Variant.ID})

	var features []components.Feature
	for _, p := range h.site.Pages() {
		if p.Path == "/" {
			continue
		}
		features = append(features, components.Feature{Title: p.Title, Description: p.Description, Path: p.Path})
	}

	h.render(w, r, http.StatusOK, "", "",
		components.Hero(components.HeroContent{
			Variant:     hero.Variant.ID,
			Headline:    hero.Variant.Headline,
			Subheadline: hero.Variant.Subheadline,
			CTALabel:    hero.Variant.CTALabel,
			CTAPath:     hero.Variant.CTAPath,
		}),
		components.Features(features),
	)
}

// BlogIndex lists posts, filtered by ?tag= or searched with ?q=.
func (h *Handlers) BlogIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	tag, q := query.Get("tag"), query.Get("q")

	var (
		heading = "Blog"
		metas   []blog.PostMeta
	)
	switch {
	case q != "":
		heading = "Posts matching \"" + q + "\""
		metas = h.blog.Search(r.Context(), q, h.searchN)
	case tag != "":
		heading = "Posts tagged " + tag
		metas = h.blog.List(tag)
	default:
		metas = h.blog.List("")
	}

	posts := make([]components.PostSummary, len(metas))
	for i, m := range metas {
		posts[i] = components.PostSummary{
			Title:       m.Title,
			URL:         "/blog/" + m.Slug,
			Description: m.Description,
			Date:        m.Date,
			ReadTime:    m.ReadTime,
			Tags:        m.Tags,
		}
	}

	counts := h.blog.Tags()
	tags := make([]components.TagLink, len(counts))
	for i, t := range counts {
		tags[i] = components.TagLink{Name: t.Name, Count: t.Count, Active: t.Name == tag}
	}

	h.render(w, r, http.StatusOK, "Blog", "", components.BlogIndex(heading, posts, tags))
}

func (h *Handlers) BlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.blog.Get(chi.URLParam(r, "slug"))
	if errors.Is(err, blog.ErrPostNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, post.Title, post.Description, components.BlogPost(components.PostView{
		Title:      post.Title,
		Author:     post.Author,
		Date:       post.Date,
		ReadTime:   post.ReadTime,
		Tags:       post.Tags,
		Paragraphs: blog.Paragraphs(post.Content),
	}))
}

// SectionPage serves a catalog page that has no dedicated handler.
func (h *Handlers) SectionPage(p site.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, p.Title, p.Description, components.SectionPage(p.Title, p.Description))
	}
}
