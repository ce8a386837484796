package site

import (
	"hash/fnv"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/fuzzy"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

var pages = []Page{
	{
		ID: "home", Title: "Home", Path: "/", Nav: true,
		Description: "Type-safe UI testing and AI-controllable interfaces",
		Keywords:    []string{"landing", "start", "index", "main"},
	},
	{
		ID: "blog", Title: "Blog", Path: "/blog", Nav: true,
		Description: "Articles on testing, tooling and interface design",
		Keywords:    []string{"posts", "articles", "news", "writing"},
	},
	{
		ID: "showcase", Title: "Showcase", Path: "/showcase", Nav: true,
		Description: "Live demos of AI-controllable components",
		Keywords:    []string{"demo", "demos", "gallery", "live"},
	},
	{
		ID: "docs", Title: "Docs", Path: "/docs", Nav: true,
		Description: "Guides and API reference",
		Keywords:    []string{"documentation", "guide", "guides", "reference", "api"},
	},
	{
		ID: "examples", Title: "Examples", Path: "/examples", Nav: true,
		Description: "Copy-paste examples for common setups",
		Keywords:    []string{"samples", "snippets", "recipes", "code"},
	},
}

var heroVariants = []HeroVariant{
	{
		ID:          "a",
		Headline:    "Type-safe UI testing",
		Subheadline: "Name every component once and let tests, docs and AI agents share it.",
		CTALabel:    "Read the docs",
		CTAPath:     "/docs",
		Weight:      50,
	},
	{
		ID:          "b",
		Headline:    "Interfaces your AI can drive",
		Subheadline: "Say \"toggle dark mode\" and watch the page do it.",
		CTALabel:    "See the showcase",
		CTAPath:     "/showcase",
		Weight:      50,
	},
}

// Service exposes the page catalog and hero experiment.
type Service struct {
	log    *slog.Logger
	forced *HeroVariant
}

func NewService(cfg *config.Config, log *slog.Logger) *Service {
	s := &Service{log: log.With(logger.Scope("site"))}
	if id := strings.TrimSpace(cfg.Site.HeroVariant); id != "" {
		if v, ok := HeroVariantByID(id); ok {
			s.forced = &v
			s.log.Info("hero variant forced", slog.String("variant", v.ID))
		} else {
			s.log.Warn("ignoring unknown hero variant", slog.String("variant", id))
		}
	}
	return s
}

// Pages returns the page catalog in navigation order.
func (s *Service) Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// FindPage resolves an id, path or free-text name to a page.
func (s *Service) FindPage(query string) (Page, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Page{}, false
	}
	for _, p := range pages {
		if p.ID == q || p.Path == q {
			return p, true
		}
	}
	return fuzzy.FindBest(pages, q, func(p Page) []string {
		return append([]string{p.ID, p.Title}, p.Keywords...)
	})
}

// HeroVariants returns the experiment arms.
func (s *Service) HeroVariants() []HeroVariant {
	out := make([]HeroVariant, len(heroVariants))
	copy(out, heroVariants)
	return out
}

// AssignHero picks the hero variant for a visitor. The same visitor id
// always lands in the same bucket. An empty id gets a fresh one.
func (s *Service) AssignHero(visitorID string) HeroAssignment {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		visitorID = uuid.NewString()
	}
	if s.forced != nil {
		return HeroAssignment{VisitorID: visitorID, Variant: *s.forced, Forced: true}
	}
	return HeroAssignment{VisitorID: visitorID, Variant: bucket(visitorID)}
}

// HeroVariantByID looks a variant up case-insensitively.
func HeroVariantByID(id string) (HeroVariant, bool) {
	for _, v := range heroVariants {
		if strings.EqualFold(v.ID, id) {
			return v, true
		}
	}
	return HeroVariant{}, false
}

func bucket(visitorID string) HeroVariant {
	total := 0
	for _, v := range heroVariants {
		total += v.Weight
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(visitorID))
	n := int(h.Sum32() % uint32(total))

	for _, v := range heroVariants {
		if n < v.Weight {
			return v
		}
		n -= v.Weight
	}
	return heroVariants[len(heroVariants)-1]
}
