package theme

import (
	"errors"
	"strings"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/fuzzy"
)

var ErrUnknownTheme = errors.New("unknown theme")

const (
	Light = "light"
	Dark  = "dark"
)

var themes = []Theme{
	{Name: Light, Label: "Light", UIName: "supernal-light", Aliases: []string{"day", "bright", "light mode"}},
	{Name: Dark, Label: "Dark", UIName: "supernal-dark", Aliases: []string{"night", "dim", "dark mode"}},
}

// Service knows the available themes. It holds no per-visitor state; the
// current theme always comes from the caller.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) List() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

func (s *Service) Default() Theme {
	return themes[1]
}

// Get looks a theme up by name or UI name.
func (s *Service) Get(name string) (Theme, bool) {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) || strings.EqualFold(t.UIName, name) {
			return t, true
		}
	}
	return Theme{}, false
}

// Resolve maps free text such as "night mode" onto a theme.
func (s *Service) Resolve(query string) (Theme, error) {
	if t, ok := s.Get(strings.TrimSpace(query)); ok {
		return t, nil
	}
	t, ok := fuzzy.FindBest(themes, query, func(t Theme) []string {
		return append([]string{t.Name, t.Label, t.UIName}, t.Aliases...)
	})
	if !ok {
		return Theme{}, ErrUnknownTheme
	}
	return t, nil
}

// Toggle returns the opposite of current. An unknown or empty current
// theme is treated as the default.
func (s *Service) Toggle(current string) Theme {
	cur, ok := s.Get(current)
	if !ok {
		cur = s.Default()
	}
	if cur.Name == Dark {
		t, _ := s.Get(Light)
		return t
	}
	t, _ := s.Get(Dark)
	return t
}

// Names lists theme names for help text.
func (s *Service) Names() []string {
	out := make([]string, len(themes))
	for i, t := range themes {
		out[i] = t.Name
	}
	return out
}
