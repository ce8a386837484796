package theme

import (
	"context"
	"errors"

	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
)

// CurrentThemeArg is filled from the chat request context, not the message.
const CurrentThemeArg = "current"

func RegisterTools(reg *tools.Registry, svc *Service) error {
	return errors.Join(
		reg.Register(tools.Tool{
			Name:        "theme.toggle",
			Description: "Toggle between light and dark mode",
			Aliases:     []string{"toggle theme", "dark mode", "light mode", "toggle dark mode"},
			Examples:    []string{"toggle dark mode"},
			Params:      []tools.Param{{Name: CurrentThemeArg, Description: "Theme currently shown"}},
			Patterns: []string{
				`(?:toggle|switch|flip|change|invert)(?: the)?(?: (?:dark|light))?(?: (?:mode|theme|colou?rs?))?`,
			},
			Priority: 40,
			Run: func(_ context.Context, args tools.Args) (*tools.Result, error) {
				next := svc.Toggle(args.Get(CurrentThemeArg))
				return &tools.Result{
					Reply:  tools.RenderReply("theme.toggled", map[string]any{"theme": next.Label}),
					Action: &tools.Action{Type: tools.ActionToggleTheme, Theme: next.Name},
					Data:   next,
				}, nil
			},
		}),
		reg.Register(tools.Tool{
			Name:        "theme.set",
			Description: "Switch the site to a named theme",
			Aliases:     []string{"set theme", "use theme"},
			Examples:    []string{"dark mode", "use light theme"},
			Params:      []tools.Param{{Name: "theme", Description: "light or dark", Required: true}},
			Patterns: []string{
				`(?:(?:use|set|enable|turn on|switch to|change to|go)(?: the)? )?(?P<theme>dark|light|night|day)(?: (?:mode|theme))?(?: please)?`,
				`(?:set|change)(?: the)? theme to (?P<theme>.+)`,
			},
			Priority: 40,
			Run: func(_ context.Context, args tools.Args) (*tools.Result, error) {
				return setTheme(svc, args.Get("theme"), args.Get(CurrentThemeArg)), nil
			},
		}),
	)
}

func setTheme(svc *Service, query, current string) *tools.Result {
	t, err := svc.Resolve(query)
	if err != nil {
		return &tools.Result{
			Reply: tools.RenderReply("theme.unknown", map[string]any{"query": query, "themes": svc.Names()}),
		}
	}
	if cur, ok := svc.Get(current); ok && cur.Name == t.Name {
		return &tools.Result{
			Reply:  tools.RenderReply("theme.unchanged", map[string]any{"theme": t.Label}),
			Action: &tools.Action{Type: tools.ActionSetTheme, Theme: t.Name},
			Data:   t,
		}
	}
	return &tools.Result{
		Reply:  tools.RenderReply("theme.set", map[string]any{"theme": t.Label}),
		Action: &tools.Action{Type: tools.ActionSetTheme, Theme: t.Name},
		Data:   t,
	}
}
