package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Span(
			Class("font-bold text-xl"),
			g.Text("Supernal"),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

// Icon renders an iconify placeholder. iconClass is "set--name [size classes]".
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if parts := strings.Fields(iconClass); len(parts) > 1 {
		classes = fmt.Sprintf("%s %s", classes, strings.Join(parts[1:], " "))
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

// ThemeOption is one entry of the theme picker.
type ThemeOption struct {
	Name   string
	Label  string
	Active bool
}

// ThemePicker posts the chosen theme back to the server, which stores it in
// a cookie and redirects to returnPath.
func ThemePicker(options []ThemeOption, returnPath string) g.Node {
	return Form(
		Method("post"),
		Action("/theme"),
		Class("inline-flex items-center gap-1"),
		Input(Type("hidden"), Name("path"), Value(returnPath)),
		Icon("lucide--palette", "Theme"),
		g.Group(g.Map(options, func(o ThemeOption) g.Node {
			return Button(
				Type("submit"),
				Name("theme"),
				Value(o.Name),
				Class("btn btn-ghost btn-sm theme-option"),
				g.If(o.Active, g.Attr("aria-pressed", "true")),
				g.Text(o.Label),
			)
		})),
	)
}
