package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NavLink is one top bar entry.
type NavLink struct {
	Title  string
	Path   string
	Active bool
}

func Topbar(links []NavLink, themes []ThemeOption, returnPath string) g.Node {
	return Div(
		Class("sticky top-0 z-[60] flex justify-center bg-base-100/80 backdrop-blur"),

		Div(
			Class("flex justify-between items-center px-3 sm:px-6 py-3 w-full container"),

			A(Href("/"), Logo()),

			Ul(
				ID("site-nav"),
				Class("inline-flex gap-2 px-0 menu menu-horizontal"),
				g.Group(g.Map(links, func(l NavLink) g.Node {
					return Li(
						A(
							Href(l.Path),
							g.If(l.Active, Class("active")),
							g.If(l.Active, g.Attr("aria-current", "page")),
							g.Text(l.Title),
						),
					)
				})),
			),

			ThemePicker(themes, returnPath),
		),
	)
}
