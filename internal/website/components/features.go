package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Feature struct {
	Title       string
	Description string
	Path        string
}

// Features lists the site sections as cards.
func Features(features []Feature) g.Node {
	return Div(
		Class("py-8 md:py-12 container"),

		Div(
			Class("text-center"),
			P(
				ID("features"),
				Class("mt-4 font-semibold text-2xl sm:text-3xl"),
				g.Text("Explore the site"),
			),
			P(
				Class("inline-block mt-3 max-w-2xl text-base-content/70"),
				g.Text("Click around, or type a command like \"go to docs\" in the chat box."),
			),
		),

		Div(
			Class("gap-6 grid grid-cols-1 md:grid-cols-3 mt-12"),
			g.Group(g.Map(features, func(f Feature) g.Node {
				return A(
					Href(f.Path),
					Class("border border-base-300 hover:border-primary/50 transition-all card"),
					Div(
						Class("card-body"),
						P(Class("font-semibold text-xl"), g.Text(f.Title)),
						P(Class("mt-2 text-sm text-base-content/80"), g.Text(f.Description)),
					),
				)
			})),
		),
	)
}
