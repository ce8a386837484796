package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(links []NavLink, year int) g.Node {
	return Div(
		Class("relative"),

		Div(
			Class("relative pt-8 md:pt-12 container"),

			Div(
				Class("gap-6 grid grid-cols-2 md:grid-cols-4"),

				Div(
					Class("col-span-2"),
					Logo(),
					P(
						Class("mt-3 max-sm:text-sm text-base-content/80"),
						g.Text(defaultDescription),
					),
				),

				Div(
					Class("col-span-1"),
					P(Class("font-medium"), g.Text("Site")),
					Div(
						Class("flex flex-col space-y-1.5 mt-5 text-base-content/80"),
						g.Group(g.Map(links, func(l NavLink) g.Node {
							return A(Href(l.Path), g.Text(l.Title))
						})),
					),
				),
			),

			Div(
				Class("flex flex-wrap justify-between items-center gap-3 mt-12 py-6 border-t border-base-300"),
				P(g.Text(fmt.Sprintf("© %d Supernal Intelligence. All rights reserved.", year))),
			),
		),
	)
}
