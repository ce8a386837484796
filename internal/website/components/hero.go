package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HeroContent is the copy of one hero variant.
type HeroContent struct {
	Variant     string
	Headline    string
	Subheadline string
	CTALabel    string
	CTAPath     string
}

func Hero(h HeroContent) g.Node {
	return g.Group([]g.Node{
		Div(
			Class("relative z-2 overflow-hidden"),
			ID("hero"),
			g.Attr("data-variant", h.Variant),

			Div(
				Class("container flex items-center justify-center pt-20 md:pt-28 pb-20 md:pb-28"),
				Div(
					Class("text-center md:w-120 xl:w-160"),

					H1(
						Class("mt-3 text-2xl leading-tight font-extrabold md:text-4xl xl:text-5xl"),
						g.Text(h.Headline),
					),

					P(
						Class("text-base-content/80 mt-5 xl:text-lg"),
						g.Text(h.Subheadline),
					),

					Div(
						Class("mt-8 inline-flex justify-center gap-3"),
						A(
							Href(h.CTAPath),
							Class("btn btn-primary"),
							g.Attr("data-hero-cta", h.Variant),
							g.Text(h.CTALabel),
						),
						A(
							Href("#features"),
							Class("btn btn-ghost"),
							Icon("lucide--arrow-down size-4", ""),
							g.Text("Learn More"),
						),
					),
				),
			),
		),

		Div(Class("from-secondary via-accent to-primary mb-8 h-1 w-full bg-linear-to-r")),
	})
}
