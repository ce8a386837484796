package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SectionPage is the placeholder body of a top-level site section.
func SectionPage(title, description string) g.Node {
	return Main(
		Class("py-8 md:py-12 container"),
		H1(Class("font-bold text-3xl"), g.Text(title)),
		P(Class("mt-3 text-base-content/80"), g.Text(description)),
	)
}

func NotFound(path string) g.Node {
	return Main(
		Class("py-16 container text-center"),
		H1(Class("font-bold text-3xl"), g.Text("Page not found")),
		P(Class("mt-3 text-base-content/70"), g.Textf("Nothing lives at %s.", path)),
		P(Class("mt-6"), A(Href("/"), Class("btn btn-primary"), g.Text("Back home"))),
	)
}
