package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ChatWidget is the command box. Without JavaScript it posts to /chat and
// the server redirects back with the reply in the query string.
func ChatWidget(returnPath, reply string, examples []string) g.Node {
	return Div(
		ID("chat"),
		Class("fixed bottom-4 end-4 z-[70] w-80 card bg-base-200 shadow"),
		Div(
			Class("card-body p-4"),
			g.If(reply != "",
				P(
					ID("chat-reply"),
					Class("text-sm"),
					g.Attr("role", "status"),
					g.Text(reply),
				),
			),
			Form(
				Method("post"),
				Action("/chat"),
				Class("flex gap-2"),
				Input(Type("hidden"), Name("path"), Value(returnPath)),
				Input(
					Type("text"),
					Name("message"),
					Class("input input-sm input-bordered grow"),
					Placeholder("Try \"toggle dark mode\""),
					g.Attr("aria-label", "Chat command"),
					g.Attr("autocomplete", "off"),
					Required(),
				),
				Button(Type("submit"), Class("btn btn-primary btn-sm"), g.Text("Send")),
			),
			g.If(len(examples) > 0,
				Ul(
					Class("mt-2 flex flex-wrap gap-1 text-xs text-base-content/60"),
					g.Group(g.Map(examples, func(ex string) g.Node {
						return Li(Class("badge badge-ghost"), g.Text(ex))
					})),
				),
			),
		),
	)
}
