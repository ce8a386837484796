package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	// Theme is the data-theme value, the UI name of the visitor's theme.
	Theme string
}

const (
	defaultTitle       = "Supernal Interface - AI-controllable UI"
	defaultDescription = "Type-safe UI testing and interfaces that AI agents can drive by name."
)

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Theme == "" {
		config.Theme = "supernal-dark"
	}

	if config.Title == "" {
		config.Title = defaultTitle
	}

	if config.Description == "" {
		config.Description = defaultDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", config.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/chat.js")),
			),
		),
	})
}
