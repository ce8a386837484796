package components

import (
	"net/url"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PostSummary struct {
	Title       string
	URL         string
	Description string
	Date        time.Time
	ReadTime    int
	Tags        []string
}

type TagLink struct {
	Name   string
	Count  int
	Active bool
}

// BlogIndex lists posts. heading describes the current filter.
func BlogIndex(heading string, posts []PostSummary, tags []TagLink) g.Node {
	return Main(
		Class("py-8 md:py-12 container"),
		H1(Class("font-bold text-3xl"), g.Text(heading)),

		g.If(len(tags) > 0,
			Div(
				Class("mt-4 flex flex-wrap gap-2"),
				g.Group(g.Map(tags, func(t TagLink) g.Node {
					class := "badge"
					if t.Active {
						class = "badge badge-primary"
					}
					return A(
						Href("/blog?tag="+url.QueryEscape(t.Name)),
						Class(class),
						g.Textf("%s (%d)", t.Name, t.Count),
					)
				})),
			),
		),

		g.If(len(posts) == 0,
			P(Class("mt-8 text-base-content/70"), g.Text("No posts found.")),
		),

		Ul(
			ID("posts"),
			Class("mt-8 space-y-6"),
			g.Group(g.Map(posts, func(p PostSummary) g.Node {
				return Li(
					Article(
						H2(Class("font-semibold text-xl"), A(Href(p.URL), g.Text(p.Title))),
						P(Class("text-sm text-base-content/60"), postByline(p.Date, p.ReadTime)),
						P(Class("mt-2 text-base-content/80"), g.Text(p.Description)),
					),
				)
			})),
		),
	)
}

type PostView struct {
	Title      string
	Author     string
	Date       time.Time
	ReadTime   int
	Tags       []string
	Paragraphs []string
}

func BlogPost(p PostView) g.Node {
	return Main(
		Class("py-8 md:py-12 container max-w-3xl"),
		Article(
			H1(Class("font-bold text-3xl"), g.Text(p.Title)),
			P(
				Class("mt-2 text-sm text-base-content/60"),
				g.If(p.Author != "", g.Text(p.Author+" · ")),
				postByline(p.Date, p.ReadTime),
			),
			Div(
				Class("mt-2 flex flex-wrap gap-1"),
				g.Group(g.Map(p.Tags, func(tag string) g.Node {
					return A(Href("/blog?tag="+url.QueryEscape(tag)), Class("badge badge-ghost"), g.Text(tag))
				})),
			),
			Div(
				Class("mt-8 space-y-4 leading-relaxed"),
				g.Group(g.Map(p.Paragraphs, func(para string) g.Node {
					return P(g.Text(para))
				})),
			),
		),
		P(Class("mt-12"), A(Href("/blog"), g.Text("← All posts"))),
	)
}

func postByline(date time.Time, readTime int) g.Node {
	if date.IsZero() {
		return g.Textf("%d min read", readTime)
	}
	return g.Textf("%s · %d min read", date.Format("January 2, 2006"), readTime)
}
