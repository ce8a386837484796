package blog

import (
	"context"
	"errors"
	"net/url"

	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
)

// RegisterTools adds blog.open and blog.search to the registry.
func RegisterTools(reg *tools.Registry, svc *Service) error {
	return errors.Join(
		reg.Register(tools.Tool{
			Name:        "blog.open",
			Description: "Open the blog post that best matches a title, slug or tag",
			Aliases:     []string{"open post", "read post", "read article"},
			Examples:    []string{"open blog type-safe testing"},
			Params:      []tools.Param{{Name: "query", Description: "Post title, slug or tag", Required: true}},
			Patterns: []string{
				`(?:open|read|show(?: me)?)(?: the)? (?:blog(?: post)?|post|article)(?: (?:about|on|called|titled))? (?P<query>.+)`,
			},
			Priority: 30,
			Run: func(_ context.Context, args tools.Args) (*tools.Result, error) {
				return openPost(svc, args.Get("query")), nil
			},
		}),
		reg.Register(tools.Tool{
			Name:        "blog.search",
			Description: "Search blog posts and list the best matches",
			Aliases:     []string{"search posts", "find posts", "search blog"},
			Examples:    []string{"search blog for boilerplate"},
			Params:      []tools.Param{{Name: "query", Description: "Search terms", Required: true}},
			Patterns: []string{
				`(?:search|find|look for)(?: (?:the|blog|posts?|articles?))*(?: (?:for|about|on))? (?P<query>.+)`,
			},
			Priority: 30,
			Run: func(ctx context.Context, args tools.Args) (*tools.Result, error) {
				return searchPosts(ctx, svc, args.Get("query")), nil
			},
		}),
	)
}

func openPost(svc *Service, query string) *tools.Result {
	post, ok := svc.Best(query)
	if !ok {
		return &tools.Result{
			Reply: tools.RenderReply("blog.not_found", map[string]any{"query": query}),
		}
	}
	return &tools.Result{
		Reply:  tools.RenderReply("blog.opened", map[string]any{"title": post.Title}),
		Action: &tools.Action{Type: tools.ActionNavigate, Path: post.URL()},
		Data:   post.Meta(),
	}
}

const chatSearchLimit = 5

func searchPosts(ctx context.Context, svc *Service, query string) *tools.Result {
	posts := svc.Search(ctx, query, chatSearchLimit)
	if len(posts) == 0 {
		return &tools.Result{
			Reply: tools.RenderReply("blog.not_found", map[string]any{"query": query}),
			Data:  posts,
		}
	}

	titles := make([]string, len(posts))
	for i, p := range posts {
		titles[i] = p.Title
	}
	return &tools.Result{
		Reply: tools.RenderReply("blog.results", map[string]any{
			"count":  len(posts),
			"single": len(posts) == 1,
			"query":  query,
			"titles": titles,
		}),
		Action: &tools.Action{Type: tools.ActionNavigate, Path: "/blog?q=" + url.QueryEscape(query)},
		Data:   posts,
	}
}
