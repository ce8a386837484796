package site

import (
	"context"
	"errors"

	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
)

const helpExampleLimit = 8

// RegisterTools adds navigate and help to the registry.
func RegisterTools(reg *tools.Registry, svc *Service) error {
	return errors.Join(
		reg.Register(tools.Tool{
			Name:        "help",
			Description: "List the commands the chat understands",
			Aliases:     []string{"what can you do", "commands", "usage"},
			Examples:    []string{"help"},
			Patterns: []string{
				`help(?: me)?`,
				`what can (?:you|i) do`,
				`(?:show|list)(?: me)?(?: the)?(?: available)? commands`,
				`commands`,
			},
			Priority: 50,
			Run: func(_ context.Context, _ tools.Args) (*tools.Result, error) {
				examples := reg.Examples(helpExampleLimit)
				return &tools.Result{
					Reply: tools.RenderReply("help", map[string]any{"tools": examples}),
					Data:  examples,
				}, nil
			},
		}),
		reg.Register(tools.Tool{
			Name:        "navigate",
			Description: "Go to a page of the site",
			Aliases:     append([]string{"go to", "open page", "take me to"}, pageIDs()...),
			Examples:    []string{"go to blog", "open showcase"},
			Params:      []tools.Param{{Name: "page", Description: "Page name or path", Required: true}},
			Patterns: []string{
				`(?:go to|goto|navigate to|take me to|open|show(?: me)?|visit)(?: the)? (?P<page>.+?)(?: page)?`,
			},
			Priority: 10,
			Run: func(_ context.Context, args tools.Args) (*tools.Result, error) {
				query := args.Get("page")
				p, ok := svc.FindPage(query)
				if !ok {
					p, ok = svc.FindPage(tools.Keywords(query))
				}
				if !ok {
					return &tools.Result{
						Reply: tools.RenderReply("navigate.not_found", map[string]any{"query": query}),
					}, nil
				}
				return &tools.Result{
					Reply:  tools.RenderReply("navigate.opened", map[string]any{"title": p.Title}),
					Action: &tools.Action{Type: tools.ActionNavigate, Path: p.Path},
					Data:   p,
				}, nil
			},
		}),
	)
}

func pageIDs() []string {
	ids := make([]string, len(pages))
	for i, p := range pages {
		ids[i] = p.ID
	}
	return ids
}
