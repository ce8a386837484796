package tools

import (
	"fmt"
	"sync"

	"github.com/aymerick/raymond"
)

// Reply templates are Handlebars. Triple-stash keeps replies as plain text;
// the website escapes them when rendering.
var replySources = map[string]string{
	"theme.toggled":      `Switched to {{{theme}}} mode.`,
	"theme.set":          `{{{theme}}} mode it is.`,
	"theme.unchanged":    `Already using {{{theme}}} mode.`,
	"theme.unknown":      `I don't know a theme called "{{{query}}}". Try {{#each themes}}{{#if @index}} or {{/if}}{{{this}}}{{/each}}.`,
	"blog.opened":        `Opening "{{{title}}}".`,
	"blog.not_found":     `No blog post matches "{{{query}}}".`,
	"blog.results":       `Found {{count}} {{#if single}}post{{else}}posts{{/if}} for "{{{query}}}": {{#each titles}}{{#if @index}}; {{/if}}{{{this}}}{{/each}}.`,
	"navigate.opened":    `Going to {{{title}}}.`,
	"navigate.not_found": `I couldn't find a page called "{{{query}}}".`,
	"help":               `Here's what I can do: {{#each tools}}{{#if @index}}, {{/if}}"{{{this}}}"{{/each}}.`,
	"chat.unknown":       `Sorry, I didn't understand "{{{message}}}". Try {{#each examples}}{{#if @index}}, {{/if}}"{{{this}}}"{{/each}}.`,
}

var (
	repliesOnce sync.Once
	replies     map[string]*raymond.Template
)

func loadReplies() {
	replies = make(map[string]*raymond.Template, len(replySources))
	for name, src := range replySources {
		replies[name] = raymond.MustParse(src)
	}
}

// RenderReply renders the named reply template with data.
func RenderReply(name string, data map[string]any) string {
	repliesOnce.Do(loadReplies)

	tpl, ok := replies[name]
	if !ok {
		return fmt.Sprintf("[missing reply %s]", name)
	}
	out, err := tpl.Exec(data)
	if err != nil {
		return fmt.Sprintf("[reply %s failed: %v]", name, err)
	}
	return out
}
