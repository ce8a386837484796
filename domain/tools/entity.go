package tools

import (
	"context"
	"regexp"
)

// ActionType is the UI action the chat widget performs after a tool runs.
type ActionType string

const (
	ActionNone        ActionType = "none"
	ActionNavigate    ActionType = "navigate"
	ActionSetTheme    ActionType = "set_theme"
	ActionToggleTheme ActionType = "toggle_theme"
)

// Action tells the client what to do with the page.
type Action struct {
	Type  ActionType `json:"type"`
	Path  string     `json:"path,omitempty"`
	Theme string     `json:"theme,omitempty"`
}

// Result is what a tool returns to the caller.
type Result struct {
	Reply  string  `json:"reply"`
	Action *Action `json:"action,omitempty"`
	Data   any     `json:"data,omitempty"`
}

// Param describes one string argument a tool accepts.
type Param struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Args are the string arguments passed to a tool.
type Args map[string]string

// Get returns the named argument or "".
func (a Args) Get(name string) string {
	if a == nil {
		return ""
	}
	return a[name]
}

// RunFunc runs a tool.
type RunFunc func(ctx context.Context, args Args) (*Result, error)

// Tool is a named action the chat widget and MCP clients can invoke.
type Tool struct {
	Name        string
	Description string
	// Aliases are extra names used by fuzzy lookup.
	Aliases []string
	// Examples are sample chat commands shown in help output.
	Examples []string
	Params   []Param
	// Patterns are anchored, case-insensitive regular expressions matched
	// against chat messages. Named groups become arguments.
	Patterns []string
	// Priority orders pattern matching; higher runs first.
	Priority int
	Run      RunFunc

	compiled []*regexp.Regexp
	seq      int
}

// Descriptor is the public view of a tool.
type Descriptor struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Aliases     []string `json:"aliases,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	Params      []Param  `json:"params"`
}

// Describe returns the tool's public descriptor.
func (t *Tool) Describe() Descriptor {
	params := t.Params
	if params == nil {
		params = []Param{}
	}
	return Descriptor{
		Name:        t.Name,
		Description: t.Description,
		Aliases:     t.Aliases,
		Examples:    t.Examples,
		Params:      params,
	}
}

// Invocation is a tool selected for a chat message together with the
// arguments extracted from it.
type Invocation struct {
	Tool    *Tool
	Args    Args
	Pattern string
}

// InvokeRequest is the body of POST /api/tools/:name/invoke.
type InvokeRequest struct {
	Args Args `json:"args"`
}

type ListToolsResponse struct {
	Tools []Descriptor `json:"tools"`
	Total int          `json:"total"`
}
