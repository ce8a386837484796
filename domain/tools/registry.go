package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/fuzzy"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

var (
	ErrInvalidTool     = errors.New("invalid tool")
	ErrDuplicateTool   = errors.New("tool already registered")
	ErrToolNotFound    = errors.New("tool not found")
	ErrMissingArgument = errors.New("missing required argument")
)

// Registry holds every tool the site exposes.
type Registry struct {
	mu     sync.RWMutex
	tools  []*Tool
	byName map[string]*Tool
	seq    int
	log    *slog.Logger
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		byName: make(map[string]*Tool),
		log:    log.With(logger.Scope("tools")),
	}
}

// Register validates t, compiles its patterns and adds it.
func (r *Registry) Register(t Tool) error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTool)
	}
	if t.Run == nil {
		return fmt.Errorf("%w: %s has no handler", ErrInvalidTool, name)
	}
	t.Name = name

	t.compiled = make([]*regexp.Regexp, 0, len(t.Patterns))
	for _, p := range t.Patterns {
		re, err := regexp.Compile(`(?i)^(?:` + p + `)$`)
		if err != nil {
			return fmt.Errorf("%w: %s pattern %q: %v", ErrInvalidTool, name, p, err)
		}
		t.compiled = append(t.compiled, re)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}
	r.seq++
	t.seq = r.seq

	tool := &t
	r.tools = append(r.tools, tool)
	slices.SortStableFunc(r.tools, func(a, b *Tool) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		return a.seq - b.seq
	})
	r.byName[name] = tool

	r.log.Debug("registered tool",
		slog.String("name", name),
		slog.Int("patterns", len(t.compiled)),
		slog.Int("priority", t.Priority))
	return nil
}

// Get returns a tool by exact name.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[name]
	return t, ok
}

// List returns tools in matching order.
func (r *Registry) List() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.tools)
}

// Match returns the first tool whose pattern matches message, with named
// groups extracted as arguments.
func (r *Registry) Match(message string) (*Invocation, bool) {
	msg := NormalizeMessage(message)
	if msg == "" {
		return nil, false
	}

	for _, t := range r.List() {
		for i, re := range t.compiled {
			m := re.FindStringSubmatch(msg)
			if m == nil {
				continue
			}
			args := Args{}
			for gi, group := range re.SubexpNames() {
				if group != "" && m[gi] != "" {
					args[group] = strings.TrimSpace(m[gi])
				}
			}
			return &Invocation{Tool: t, Args: args, Pattern: t.Patterns[i]}, true
		}
	}
	return nil, false
}

// Find resolves a free-text query to a tool by name or alias.
func (r *Registry) Find(query string) (*Tool, bool) {
	q := Keywords(query)
	if q == "" {
		return nil, false
	}
	return fuzzy.FindBest(r.List(), q, func(t *Tool) []string {
		return append([]string{t.Name, strings.ReplaceAll(t.Name, ".", " ")}, t.Aliases...)
	})
}

// Examples collects the first example of each tool in matching order, up
// to limit. A limit below one yields an empty slice.
func (r *Registry) Examples(limit int) []string {
	out := []string{}
	if limit <= 0 {
		return out
	}
	for _, t := range r.List() {
		if len(t.Examples) == 0 {
			continue
		}
		out = append(out, t.Examples[0])
		if len(out) == limit {
			break
		}
	}
	return out
}

// Call checks required arguments and runs the tool.
func (t *Tool) Call(ctx context.Context, args Args) (*Result, error) {
	for _, p := range t.Params {
		if p.Required && strings.TrimSpace(args.Get(p.Name)) == "" {
			return nil, fmt.Errorf("%w: %s requires %q", ErrMissingArgument, t.Name, p.Name)
		}
	}
	res, err := t.Run(ctx, args)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = &Result{}
	}
	if res.Action == nil {
		res.Action = &Action{Type: ActionNone}
	}
	return res, nil
}

// Invoke runs a tool by name.
func (r *Registry) Invoke(ctx context.Context, name string, args Args) (*Result, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return t.Call(ctx, args)
}

// NormalizeMessage trims, collapses whitespace and drops trailing
// punctuation so patterns can stay simple.
func NormalizeMessage(message string) string {
	msg := strings.Join(strings.Fields(message), " ")
	return strings.TrimRight(msg, ".!?,; ")
}

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "to": {}, "me": {}, "please": {}, "my": {},
	"of": {}, "for": {}, "on": {}, "in": {}, "is": {}, "it": {}, "and": {},
	"or": {}, "can": {}, "you": {}, "i": {}, "would": {}, "like": {}, "want": {},
}

// Keywords lowercases query and removes filler words so token matching
// does not hit on "the" or "to".
func Keywords(query string) string {
	var out []string
	for _, tok := range strings.Fields(strings.ToLower(NormalizeMessage(query))) {
		if _, ok := stopwords[tok]; ok {
			continue
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}
