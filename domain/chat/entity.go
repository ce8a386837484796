package chat

import (
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
)

// MatchKind records how a message was mapped to a tool.
type MatchKind string

const (
	MatchPattern MatchKind = "pattern"
	MatchFuzzy   MatchKind = "fuzzy"
	MatchNone    MatchKind = "none"
)

// State is what the page tells the resolver about itself.
type State struct {
	Theme string `json:"theme,omitempty"`
	Path  string `json:"path,omitempty"`
}

// CommandRequest is the body of POST /api/chat/commands.
type CommandRequest struct {
	Message string `json:"message"`
	State
}

// Response is the resolver's answer to one chat message.
type Response struct {
	ID      string        `json:"id"`
	Message string        `json:"message"`
	Tool    string        `json:"tool,omitempty"`
	Matched MatchKind     `json:"matched"`
	Reply   string        `json:"reply"`
	Action  *tools.Action `json:"action"`
	Data    any           `json:"data,omitempty"`
}
