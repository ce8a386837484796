package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/supernalintelligence/interface-docs-sub001/domain/theme"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/tracing"
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message too long")
)

const (
	// PathArg carries the page the message was sent from.
	PathArg = "path"

	unknownExampleLimit = 3
)

// Service maps chat messages onto registered tools and runs them.
type Service struct {
	reg    *tools.Registry
	log    *slog.Logger
	maxLen int
}

func NewService(reg *tools.Registry, cfg *config.Config, log *slog.Logger) *Service {
	return &Service{
		reg:    reg,
		log:    log.With(logger.Scope("chat")),
		maxLen: cfg.Chat.MaxMessageLength,
	}
}

// Resolve finds the tool for message and runs it. Regex patterns are tried
// first, then a fuzzy lookup by tool name and alias. When neither hits the
// response carries a help reply and no tool.
func (s *Service) Resolve(ctx context.Context, message string, state State) (*Response, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	n := utf8.RuneCountInString(message)
	if n > s.maxLen {
		return nil, fmt.Errorf("%w: %d characters, limit is %d", ErrMessageTooLong, n, s.maxLen)
	}

	ctx, span := tracing.Start(ctx, "chat.resolve",
		attribute.Int("chat.message_length", n))
	defer span.End()

	msg := tools.NormalizeMessage(message)
	resp := &Response{ID: uuid.NewString(), Message: msg, Matched: MatchNone}

	var (
		tool *tools.Tool
		args tools.Args
	)
	if inv, ok := s.reg.Match(msg); ok {
		tool, args = inv.Tool, inv.Args
		resp.Matched = MatchPattern
	} else if t, ok := s.reg.Find(msg); ok {
		tool, args = t, fuzzyArgs(t, msg)
		resp.Matched = MatchFuzzy
	}

	if tool == nil {
		resp.Reply = tools.RenderReply("chat.unknown", map[string]any{
			"message":  msg,
			"examples": s.reg.Examples(unknownExampleLimit),
		})
		resp.Action = &tools.Action{Type: tools.ActionNone}
		s.record(span, resp)
		return resp, nil
	}

	if state.Theme != "" && args.Get(theme.CurrentThemeArg) == "" {
		args[theme.CurrentThemeArg] = state.Theme
	}
	if state.Path != "" && args.Get(PathArg) == "" {
		args[PathArg] = state.Path
	}

	res, err := tool.Call(ctx, args)
	if err != nil {
		tracing.RecordError(span, err)
		s.log.Error("chat tool failed",
			slog.String("tool", tool.Name),
			slog.String("matched", string(resp.Matched)),
			logger.Error(err))
		return nil, fmt.Errorf("run %s: %w", tool.Name, err)
	}

	resp.Tool = tool.Name
	resp.Reply = res.Reply
	resp.Action = res.Action
	resp.Data = res.Data
	s.record(span, resp)
	return resp, nil
}

func (s *Service) record(span trace.Span, resp *Response) {
	tool := resp.Tool
	if tool == "" {
		tool = "none"
	}
	span.SetAttributes(
		attribute.String("chat.tool", tool),
		attribute.String("chat.matched", string(resp.Matched)),
	)
	CommandsTotal.WithLabelValues(tool, string(resp.Matched)).Inc()

	s.log.Debug("chat command resolved",
		slog.String("id", resp.ID),
		slog.String("tool", tool),
		slog.String("matched", string(resp.Matched)))
}

// fuzzyArgs fills every required parameter with the message keywords,
// since a fuzzy hit has no named groups to extract from.
func fuzzyArgs(t *tools.Tool, msg string) tools.Args {
	q := tools.Keywords(msg)
	if q == "" {
		q = msg
	}
	args := tools.Args{}
	for _, p := range t.Params {
		if p.Required {
			args[p.Name] = q
		}
	}
	return args
}
