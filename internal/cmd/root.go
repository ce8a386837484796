// Package cmd implements sitectl, the operator CLI for the site content
// and the chat command resolver.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
)

type rootOptions struct {
	blogDir string
	output  string
	debug   bool
}

// NewRootCommand builds the command tree. Each call returns a fresh tree so
// tests can run commands independently.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "sitectl",
		Short: "Inspect site content and chat commands",
		Long: `sitectl runs the site's matcher and chat command resolver against a
blog directory, without starting a server.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.blogDir, "blog-dir", "", "blog content directory (default $BLOG_DIR or content/blog)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "output format (table, json)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newMatchCommand(opts),
		newResolveCommand(opts),
		newPostsCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs sitectl with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *rootOptions) validate() error {
	switch o.output {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use table or json)", o.output)
	}
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// load reads config from the environment, applies flags and loads posts.
func (o *rootOptions) load(ctx context.Context, cmd *cobra.Command) (*config.Config, *blog.Service, *slog.Logger, error) {
	if err := o.validate(); err != nil {
		return nil, nil, nil, err
	}
	log := o.logger(cmd)

	cfg, err := config.NewConfig(log)
	if err != nil {
		return nil, nil, nil, err
	}
	if o.blogDir != "" {
		cfg.Blog.Dir = o.blogDir
	}

	posts := blog.NewService(cfg, log)
	if err := posts.Refresh(ctx); err != nil {
		return nil, nil, nil, fmt.Errorf("load posts from %s: %w", cfg.Blog.Dir, err)
	}
	return cfg, posts, log, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
