package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/domain/chat"
	"github.com/supernalintelligence/interface-docs-sub001/domain/site"
	"github.com/supernalintelligence/interface-docs-sub001/domain/theme"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
)

func newResolveCommand(opts *rootOptions) *cobra.Command {
	var state chat.State

	cmd := &cobra.Command{
		Use:   "resolve <message>",
		Short: "Run a chat command through the resolver",
		Long: `Resolves a chat message the way the site's chat box does and prints the
tool that ran, how it matched, its reply and the page action.`,
		Example: `  sitectl resolve toggle dark mode --theme dark
  sitectl resolve "go to the docs"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, posts, log, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			reg := tools.NewRegistry(log)
			if err := errors.Join(
				blog.RegisterTools(reg, posts),
				theme.RegisterTools(reg, theme.NewService()),
				site.RegisterTools(reg, site.NewService(cfg, log)),
			); err != nil {
				return err
			}

			resp, err := chat.NewService(reg, cfg, log).Resolve(cmd.Context(), strings.Join(args, " "), state)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.output == "json" {
				return writeJSON(out, resp)
			}

			tool := resp.Tool
			if tool == "" {
				tool = "-"
			}
			action := "none"
			if a := resp.Action; a != nil {
				action = string(a.Type)
				if a.Path != "" {
					action += " " + a.Path
				}
				if a.Theme != "" {
					action += " " + a.Theme
				}
			}

			table := tablewriter.NewWriter(out)
			table.Header("Field", "Value")
			for _, row := range [][]string{
				{"Tool", tool},
				{"Matched", string(resp.Matched)},
				{"Action", action},
				{"Reply", resp.Reply},
			} {
				if err := table.Append(row[0], row[1]); err != nil {
					return err
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state.Theme, "theme", "", "current theme of the page (light, dark)")
	cmd.Flags().StringVar(&state.Path, "path", "", "page the message is sent from")
	return cmd
}
