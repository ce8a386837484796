package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
)

func newPostsCommand(opts *rootOptions) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List published blog posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, posts, _, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			list := posts.List(tag)
			out := cmd.OutOrStdout()
			if opts.output == "json" {
				return writeJSON(out, blog.PostList{Posts: list, Total: len(list)})
			}

			table := tablewriter.NewWriter(out)
			table.Header("Date", "Slug", "Title", "Tags", "Min")
			for _, p := range list {
				date := ""
				if !p.Date.IsZero() {
					date = p.Date.Format("2006-01-02")
				}
				if err := table.Append(date, p.Slug, p.Title, strings.Join(p.Tags, ", "), strconv.Itoa(p.ReadTime)); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only posts with this tag")
	return cmd
}
