package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
)

type matchResult struct {
	Query   string         `json:"query"`
	Best    *blog.PostMeta `json:"best"`
	Results []scoredPost   `json:"results"`
}

type scoredPost struct {
	Score int           `json:"score"`
	Post  blog.PostMeta `json:"post"`
}

func newMatchCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "match <query>",
		Short: "Match a query against blog posts",
		Long: `Runs the fuzzy matcher over the blog. The best match is the first post
whose title, slug or tags equal, contain, or share a word with the query.
The ranked list scores every post and drops those scoring zero.`,
		Example: `  sitectl match type-safe
  sitectl match "less boilerplate" --limit 3 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, posts, _, err := opts.load(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			res := matchResult{Query: query, Results: []scoredPost{}}
			if p, ok := posts.Best(query); ok {
				meta := p.Meta()
				res.Best = &meta
			}
			for _, m := range posts.Rank(query, limit) {
				res.Results = append(res.Results, scoredPost{Score: m.Score, Post: m.Item})
			}

			out := cmd.OutOrStdout()
			if opts.output == "json" {
				return writeJSON(out, res)
			}

			if res.Best == nil {
				fmt.Fprintf(out, "No match for %q.\n", query)
				return nil
			}
			fmt.Fprintf(out, "Best match: %s (/blog/%s)\n\n", res.Best.Title, res.Best.Slug)

			table := tablewriter.NewWriter(out)
			table.Header("#", "Score", "Slug", "Title")
			for i, r := range res.Results {
				if err := table.Append(strconv.Itoa(i+1), strconv.Itoa(r.Score), r.Post.Slug, r.Post.Title); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum ranked results (0 for all)")
	return cmd
}
