package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredctl/filter"
	"github.com/s0up4200/fredctl/fred"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories", "cat"},
		Short:   "Browse the category tree",
		Long: `Browse FRED categories. The root category has id 0.

Examples:
  fredctl category children 0
  fredctl category series 125 --order-by popularity --sort desc
  fredctl category related-tags 125 --tags services,quarterly`,
	}

	cmd.AddCommand(
		newCategoryGetCmd(),
		newCategoryListCmd("children", "List the child categories of a category", fred.API.GetCategoryChildren),
		newCategoryListCmd("related", "List categories related to a category", fred.API.GetCategoryRelated),
		newCategorySeriesCmd(),
		newCategoryTagsCmd(),
		newCategoryRelatedTagsCmd(),
	)
	return cmd
}

func newCategoryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <category-id>",
		Short: "Get a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			c, err := client.GetCategory(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printOne(cmd, c, categoryColumns)
		},
	}
}

func newCategoryListCmd(use, short string, list func(fred.API, context.Context, fred.CategoryParams) ([]fred.Category, error)) *cobra.Command {
	var rt realtimeFlags
	cmd := &cobra.Command{
		Use:   use + " <category-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			period, err := rt.period()
			if err != nil {
				return err
			}
			cats, err := list(client, cmd.Context(), fred.CategoryParams{ID: id, RealtimePeriod: period})
			if err != nil {
				return err
			}
			return printList(cmd, cats, filter.CategoryEnv, categoryColumns)
		},
	}
	rt.register(cmd)
	return cmd
}

func newCategorySeriesCmd() *cobra.Command {
	var f seriesListFlags
	cmd := &cobra.Command{
		Use:   "series <category-id>",
		Short: "List the series in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			p, err := f.params()
			if err != nil {
				return err
			}
			series, err := client.GetCategorySeries(cmd.Context(), fred.CategorySeriesParams{CategoryID: id, SeriesListParams: p})
			if err != nil {
				return err
			}
			return printList(cmd, series, filter.SeriesEnv, seriesColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newCategoryTagsCmd() *cobra.Command {
	var f tagFlags
	cmd := &cobra.Command{
		Use:   "tags <category-id>",
		Short: "List the tags of series in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			p, err := f.params()
			if err != nil {
				return err
			}
			tags, err := client.GetCategoryTags(cmd.Context(), fred.CategoryTagsParams{CategoryID: id, TagsParams: p})
			if err != nil {
				return err
			}
			return printList(cmd, tags, filter.TagEnv, tagColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newCategoryRelatedTagsCmd() *cobra.Command {
	var f relatedTagFlags
	cmd := &cobra.Command{
		Use:   "related-tags <category-id>",
		Short: "List tags related to --tags within a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			p, err := f.params()
			if err != nil {
				return err
			}
			tags, err := client.GetCategoryRelatedTags(cmd.Context(), fred.CategoryRelatedTagsParams{CategoryID: id, RelatedTagsParams: p})
			if err != nil {
				return err
			}
			return printList(cmd, tags, filter.TagEnv, tagColumns)
		},
	}
	f.register(cmd)
	return cmd
}
