package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/fredctl/filter"
	"github.com/s0up4200/fredctl/fred"
)

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Browse tags and find series by tag",
		Long: `Browse FRED tags. Tags are grouped (freq, gen, geo, geot, rls, seas, src, cc)
and every series carries several of them.

Examples:
  fredctl tags list --group geo --order-by popularity --sort desc
  fredctl tags related --tags 'monetary aggregates,weekly'
  fredctl tags series --tags slovenia,food,oecd`,
	}

	cmd.AddCommand(newTagsListCmd(), newTagsRelatedCmd(), newTagsSeriesCmd())
	return cmd
}

func newTagsListCmd() *cobra.Command {
	var f tagFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.params()
			if err != nil {
				return err
			}
			tags, err := client.GetTags(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, tags, filter.TagEnv, tagColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newTagsRelatedCmd() *cobra.Command {
	var f relatedTagFlags
	cmd := &cobra.Command{
		Use:   "related",
		Short: "List tags related to --tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.params()
			if err != nil {
				return err
			}
			tags, err := client.GetRelatedTags(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, tags, filter.TagEnv, tagColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newTagsSeriesCmd() *cobra.Command {
	var f seriesListFlags
	cmd := &cobra.Command{
		Use:   "series",
		Short: "List series carrying all of --tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := f.params()
			if err != nil {
				return err
			}
			series, err := client.GetTagsSeries(cmd.Context(), fred.TagsSeriesParams{
				TagNames:        list.TagNames,
				ExcludeTagNames: list.ExcludeTagNames,
				RealtimePeriod:  list.RealtimePeriod,
				Limit:           list.Limit,
				Offset:          list.Offset,
				OrderBy:         list.OrderBy,
				SortOrder:       list.SortOrder,
			})
			if err != nil {
				return err
			}
			return printList(cmd, series, filter.SeriesEnv, seriesColumns)
		},
	}
	f.realtimeFlags.register(cmd)
	f.pagingFlags.register(cmd)
	cmd.Flags().StringVar(&f.orderBy, "order-by", "", "order series by: series_id, title, units, frequency, popularity, ...")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "series must have all of these tags")
	cmd.Flags().StringSliceVar(&f.excludeTags, "exclude-tags", nil, "skip series with any of these tags")
	_ = cmd.MarkFlagRequired("tags")
	return cmd
}
