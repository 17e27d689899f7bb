package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/fredctl/filter"
	"github.com/s0up4200/fredctl/fred"
)

func newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "release",
		Aliases: []string{"releases", "rls"},
		Short:   "Browse releases of economic data",
		Long: `Browse FRED releases, their dates, series, sources and tables.

Examples:
  fredctl release list --order-by name
  fredctl release calendar --realtime-start 2024-01-01 --include-empty
  fredctl release tables 53 --element-id 12886`,
	}

	cmd.AddCommand(
		newReleaseListCmd(),
		newReleaseCalendarCmd(),
		newReleaseGetCmd(),
		newReleaseDatesCmd(),
		newReleaseSeriesCmd(),
		newReleaseSourcesCmd(),
		newReleaseTagsCmd(),
		newReleaseRelatedTagsCmd(),
		newReleaseTablesCmd(),
	)
	return cmd
}

func newReleaseListCmd() *cobra.Command {
	var (
		rt      realtimeFlags
		pg      pagingFlags
		orderBy string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p fred.ReleasesParams
			var err error
			if p.RealtimePeriod, err = rt.period(); err != nil {
				return err
			}
			if p.SortOrder, err = pg.sortOrder(); err != nil {
				return err
			}
			if p.OrderBy, err = parseEnum("order-by", orderBy, fred.ParseReleaseOrderBy); err != nil {
				return err
			}
			p.Limit, p.Offset = pg.limit, pg.offset

			releases, err := client.GetReleases(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, releases, filter.ReleaseEnv, releaseColumns)
		},
	}
	rt.register(cmd)
	pg.register(cmd)
	cmd.Flags().StringVar(&orderBy, "order-by", "", "order by: release_id, name, press_release, realtime_start or realtime_end")
	return cmd
}

func newReleaseCalendarCmd() *cobra.Command {
	var (
		rt           realtimeFlags
		pg           pagingFlags
		orderBy      string
		includeEmpty bool
	)
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List release dates across all releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p fred.ReleasesDatesParams
			var err error
			if p.RealtimePeriod, err = rt.period(); err != nil {
				return err
			}
			if p.SortOrder, err = pg.sortOrder(); err != nil {
				return err
			}
			if p.OrderBy, err = parseEnum("order-by", orderBy, fred.ParseReleaseDateOrderBy); err != nil {
				return err
			}
			p.Limit, p.Offset = pg.limit, pg.offset
			p.IncludeReleaseDatesWithNoData = includeEmpty

			dates, err := client.GetReleasesDates(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, dates, filter.ReleaseDateEnv, releaseDateColumns)
		},
	}
	rt.register(cmd)
	pg.register(cmd)
	cmd.Flags().StringVar(&orderBy, "order-by", "", "order by: release_date, release_id or release_name")
	cmd.Flags().BoolVar(&includeEmpty, "include-empty", false, "include release dates with no data yet")
	return cmd
}

// releaseArgs parses the release id argument and real-time flags
func releaseArgs(rt *realtimeFlags, args []string) (fred.ReleaseParams, error) {
	id, err := parseID("release", args[0])
	if err != nil {
		return fred.ReleaseParams{}, err
	}
	period, err := rt.period()
	if err != nil {
		return fred.ReleaseParams{}, err
	}
	return fred.ReleaseParams{ReleaseID: id, RealtimePeriod: period}, nil
}

func newReleaseGetCmd() *cobra.Command {
	var rt realtimeFlags
	cmd := &cobra.Command{
		Use:   "get <release-id>",
		Short: "Get a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := releaseArgs(&rt, args)
			if err != nil {
				return err
			}
			r, err := client.GetRelease(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printOne(cmd, r, releaseColumns)
		},
	}
	rt.register(cmd)
	return cmd
}

func newReleaseDatesCmd() *cobra.Command {
	var (
		rt           realtimeFlags
		pg           pagingFlags
		includeEmpty bool
	)
	cmd := &cobra.Command{
		Use:   "dates <release-id>",
		Short: "List the dates of a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rp, err := releaseArgs(&rt, args)
			if err != nil {
				return err
			}
			sort, err := pg.sortOrder()
			if err != nil {
				return err
			}
			dates, err := client.GetReleaseDates(cmd.Context(), fred.ReleaseDatesParams{
				ReleaseID:                     rp.ReleaseID,
				RealtimePeriod:                rp.RealtimePeriod,
				Limit:                         pg.limit,
				Offset:                        pg.offset,
				SortOrder:                     sort,
				IncludeReleaseDatesWithNoData: includeEmpty,
			})
			if err != nil {
				return err
			}
			return printList(cmd, dates, filter.ReleaseDateEnv, releaseDateColumns)
		},
	}
	rt.register(cmd)
	pg.register(cmd)
	cmd.Flags().BoolVar(&includeEmpty, "include-empty", false, "include release dates with no data yet")
	return cmd
}

func newReleaseSeriesCmd() *cobra.Command {
	var f seriesListFlags
	cmd := &cobra.Command{
		Use:   "series <release-id>",
		Short: "List the series on a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("release", args[0])
			if err != nil {
				return err
			}
			p, err := f.params()
			if err != nil {
				return err
			}
			series, err := client.GetReleaseSeries(cmd.Context(), fred.ReleaseSeriesParams{ReleaseID: id, SeriesListParams: p})
			if err != nil {
				return err
			}
			return printList(cmd, series, filter.SeriesEnv, seriesColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newReleaseSourcesCmd() *cobra.Command {
	var rt realtimeFlags
	cmd := &cobra.Command{
		Use:   "sources <release-id>",
		Short: "List the sources of a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := releaseArgs(&rt, args)
			if err != nil {
				return err
			}
			sources, err := client.GetReleaseSources(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, sources, filter.SourceEnv, sourceColumns)
		},
	}
	rt.register(cmd)
	return cmd
}

func newReleaseTagsCmd() *cobra.Command {
	var f tagFlags
	cmd := &cobra.Command{
		Use:   "tags <release-id>",
		Short: "List the tags of series on a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("release", args[0])
			if err != nil {
				return err
			}
			p, err := f.params()
			if err != nil {
				return err
			}
			tags, err := client.GetReleaseTags(cmd.Context(), fred.ReleaseTagsParams{ReleaseID: id, TagsParams: p})
			if err != nil {
				return err
			}
			return printList(cmd, tags, filter.TagEnv, tagColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newReleaseRelatedTagsCmd() *cobra.Command {
	var f relatedTagFlags
	cmd := &cobra.Command{
		Use:   "related-tags <release-id>",
		Short: "List tags related to --tags on a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("release", args[0])
			if err != nil {
				return err
			}
			p, err := f.params()
			if err != nil {
				return err
			}
			tags, err := client.GetReleaseRelatedTags(cmd.Context(), fred.ReleaseRelatedTagsParams{ReleaseID: id, RelatedTagsParams: p})
			if err != nil {
				return err
			}
			return printList(cmd, tags, filter.TagEnv, tagColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newReleaseTablesCmd() *cobra.Command {
	var (
		elementID       int
		withValues      bool
		observationDate string
	)
	cmd := &cobra.Command{
		Use:   "tables <release-id>",
		Short: "Show the table tree of a release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("release", args[0])
			if err != nil {
				return err
			}
			date, err := parseDate("observation-date", observationDate)
			if err != nil {
				return err
			}
			p := fred.ReleaseTablesParams{
				ReleaseID:                id,
				IncludeObservationValues: withValues,
				ObservationDate:          date,
			}
			if cmd.Flags().Changed("element-id") {
				p.ElementID = &elementID
			}

			elements, err := client.GetReleaseTables(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printTree(cmd, elements)
		},
	}
	cmd.Flags().IntVar(&elementID, "element-id", 0, "start the tree at this element")
	cmd.Flags().BoolVar(&withValues, "values", false, "include observation values")
	cmd.Flags().StringVar(&observationDate, "observation-date", "", "date of the observation values (YYYY-MM-DD)")
	return cmd
}
