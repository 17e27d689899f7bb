package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredctl/filter"
	"github.com/s0up4200/fredctl/fred"
)

func newSeriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Look up series and download observations",
		Long: `Look up FRED series, search for them and download their observations.

Examples:
  fredctl series get GNPCA UNRATE
  fredctl series observations UNRATE CPIAUCSL --start 2020-01-01 --units pch
  fredctl series search "money stock" --where 'frequency_short == "M"'
  fredctl series updates --filter regional`,
	}

	cmd.AddCommand(
		newSeriesGetCmd(),
		newSeriesCategoriesCmd(),
		newSeriesObservationsCmd(),
		newSeriesReleaseCmd(),
		newSeriesSearchCmd(),
		newSeriesSearchTagsCmd(),
		newSeriesSearchRelatedTagsCmd(),
		newSeriesTagsCmd(),
		newSeriesUpdatesCmd(),
		newSeriesVintageDatesCmd(),
	)
	return cmd
}

func newSeriesGetCmd() *cobra.Command {
	var rt realtimeFlags
	cmd := &cobra.Command{
		Use:   "get <series-id>...",
		Short: "Get one or more series",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := rt.period()
			if err != nil {
				return err
			}
			series, err := fetchAll(cmd.Context(), args, cfg.Concurrency, func(ctx context.Context, id string) (fred.Series, error) {
				return client.GetSeries(ctx, fred.SeriesParams{SeriesID: id, RealtimePeriod: period})
			})
			if err != nil {
				return err
			}
			return printList(cmd, series, filter.SeriesEnv, seriesColumns)
		},
	}
	rt.register(cmd)
	return cmd
}

func newSeriesCategoriesCmd() *cobra.Command {
	var rt realtimeFlags
	cmd := &cobra.Command{
		Use:   "categories <series-id>",
		Short: "List the categories of a series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := rt.period()
			if err != nil {
				return err
			}
			cats, err := client.GetSeriesCategories(cmd.Context(), fred.SeriesParams{SeriesID: args[0], RealtimePeriod: period})
			if err != nil {
				return err
			}
			return printList(cmd, cats, filter.CategoryEnv, categoryColumns)
		},
	}
	rt.register(cmd)
	return cmd
}

// observationFlags back the observations command
type observationFlags struct {
	realtimeFlags
	pagingFlags
	start        string
	end          string
	units        string
	frequency    string
	aggregation  string
	outputType   string
	vintageDates []string
}

func (f *observationFlags) register(cmd *cobra.Command) {
	f.realtimeFlags.register(cmd)
	f.pagingFlags.register(cmd)
	cmd.Flags().StringVar(&f.start, "start", "", "first observation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "last observation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.units, "units", "", "transformation: lin, chg, ch1, pch, pc1, pca, cch, cca or log")
	cmd.Flags().StringVar(&f.frequency, "frequency", "", "aggregate to a lower frequency: d, w, bw, m, q, sa, a, ...")
	cmd.Flags().StringVar(&f.aggregation, "aggregation", "", "aggregation method: avg, sum or eop")
	cmd.Flags().StringVar(&f.outputType, "output-type", "", "output type: 1, 2, 3 or 4")
	cmd.Flags().StringSliceVar(&f.vintageDates, "vintage-dates", nil, "vintage dates to download (YYYY-MM-DD)")
}

// params builds the request for one series
func (f *observationFlags) params(seriesID string) (fred.ObservationsParams, error) {
	p := fred.ObservationsParams{SeriesID: seriesID, Limit: f.limit, Offset: f.offset}
	var err error

	if p.RealtimePeriod, err = f.period(); err != nil {
		return p, err
	}
	if p.SortOrder, err = f.sortOrder(); err != nil {
		return p, err
	}
	if p.ObservationStart, err = parseDate("start", f.start); err != nil {
		return p, err
	}
	if p.ObservationEnd, err = parseDate("end", f.end); err != nil {
		return p, err
	}
	if p.Units, err = parseEnum("units", f.units, fred.ParseObservationUnits); err != nil {
		return p, err
	}
	if p.Frequency, err = parseEnum("frequency", f.frequency, fred.ParseObservationFrequency); err != nil {
		return p, err
	}
	if p.AggregationMethod, err = parseEnum("aggregation", f.aggregation, fred.ParseAggregationMethod); err != nil {
		return p, err
	}
	if p.OutputType, err = parseEnum("output-type", f.outputType, fred.ParseOutputType); err != nil {
		return p, err
	}
	if p.VintageDates, err = parseDates("vintage-dates", f.vintageDates); err != nil {
		return p, err
	}
	return p, nil
}

func newSeriesObservationsCmd() *cobra.Command {
	var f observationFlags
	cmd := &cobra.Command{
		Use:     "observations <series-id>...",
		Aliases: []string{"obs"},
		Short:   "Download the observations of one or more series",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags once before fanning out
			if _, err := f.params(args[0]); err != nil {
				return err
			}

			batches, err := fetchAll(cmd.Context(), args, cfg.Concurrency, func(ctx context.Context, id string) ([]fred.Observation, error) {
				p, err := f.params(id)
				if err != nil {
					return nil, err
				}
				return client.GetSeriesObservations(ctx, p)
			})
			if err != nil {
				return err
			}

			var all []seriesObservation
			for i, batch := range batches {
				logger.Debug().Str("series_id", args[i]).Int("count", len(batch)).Msg("Fetched observations")
				for _, o := range batch {
					all = append(all, seriesObservation{SeriesID: args[i], Observation: o})
				}
			}
			return printList(cmd, all, seriesObservationEnv, observationColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newSeriesReleaseCmd() *cobra.Command {
	var rt realtimeFlags
	cmd := &cobra.Command{
		Use:   "release <series-id>",
		Short: "Get the release of a series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := rt.period()
			if err != nil {
				return err
			}
			r, err := client.GetSeriesRelease(cmd.Context(), fred.SeriesParams{SeriesID: args[0], RealtimePeriod: period})
			if err != nil {
				return err
			}
			return printOne(cmd, r, releaseColumns)
		},
	}
	rt.register(cmd)
	return cmd
}

func newSeriesSearchCmd() *cobra.Command {
	var (
		f          seriesListFlags
		searchType string
	)
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search series by keywords or id pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := f.unordered()
			if err != nil {
				return err
			}
			p := fred.SeriesSearchParams{
				SearchText:      args[0],
				RealtimePeriod:  list.RealtimePeriod,
				Limit:           list.Limit,
				Offset:          list.Offset,
				SortOrder:       list.SortOrder,
				FilterVariable:  list.FilterVariable,
				FilterValue:     list.FilterValue,
				TagNames:        list.TagNames,
				ExcludeTagNames: list.ExcludeTagNames,
			}
			if p.SearchType, err = parseEnum("type", searchType, fred.ParseSeriesSearchType); err != nil {
				return err
			}
			if p.OrderBy, err = parseEnum("order-by", f.orderBy, fred.ParseSeriesSearchOrderBy); err != nil {
				return err
			}

			series, err := client.SearchSeries(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, series, filter.SeriesEnv, seriesColumns)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&searchType, "type", "", "search type: full_text or series_id")
	cmd.Flags().Lookup("order-by").Usage = "order series by: search_rank, series_id, title, popularity, ..."
	return cmd
}

func newSeriesSearchTagsCmd() *cobra.Command {
	var f tagFlags
	cmd := &cobra.Command{
		Use:   "search-tags <series-search-text>",
		Short: "List the tags of series matching a search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.params()
			if err != nil {
				return err
			}
			tags, err := client.SearchSeriesTags(cmd.Context(), fred.SeriesSearchTagsParams{SeriesSearchText: args[0], TagsParams: p})
			if err != nil {
				return err
			}
			return printList(cmd, tags, filter.TagEnv, tagColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newSeriesSearchRelatedTagsCmd() *cobra.Command {
	var f relatedTagFlags
	cmd := &cobra.Command{
		Use:   "search-related-tags <series-search-text>",
		Short: "List tags related to --tags for series matching a search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.params()
			if err != nil {
				return err
			}
			tags, err := client.SearchSeriesRelatedTags(cmd.Context(), fred.SeriesSearchRelatedTagsParams{SeriesSearchText: args[0], RelatedTagsParams: p})
			if err != nil {
				return err
			}
			return printList(cmd, tags, filter.TagEnv, tagColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func newSeriesTagsCmd() *cobra.Command {
	var (
		rt      realtimeFlags
		sort    string
		orderBy string
	)
	cmd := &cobra.Command{
		Use:   "tags <series-id>",
		Short: "List the tags of a series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fred.SeriesTagsParams{SeriesID: args[0]}
			var err error
			if p.RealtimePeriod, err = rt.period(); err != nil {
				return err
			}
			if p.SortOrder, err = parseEnum("sort", sort, fred.ParseSortOrder); err != nil {
				return err
			}
			if p.OrderBy, err = parseEnum("order-by", orderBy, fred.ParseTagOrderBy); err != nil {
				return err
			}

			tags, err := client.GetSeriesTags(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, tags, filter.TagEnv, tagColumns)
		},
	}
	rt.register(cmd)
	cmd.Flags().StringVar(&sort, "sort", "", "sort order: asc or desc")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "order tags by: series_count, popularity, created, name or group_id")
	return cmd
}

// updateWindowLayout is the accepted layout for --start-time and --end-time
const updateWindowLayout = "2006-01-02 15:04"

func newSeriesUpdatesCmd() *cobra.Command {
	var (
		rt        realtimeFlags
		pg        pagingFlags
		filterVal string
		startTime string
		endTime   string
	)
	cmd := &cobra.Command{
		Use:   "updates",
		Short: "List recently updated series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fred.SeriesUpdatesParams{Limit: pg.limit, Offset: pg.offset}
			var err error
			if p.RealtimePeriod, err = rt.period(); err != nil {
				return err
			}
			if p.Filter, err = parseEnum("filter", filterVal, fred.ParseSeriesUpdatesFilter); err != nil {
				return err
			}
			if p.StartTime, err = parseUpdateTime("start-time", startTime); err != nil {
				return err
			}
			if p.EndTime, err = parseUpdateTime("end-time", endTime); err != nil {
				return err
			}

			series, err := client.GetSeriesUpdates(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, series, filter.SeriesEnv, seriesColumns)
		},
	}
	rt.register(cmd)
	cmd.Flags().IntVar(&pg.limit, "limit", 0, "maximum number of results (0 uses the API default)")
	cmd.Flags().IntVar(&pg.offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&filterVal, "filter", "", "which series: all, macro or regional")
	cmd.Flags().StringVar(&startTime, "start-time", "", `start of the update window ("YYYY-MM-DD HH:MM", US Central time)`)
	cmd.Flags().StringVar(&endTime, "end-time", "", `end of the update window ("YYYY-MM-DD HH:MM", US Central time)`)
	return cmd
}

func parseUpdateTime(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(updateWindowLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: expected %q, got %q", flag, "YYYY-MM-DD HH:MM", value)
	}
	return t, nil
}

func newSeriesVintageDatesCmd() *cobra.Command {
	var (
		rt realtimeFlags
		pg pagingFlags
	)
	cmd := &cobra.Command{
		Use:   "vintagedates <series-id>",
		Short: "List the dates a series was revised",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fred.VintageDatesParams{SeriesID: args[0], Limit: pg.limit, Offset: pg.offset}
			var err error
			if p.RealtimePeriod, err = rt.period(); err != nil {
				return err
			}
			if p.SortOrder, err = pg.sortOrder(); err != nil {
				return err
			}

			dates, err := client.GetSeriesVintageDates(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printList(cmd, dates, filter.VintageDateEnv, vintageDateColumns)
		},
	}
	rt.register(cmd)
	pg.register(cmd)
	return cmd
}
