package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredctl/fred"
)

const dateLayout = "2006-01-02"

// parseEnum decodes an optional flag value; an empty string is the zero value
func parseEnum[T any](flag, value string, parse func(string) (T, error)) (T, error) {
	var zero T
	if value == "" {
		return zero, nil
	}
	v, err := parse(value)
	if err != nil {
		return zero, fmt.Errorf("--%s: %w", flag, err)
	}
	return v, nil
}

// parseDate decodes an optional YYYY-MM-DD flag value
func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: expected YYYY-MM-DD, got %q", flag, value)
	}
	return t, nil
}

// parseDates decodes a comma separated list of dates
func parseDates(flag string, values []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := parseDate(flag, strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		if !t.IsZero() {
			dates = append(dates, t)
		}
	}
	return dates, nil
}

// parseID parses a positional numeric id
func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, arg)
	}
	return id, nil
}

type realtimeFlags struct {
	start string
	end   string
}

func (f *realtimeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "realtime-start", "", "start of the real-time period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "realtime-end", "", "end of the real-time period (YYYY-MM-DD)")
}

func (f *realtimeFlags) period() (fred.RealtimePeriod, error) {
	start, err := parseDate("realtime-start", f.start)
	if err != nil {
		return fred.RealtimePeriod{}, err
	}
	end, err := parseDate("realtime-end", f.end)
	if err != nil {
		return fred.RealtimePeriod{}, err
	}
	return fred.RealtimePeriod{Start: start, End: end}, nil
}

type pagingFlags struct {
	limit  int
	offset int
	sort   string
}

func (f *pagingFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum number of results (0 uses the API default)")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort order: asc or desc")
}

func (f *pagingFlags) sortOrder() (fred.SortOrder, error) {
	return parseEnum("sort", f.sort, fred.ParseSortOrder)
}

// seriesListFlags back the commands listing series of a category, release or tag set
type seriesListFlags struct {
	realtimeFlags
	pagingFlags
	orderBy        string
	filterVariable string
	filterValue    string
	tags           []string
	excludeTags    []string
}

func (f *seriesListFlags) register(cmd *cobra.Command) {
	f.realtimeFlags.register(cmd)
	f.pagingFlags.register(cmd)
	cmd.Flags().StringVar(&f.orderBy, "order-by", "", "order series by: series_id, title, units, frequency, popularity, ...")
	cmd.Flags().StringVar(&f.filterVariable, "filter-variable", "", "attribute to filter on: frequency, units or seasonal_adjustment")
	cmd.Flags().StringVar(&f.filterValue, "filter-value", "", "value of the filter attribute")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "only series with all of these tags")
	cmd.Flags().StringSliceVar(&f.excludeTags, "exclude-tags", nil, "skip series with any of these tags")
}

func (f *seriesListFlags) params() (fred.SeriesListParams, error) {
	p, err := f.unordered()
	if err != nil {
		return p, err
	}
	p.OrderBy, err = parseEnum("order-by", f.orderBy, fred.ParseSeriesOrderBy)
	return p, err
}

// unordered parses every flag except --order-by, whose values differ
// between series lists and series search
func (f *seriesListFlags) unordered() (fred.SeriesListParams, error) {
	var p fred.SeriesListParams
	var err error

	if p.RealtimePeriod, err = f.period(); err != nil {
		return p, err
	}
	if p.SortOrder, err = f.sortOrder(); err != nil {
		return p, err
	}
	if p.FilterVariable, err = parseEnum("filter-variable", f.filterVariable, fred.ParseSeriesFilterVariable); err != nil {
		return p, err
	}
	p.Limit = f.limit
	p.Offset = f.offset
	p.FilterValue = f.filterValue
	p.TagNames = f.tags
	p.ExcludeTagNames = f.excludeTags
	return p, nil
}

// tagFlags back the tag listing commands
type tagFlags struct {
	realtimeFlags
	pagingFlags
	tags    []string
	group   string
	search  string
	orderBy string
}

func (f *tagFlags) register(cmd *cobra.Command) {
	f.realtimeFlags.register(cmd)
	f.pagingFlags.register(cmd)
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "tag names to match")
	cmd.Flags().StringVar(&f.group, "group", "", "tag group: freq, gen, geo, geot, rls, seas, src or cc")
	cmd.Flags().StringVar(&f.search, "search", "", "words to match in tag names and notes")
	cmd.Flags().StringVar(&f.orderBy, "order-by", "", "order tags by: series_count, popularity, created, name or group_id")
}

func (f *tagFlags) params() (fred.TagsParams, error) {
	var p fred.TagsParams
	var err error

	if p.RealtimePeriod, err = f.period(); err != nil {
		return p, err
	}
	if p.SortOrder, err = f.sortOrder(); err != nil {
		return p, err
	}
	if p.OrderBy, err = parseEnum("order-by", f.orderBy, fred.ParseTagOrderBy); err != nil {
		return p, err
	}
	if p.GroupID, err = parseEnum("group", f.group, fred.ParseTagGroupID); err != nil {
		return p, err
	}
	p.Limit = f.limit
	p.Offset = f.offset
	p.SearchText = f.search
	p.TagNames = f.tags
	return p, nil
}

// relatedTagFlags add the exclusion list to tagFlags; --tags is required
type relatedTagFlags struct {
	tagFlags
	excludeTags []string
}

func (f *relatedTagFlags) register(cmd *cobra.Command) {
	f.tagFlags.register(cmd)
	cmd.Flags().StringSliceVar(&f.excludeTags, "exclude-tags", nil, "tag names to exclude")
	_ = cmd.MarkFlagRequired("tags")
}

func (f *relatedTagFlags) params() (fred.RelatedTagsParams, error) {
	tp, err := f.tagFlags.params()
	if err != nil {
		return fred.RelatedTagsParams{}, err
	}
	return fred.RelatedTagsParams{TagsParams: tp, ExcludeTagNames: f.excludeTags}, nil
}
