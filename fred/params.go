package fred

import "time"

// RealtimePeriod restricts results to what was known during a period. Zero
// times are omitted and the server applies its own default (usually today).
type RealtimePeriod struct {
	Start time.Time
	End   time.Time
}

// CategoryParams selects a category for category/children and category/related.
type CategoryParams struct {
	ID int
	RealtimePeriod
}

func (p CategoryParams) query() (*Query, error) {
	b := newBuilder()
	b.categoryID(p.ID)
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// SeriesListParams are the paging, ordering and filtering options shared by
// the endpoints returning series of a category or release.
type SeriesListParams struct {
	RealtimePeriod
	Limit           int
	Offset          int
	OrderBy         SeriesOrderBy
	SortOrder       SortOrder
	FilterVariable  SeriesFilterVariable
	FilterValue     string
	TagNames        []string
	ExcludeTagNames []string
}

func (p SeriesListParams) apply(b *builder) {
	b.realtime(p.RealtimePeriod)
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("order_by", seriesOrderByTable, int(p.OrderBy))
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.seriesFilter(p.FilterVariable, p.FilterValue)
	b.tags(p.TagNames, p.ExcludeTagNames, false)
}

// CategorySeriesParams selects series in a category.
type CategorySeriesParams struct {
	CategoryID int
	SeriesListParams
}

func (p CategorySeriesParams) query() (*Query, error) {
	b := newBuilder()
	b.categoryID(p.CategoryID)
	p.SeriesListParams.apply(b)
	return b.build()
}

// TagsParams are the options shared by tag listing endpoints. SearchText is
// sent as search_text, or tag_search_text on the series search endpoints.
type TagsParams struct {
	RealtimePeriod
	TagNames   []string
	GroupID    TagGroupID
	SearchText string
	Limit      int
	Offset     int
	OrderBy    TagOrderBy
	SortOrder  SortOrder
}

func (p TagsParams) apply(b *builder, searchKey string) {
	b.realtime(p.RealtimePeriod)
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("order_by", tagOrderByTable, int(p.OrderBy))
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.optionalString(searchKey, p.SearchText)
	b.optionalEnum("tag_group_id", tagGroupIDTable, int(p.GroupID))
	b.tags(p.TagNames, nil, false)
}

func (p TagsParams) query() (*Query, error) {
	b := newBuilder()
	p.apply(b, "search_text")
	return b.build()
}

// RelatedTagsParams finds tags related to TagNames, which is required.
type RelatedTagsParams struct {
	TagsParams
	ExcludeTagNames []string
}

func (p RelatedTagsParams) apply(b *builder, searchKey string) {
	b.tags(p.TagNames, p.ExcludeTagNames, true)
	b.realtime(p.RealtimePeriod)
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("order_by", tagOrderByTable, int(p.OrderBy))
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.optionalString(searchKey, p.SearchText)
	b.optionalEnum("tag_group_id", tagGroupIDTable, int(p.GroupID))
}

func (p RelatedTagsParams) query() (*Query, error) {
	b := newBuilder()
	p.apply(b, "search_text")
	return b.build()
}

// CategoryTagsParams lists tags for series in a category.
type CategoryTagsParams struct {
	CategoryID int
	TagsParams
}

func (p CategoryTagsParams) query() (*Query, error) {
	b := newBuilder()
	b.categoryID(p.CategoryID)
	p.TagsParams.apply(b, "search_text")
	return b.build()
}

// CategoryRelatedTagsParams lists tags related to TagNames within a category.
type CategoryRelatedTagsParams struct {
	CategoryID int
	RelatedTagsParams
}

func (p CategoryRelatedTagsParams) query() (*Query, error) {
	b := newBuilder()
	b.categoryID(p.CategoryID)
	p.RelatedTagsParams.apply(b, "search_text")
	return b.build()
}

// ReleasesParams lists all releases.
type ReleasesParams struct {
	RealtimePeriod
	Limit     int
	Offset    int
	OrderBy   ReleaseOrderBy
	SortOrder SortOrder
}

func (p ReleasesParams) query() (*Query, error) {
	b := newBuilder()
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("order_by", releaseOrderByTable, int(p.OrderBy))
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// ReleasesDatesParams lists release dates across all releases.
type ReleasesDatesParams struct {
	RealtimePeriod
	Limit                         int
	Offset                        int
	OrderBy                       ReleaseDateOrderBy
	SortOrder                     SortOrder
	IncludeReleaseDatesWithNoData bool
}

func (p ReleasesDatesParams) query() (*Query, error) {
	b := newBuilder()
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("order_by", releaseDateOrderByTable, int(p.OrderBy))
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.setBool("include_release_dates_with_no_data", p.IncludeReleaseDatesWithNoData)
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// ReleaseParams selects a release for release and release/sources.
type ReleaseParams struct {
	ReleaseID int
	RealtimePeriod
}

func (p ReleaseParams) query() (*Query, error) {
	b := newBuilder()
	b.positiveID("release_id", p.ReleaseID)
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// ReleaseDatesParams lists the dates of one release. Limit defaults to 10000.
type ReleaseDatesParams struct {
	ReleaseID int
	RealtimePeriod
	Limit                         int
	Offset                        int
	SortOrder                     SortOrder
	IncludeReleaseDatesWithNoData bool
}

func (p ReleaseDatesParams) query() (*Query, error) {
	b := newBuilder()
	b.positiveID("release_id", p.ReleaseID)
	b.paging(p.Limit, p.Offset, defaultDatesLimit)
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.setBool("include_release_dates_with_no_data", p.IncludeReleaseDatesWithNoData)
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// ReleaseSeriesParams selects series on a release.
type ReleaseSeriesParams struct {
	ReleaseID int
	SeriesListParams
}

func (p ReleaseSeriesParams) query() (*Query, error) {
	b := newBuilder()
	b.positiveID("release_id", p.ReleaseID)
	p.SeriesListParams.apply(b)
	return b.build()
}

// ReleaseTagsParams lists tags for series on a release.
type ReleaseTagsParams struct {
	ReleaseID int
	TagsParams
}

func (p ReleaseTagsParams) query() (*Query, error) {
	b := newBuilder()
	b.positiveID("release_id", p.ReleaseID)
	p.TagsParams.apply(b, "search_text")
	return b.build()
}

// ReleaseRelatedTagsParams lists tags related to TagNames on a release.
type ReleaseRelatedTagsParams struct {
	ReleaseID int
	RelatedTagsParams
}

func (p ReleaseRelatedTagsParams) query() (*Query, error) {
	b := newBuilder()
	b.positiveID("release_id", p.ReleaseID)
	p.RelatedTagsParams.apply(b, "search_text")
	return b.build()
}

// ReleaseTablesParams selects a release table tree. A nil ElementID returns
// the root element of the release.
type ReleaseTablesParams struct {
	ReleaseID                int
	ElementID                *int
	IncludeObservationValues bool
	ObservationDate          time.Time
}

func (p ReleaseTablesParams) query() (*Query, error) {
	b := newBuilder()
	b.positiveID("release_id", p.ReleaseID)
	if p.ElementID != nil {
		b.positiveID("element_id", *p.ElementID)
	}
	b.setBool("include_observation_values", p.IncludeObservationValues)
	b.date("observation_date", p.ObservationDate)
	return b.build()
}

// SeriesParams selects a series for series, series/categories and series/release.
type SeriesParams struct {
	SeriesID string
	RealtimePeriod
}

func (p SeriesParams) query() (*Query, error) {
	b := newBuilder()
	b.requiredString("series_id", p.SeriesID)
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// ObservationsParams selects data values of a series. Limit defaults to 100000.
type ObservationsParams struct {
	SeriesID string
	RealtimePeriod
	Limit             int
	Offset            int
	SortOrder         SortOrder
	ObservationStart  time.Time
	ObservationEnd    time.Time
	Units             ObservationUnits
	Frequency         ObservationFrequency
	AggregationMethod AggregationMethod
	OutputType        OutputType
	VintageDates      []time.Time
}

func (p ObservationsParams) query() (*Query, error) {
	b := newBuilder()
	b.requiredString("series_id", p.SeriesID)
	b.paging(p.Limit, p.Offset, defaultObservationsLimit)
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.enum("units", observationUnitsTable, int(p.Units))
	b.enum("aggregation_method", aggregationMethodTable, int(p.AggregationMethod))
	b.enum("output_type", outputTypeTable, int(p.OutputType))
	b.dateRange("observation_start", "observation_end", p.ObservationStart, p.ObservationEnd)
	b.optionalEnum("frequency", observationFrequencyTable, int(p.Frequency))
	b.dates("vintage_dates", p.VintageDates)
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// SeriesSearchParams searches series by text or id pattern.
type SeriesSearchParams struct {
	SearchText string
	SearchType SeriesSearchType
	RealtimePeriod
	Limit           int
	Offset          int
	OrderBy         SeriesSearchOrderBy
	SortOrder       SortOrder
	FilterVariable  SeriesFilterVariable
	FilterValue     string
	TagNames        []string
	ExcludeTagNames []string
}

func (p SeriesSearchParams) query() (*Query, error) {
	b := newBuilder()
	b.requiredString("search_text", p.SearchText)
	b.enum("search_type", seriesSearchTypeTable, int(p.SearchType))
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.optionalEnum("order_by", seriesSearchOrderByTable, int(p.OrderBy))
	b.seriesFilter(p.FilterVariable, p.FilterValue)
	b.tags(p.TagNames, p.ExcludeTagNames, false)
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// SeriesSearchTagsParams lists tags for the series matching SeriesSearchText.
// TagsParams.SearchText filters the tags themselves.
type SeriesSearchTagsParams struct {
	SeriesSearchText string
	TagsParams
}

func (p SeriesSearchTagsParams) query() (*Query, error) {
	b := newBuilder()
	b.requiredString("series_search_text", p.SeriesSearchText)
	p.TagsParams.apply(b, "tag_search_text")
	return b.build()
}

// SeriesSearchRelatedTagsParams lists tags related to TagNames for the
// series matching SeriesSearchText.
type SeriesSearchRelatedTagsParams struct {
	SeriesSearchText string
	RelatedTagsParams
}

func (p SeriesSearchRelatedTagsParams) query() (*Query, error) {
	b := newBuilder()
	b.requiredString("series_search_text", p.SeriesSearchText)
	p.RelatedTagsParams.apply(b, "tag_search_text")
	return b.build()
}

// SeriesTagsParams lists the tags of one series.
type SeriesTagsParams struct {
	SeriesID string
	RealtimePeriod
	OrderBy   TagOrderBy
	SortOrder SortOrder
}

func (p SeriesTagsParams) query() (*Query, error) {
	b := newBuilder()
	b.requiredString("series_id", p.SeriesID)
	b.enum("order_by", tagOrderByTable, int(p.OrderBy))
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// SeriesUpdatesParams lists recently updated series. StartTime and EndTime
// bound the update window and must be given together.
type SeriesUpdatesParams struct {
	RealtimePeriod
	Limit     int
	Offset    int
	Filter    SeriesUpdatesFilter
	StartTime time.Time
	EndTime   time.Time
}

func (p SeriesUpdatesParams) query() (*Query, error) {
	b := newBuilder()
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("filter_value", seriesUpdatesFilterTable, int(p.Filter))
	switch {
	case p.StartTime.IsZero() != p.EndTime.IsZero():
		b.fail(invalidParam("start_time", "start_time and end_time must be set together"))
	case !p.StartTime.IsZero() && p.StartTime.After(p.EndTime):
		b.fail(invalidParam("start_time", "%s is after end_time", formatTime(p.StartTime)))
	default:
		b.timestamp("start_time", p.StartTime)
		b.timestamp("end_time", p.EndTime)
	}
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// VintageDatesParams lists revision dates of a series. Limit defaults to 10000.
type VintageDatesParams struct {
	SeriesID string
	RealtimePeriod
	Limit     int
	Offset    int
	SortOrder SortOrder
}

func (p VintageDatesParams) query() (*Query, error) {
	b := newBuilder()
	b.requiredString("series_id", p.SeriesID)
	b.paging(p.Limit, p.Offset, defaultDatesLimit)
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// SourcesParams lists all sources.
type SourcesParams struct {
	RealtimePeriod
	Limit     int
	Offset    int
	OrderBy   SourceOrderBy
	SortOrder SortOrder
}

func (p SourcesParams) query() (*Query, error) {
	b := newBuilder()
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("order_by", sourceOrderByTable, int(p.OrderBy))
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// SourceParams selects one source.
type SourceParams struct {
	SourceID int
	RealtimePeriod
}

func (p SourceParams) query() (*Query, error) {
	b := newBuilder()
	b.positiveID("source_id", p.SourceID)
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// SourceReleasesParams lists releases of a source.
type SourceReleasesParams struct {
	SourceID int
	RealtimePeriod
	Limit     int
	Offset    int
	OrderBy   ReleaseOrderBy
	SortOrder SortOrder
}

func (p SourceReleasesParams) query() (*Query, error) {
	b := newBuilder()
	b.positiveID("source_id", p.SourceID)
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("order_by", releaseOrderByTable, int(p.OrderBy))
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.realtime(p.RealtimePeriod)
	return b.build()
}

// TagsSeriesParams lists series matching all TagNames, which is required.
type TagsSeriesParams struct {
	TagNames        []string
	ExcludeTagNames []string
	RealtimePeriod
	Limit     int
	Offset    int
	OrderBy   SeriesOrderBy
	SortOrder SortOrder
}

func (p TagsSeriesParams) query() (*Query, error) {
	b := newBuilder()
	b.tags(p.TagNames, p.ExcludeTagNames, true)
	b.paging(p.Limit, p.Offset, defaultLimit)
	b.enum("order_by", seriesOrderByTable, int(p.OrderBy))
	b.enum("sort_order", sortOrderTable, int(p.SortOrder))
	b.realtime(p.RealtimePeriod)
	return b.build()
}
