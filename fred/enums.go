package fred

import (
	"strconv"
	"strings"
)

// enumEntry maps one constant to its symbolic name and wire string. An empty
// wire string means the constant is sent as its symbolic name.
type enumEntry struct {
	name string
	wire string
}

// enumTable is indexed by the constant's integer value.
type enumTable struct {
	kind    string
	entries []enumEntry
}

func (t enumTable) encode(v int) string {
	if v < 0 || v >= len(t.entries) {
		return t.kind + "(" + strconv.Itoa(v) + ")"
	}
	e := t.entries[v]
	if e.wire != "" {
		return e.wire
	}
	return e.name
}

func (t enumTable) decode(s string) (int, error) {
	for i := range t.entries {
		if strings.EqualFold(t.encode(i), s) {
			return i, nil
		}
	}
	return 0, &UnknownEnumValueError{Kind: t.kind, Value: s}
}

func (t enumTable) valid(v int) bool {
	return v >= 0 && v < len(t.entries)
}

// SortOrder orders results ascending or descending.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

var sortOrderTable = enumTable{kind: "sort_order", entries: []enumEntry{
	SortAscending:  {"Ascending", "asc"},
	SortDescending: {"Descending", "desc"},
}}

func (v SortOrder) String() string { return sortOrderTable.encode(int(v)) }

// ParseSortOrder decodes a wire string such as "desc".
func ParseSortOrder(s string) (SortOrder, error) {
	v, err := sortOrderTable.decode(s)
	return SortOrder(v), err
}

// SeriesOrderBy orders series lists (category/series, release/series, tags/series).
type SeriesOrderBy int

const (
	SeriesOrderByID SeriesOrderBy = iota
	SeriesOrderByTitle
	SeriesOrderByUnits
	SeriesOrderByFrequency
	SeriesOrderBySeasonalAdjustment
	SeriesOrderByRealtimeStart
	SeriesOrderByRealtimeEnd
	SeriesOrderByLastUpdated
	SeriesOrderByObservationStart
	SeriesOrderByObservationEnd
	SeriesOrderByPopularity
	SeriesOrderByGroupPopularity
)

var seriesOrderByTable = enumTable{kind: "series order_by", entries: []enumEntry{
	SeriesOrderByID:                 {"ID", "series_id"},
	SeriesOrderByTitle:              {"Title", "title"},
	SeriesOrderByUnits:              {"Units", "units"},
	SeriesOrderByFrequency:          {"Frequency", "frequency"},
	SeriesOrderBySeasonalAdjustment: {"SeasonalAdjustment", "seasonal_adjustment"},
	SeriesOrderByRealtimeStart:      {"RealtimeStart", "realtime_start"},
	SeriesOrderByRealtimeEnd:        {"RealtimeEnd", "realtime_end"},
	SeriesOrderByLastUpdated:        {"LastUpdated", "last_updated"},
	SeriesOrderByObservationStart:   {"ObservationStart", "observation_start"},
	SeriesOrderByObservationEnd:     {"ObservationEnd", "observation_end"},
	SeriesOrderByPopularity:         {"Popularity", "popularity"},
	SeriesOrderByGroupPopularity:    {"GroupPopularity", "group_popularity"},
}}

func (v SeriesOrderBy) String() string { return seriesOrderByTable.encode(int(v)) }

// ParseSeriesOrderBy decodes a wire string such as "popularity".
func ParseSeriesOrderBy(s string) (SeriesOrderBy, error) {
	v, err := seriesOrderByTable.decode(s)
	return SeriesOrderBy(v), err
}

// SeriesSearchOrderBy orders series/search results. SeriesSearchOrderByNone
// leaves ordering to the server (search_rank for full text, series_id otherwise).
type SeriesSearchOrderBy int

const (
	SeriesSearchOrderByNone SeriesSearchOrderBy = iota
	SeriesSearchOrderBySearchRank
	SeriesSearchOrderByID
	SeriesSearchOrderByTitle
	SeriesSearchOrderByUnits
	SeriesSearchOrderByFrequency
	SeriesSearchOrderBySeasonalAdjustment
	SeriesSearchOrderByRealtimeStart
	SeriesSearchOrderByRealtimeEnd
	SeriesSearchOrderByLastUpdated
	SeriesSearchOrderByObservationStart
	SeriesSearchOrderByObservationEnd
	SeriesSearchOrderByPopularity
	SeriesSearchOrderByGroupPopularity
)

var seriesSearchOrderByTable = enumTable{kind: "series search order_by", entries: []enumEntry{
	SeriesSearchOrderByNone:               {"None", ""},
	SeriesSearchOrderBySearchRank:         {"SearchRank", "search_rank"},
	SeriesSearchOrderByID:                 {"ID", "series_id"},
	SeriesSearchOrderByTitle:              {"Title", "title"},
	SeriesSearchOrderByUnits:              {"Units", "units"},
	SeriesSearchOrderByFrequency:          {"Frequency", "frequency"},
	SeriesSearchOrderBySeasonalAdjustment: {"SeasonalAdjustment", "seasonal_adjustment"},
	SeriesSearchOrderByRealtimeStart:      {"RealtimeStart", "realtime_start"},
	SeriesSearchOrderByRealtimeEnd:        {"RealtimeEnd", "realtime_end"},
	SeriesSearchOrderByLastUpdated:        {"LastUpdated", "last_updated"},
	SeriesSearchOrderByObservationStart:   {"ObservationStart", "observation_start"},
	SeriesSearchOrderByObservationEnd:     {"ObservationEnd", "observation_end"},
	SeriesSearchOrderByPopularity:         {"Popularity", "popularity"},
	SeriesSearchOrderByGroupPopularity:    {"GroupPopularity", "group_popularity"},
}}

func (v SeriesSearchOrderBy) String() string { return seriesSearchOrderByTable.encode(int(v)) }

// ParseSeriesSearchOrderBy decodes a wire string such as "search_rank".
func ParseSeriesSearchOrderBy(s string) (SeriesSearchOrderBy, error) {
	v, err := seriesSearchOrderByTable.decode(s)
	return SeriesSearchOrderBy(v), err
}

// SeriesSearchType selects full text or series id matching.
type SeriesSearchType int

const (
	SearchFullText SeriesSearchType = iota
	SearchSeriesID
)

var seriesSearchTypeTable = enumTable{kind: "search_type", entries: []enumEntry{
	SearchFullText: {"FullText", "full_text"},
	SearchSeriesID: {"SeriesID", "series_id"},
}}

func (v SeriesSearchType) String() string { return seriesSearchTypeTable.encode(int(v)) }

// ParseSeriesSearchType decodes "full_text" or "series_id".
func ParseSeriesSearchType(s string) (SeriesSearchType, error) {
	v, err := seriesSearchTypeTable.decode(s)
	return SeriesSearchType(v), err
}

// SeriesFilterVariable names the attribute a series list is filtered on.
type SeriesFilterVariable int

const (
	FilterNone SeriesFilterVariable = iota
	FilterUnits
	FilterFrequency
	FilterSeasonalAdjustment
)

var seriesFilterVariableTable = enumTable{kind: "filter_variable", entries: []enumEntry{
	FilterNone:               {"None", ""},
	FilterUnits:              {"Units", "units"},
	FilterFrequency:          {"Frequency", "frequency"},
	FilterSeasonalAdjustment: {"SeasonalAdjustment", "seasonal_adjustment"},
}}

func (v SeriesFilterVariable) String() string { return seriesFilterVariableTable.encode(int(v)) }

// ParseSeriesFilterVariable decodes a wire string such as "frequency".
func ParseSeriesFilterVariable(s string) (SeriesFilterVariable, error) {
	v, err := seriesFilterVariableTable.decode(s)
	return SeriesFilterVariable(v), err
}

// SeriesUpdatesFilter limits series/updates to a geography class.
type SeriesUpdatesFilter int

const (
	UpdatesAll SeriesUpdatesFilter = iota
	UpdatesMacro
	UpdatesRegional
)

var seriesUpdatesFilterTable = enumTable{kind: "updates filter_value", entries: []enumEntry{
	UpdatesAll:      {"All", "all"},
	UpdatesMacro:    {"Macro", "macro"},
	UpdatesRegional: {"Regional", "regional"},
}}

func (v SeriesUpdatesFilter) String() string { return seriesUpdatesFilterTable.encode(int(v)) }

// ParseSeriesUpdatesFilter decodes "all", "macro" or "regional".
func ParseSeriesUpdatesFilter(s string) (SeriesUpdatesFilter, error) {
	v, err := seriesUpdatesFilterTable.decode(s)
	return SeriesUpdatesFilter(v), err
}

// ReleaseOrderBy orders release lists.
type ReleaseOrderBy int

const (
	ReleaseOrderByID ReleaseOrderBy = iota
	ReleaseOrderByName
	ReleaseOrderByPressRelease
	ReleaseOrderByRealtimeStart
	ReleaseOrderByRealtimeEnd
)

var releaseOrderByTable = enumTable{kind: "release order_by", entries: []enumEntry{
	ReleaseOrderByID:            {"ID", "release_id"},
	ReleaseOrderByName:          {"Name", "name"},
	ReleaseOrderByPressRelease:  {"PressRelease", "press_release"},
	ReleaseOrderByRealtimeStart: {"RealtimeStart", "realtime_start"},
	ReleaseOrderByRealtimeEnd:   {"RealtimeEnd", "realtime_end"},
}}

func (v ReleaseOrderBy) String() string { return releaseOrderByTable.encode(int(v)) }

// ParseReleaseOrderBy decodes a wire string such as "press_release".
func ParseReleaseOrderBy(s string) (ReleaseOrderBy, error) {
	v, err := releaseOrderByTable.decode(s)
	return ReleaseOrderBy(v), err
}

// ReleaseDateOrderBy orders releases/dates results.
type ReleaseDateOrderBy int

const (
	ReleaseDateOrderByDate ReleaseDateOrderBy = iota
	ReleaseDateOrderByID
	ReleaseDateOrderByName
)

var releaseDateOrderByTable = enumTable{kind: "release date order_by", entries: []enumEntry{
	ReleaseDateOrderByDate: {"Date", "release_date"},
	ReleaseDateOrderByID:   {"ID", "release_id"},
	ReleaseDateOrderByName: {"Name", "release_name"},
}}

func (v ReleaseDateOrderBy) String() string { return releaseDateOrderByTable.encode(int(v)) }

// ParseReleaseDateOrderBy decodes a wire string such as "release_date".
func ParseReleaseDateOrderBy(s string) (ReleaseDateOrderBy, error) {
	v, err := releaseDateOrderByTable.decode(s)
	return ReleaseDateOrderBy(v), err
}

// SourceOrderBy orders source lists.
type SourceOrderBy int

const (
	SourceOrderByID SourceOrderBy = iota
	SourceOrderByName
	SourceOrderByRealtimeStart
	SourceOrderByRealtimeEnd
)

var sourceOrderByTable = enumTable{kind: "source order_by", entries: []enumEntry{
	SourceOrderByID:            {"ID", "source_id"},
	SourceOrderByName:          {"Name", "name"},
	SourceOrderByRealtimeStart: {"RealtimeStart", "realtime_start"},
	SourceOrderByRealtimeEnd:   {"RealtimeEnd", "realtime_end"},
}}

func (v SourceOrderBy) String() string { return sourceOrderByTable.encode(int(v)) }

// ParseSourceOrderBy decodes a wire string such as "source_id".
func ParseSourceOrderBy(s string) (SourceOrderBy, error) {
	v, err := sourceOrderByTable.decode(s)
	return SourceOrderBy(v), err
}

// TagOrderBy orders tag lists.
type TagOrderBy int

const (
	TagOrderBySeriesCount TagOrderBy = iota
	TagOrderByPopularity
	TagOrderByCreated
	TagOrderByName
	TagOrderByGroupID
)

var tagOrderByTable = enumTable{kind: "tag order_by", entries: []enumEntry{
	TagOrderBySeriesCount: {"SeriesCount", "series_count"},
	TagOrderByPopularity:  {"Popularity", "popularity"},
	TagOrderByCreated:     {"Created", "created"},
	TagOrderByName:        {"Name", "name"},
	TagOrderByGroupID:     {"GroupID", "group_id"},
}}

func (v TagOrderBy) String() string { return tagOrderByTable.encode(int(v)) }

// ParseTagOrderBy decodes a wire string such as "series_count".
func ParseTagOrderBy(s string) (TagOrderBy, error) {
	v, err := tagOrderByTable.decode(s)
	return TagOrderBy(v), err
}

// TagGroupID is the group a tag belongs to. It is both a query filter and a
// field of returned tags.
type TagGroupID int

const (
	TagGroupNone TagGroupID = iota
	TagGroupFrequency
	TagGroupGeneral
	TagGroupGeography
	TagGroupGeographyType
	TagGroupRelease
	TagGroupSeasonalAdjustment
	TagGroupSource
	TagGroupCensusConcept
)

var tagGroupIDTable = enumTable{kind: "tag_group_id", entries: []enumEntry{
	TagGroupNone:               {"None", ""},
	TagGroupFrequency:          {"Frequency", "freq"},
	TagGroupGeneral:            {"General", "gen"},
	TagGroupGeography:          {"Geography", "geo"},
	TagGroupGeographyType:      {"GeographyType", "geot"},
	TagGroupRelease:            {"Release", "rls"},
	TagGroupSeasonalAdjustment: {"SeasonalAdjustment", "seas"},
	TagGroupSource:             {"Source", "src"},
	TagGroupCensusConcept:      {"CensusConcept", "cc"},
}}

func (v TagGroupID) String() string { return tagGroupIDTable.encode(int(v)) }

// ParseTagGroupID decodes a wire string such as "geo".
func ParseTagGroupID(s string) (TagGroupID, error) {
	v, err := tagGroupIDTable.decode(s)
	return TagGroupID(v), err
}

// ObservationUnits is the transformation applied to observation values.
type ObservationUnits int

const (
	UnitsLevels ObservationUnits = iota
	UnitsChange
	UnitsChangeFromYearAgo
	UnitsPercentChange
	UnitsPercentChangeFromYearAgo
	UnitsCompoundedAnnualRateOfChange
	UnitsContinuouslyCompoundedRateOfChange
	UnitsContinuouslyCompoundedAnnualRateOfChange
	UnitsNaturalLog
)

var observationUnitsTable = enumTable{kind: "units", entries: []enumEntry{
	UnitsLevels:                                   {"Levels", "lin"},
	UnitsChange:                                   {"Change", "chg"},
	UnitsChangeFromYearAgo:                        {"ChangeFromYearAgo", "ch1"},
	UnitsPercentChange:                            {"PercentChange", "pch"},
	UnitsPercentChangeFromYearAgo:                 {"PercentChangeFromYearAgo", "pc1"},
	UnitsCompoundedAnnualRateOfChange:             {"CompoundedAnnualRateOfChange", "pca"},
	UnitsContinuouslyCompoundedRateOfChange:       {"ContinuouslyCompoundedRateOfChange", "cch"},
	UnitsContinuouslyCompoundedAnnualRateOfChange: {"ContinuouslyCompoundedAnnualRateOfChange", "cca"},
	UnitsNaturalLog:                               {"NaturalLog", "log"},
}}

func (v ObservationUnits) String() string { return observationUnitsTable.encode(int(v)) }

// ParseObservationUnits decodes a wire string such as "pc1".
func ParseObservationUnits(s string) (ObservationUnits, error) {
	v, err := observationUnitsTable.decode(s)
	return ObservationUnits(v), err
}

// ObservationFrequency aggregates observations to a lower frequency.
// FrequencyNone keeps the series' native frequency.
type ObservationFrequency int

const (
	FrequencyNone ObservationFrequency = iota
	FrequencyDaily
	FrequencyWeekly
	FrequencyBiweekly
	FrequencyMonthly
	FrequencyQuarterly
	FrequencySemiannual
	FrequencyAnnual
	FrequencyWeeklyEndingFriday
	FrequencyWeeklyEndingThursday
	FrequencyWeeklyEndingWednesday
	FrequencyWeeklyEndingTuesday
	FrequencyWeeklyEndingMonday
	FrequencyWeeklyEndingSunday
	FrequencyWeeklyEndingSaturday
	FrequencyBiweeklyEndingWednesday
	FrequencyBiweeklyEndingMonday
)

var observationFrequencyTable = enumTable{kind: "frequency", entries: []enumEntry{
	FrequencyNone:                    {"None", ""},
	FrequencyDaily:                   {"Daily", "d"},
	FrequencyWeekly:                  {"Weekly", "w"},
	FrequencyBiweekly:                {"Biweekly", "bw"},
	FrequencyMonthly:                 {"Monthly", "m"},
	FrequencyQuarterly:               {"Quarterly", "q"},
	FrequencySemiannual:              {"Semiannual", "sa"},
	FrequencyAnnual:                  {"Annual", "a"},
	FrequencyWeeklyEndingFriday:      {"WeeklyEndingFriday", "wef"},
	FrequencyWeeklyEndingThursday:    {"WeeklyEndingThursday", "weth"},
	FrequencyWeeklyEndingWednesday:   {"WeeklyEndingWednesday", "wew"},
	FrequencyWeeklyEndingTuesday:     {"WeeklyEndingTuesday", "wetu"},
	FrequencyWeeklyEndingMonday:      {"WeeklyEndingMonday", "wem"},
	FrequencyWeeklyEndingSunday:      {"WeeklyEndingSunday", "wesu"},
	FrequencyWeeklyEndingSaturday:    {"WeeklyEndingSaturday", "wesa"},
	FrequencyBiweeklyEndingWednesday: {"BiweeklyEndingWednesday", "bwew"},
	FrequencyBiweeklyEndingMonday:    {"BiweeklyEndingMonday", "bwem"},
}}

func (v ObservationFrequency) String() string { return observationFrequencyTable.encode(int(v)) }

// ParseObservationFrequency decodes a wire string such as "q".
func ParseObservationFrequency(s string) (ObservationFrequency, error) {
	v, err := observationFrequencyTable.decode(s)
	return ObservationFrequency(v), err
}

// AggregationMethod is used with a lower ObservationFrequency.
type AggregationMethod int

const (
	AggregateAverage AggregationMethod = iota
	AggregateSum
	AggregateEndOfPeriod
)

var aggregationMethodTable = enumTable{kind: "aggregation_method", entries: []enumEntry{
	AggregateAverage:     {"Average", "avg"},
	AggregateSum:         {"Sum", "sum"},
	AggregateEndOfPeriod: {"EndOfPeriod", "eop"},
}}

func (v AggregationMethod) String() string { return aggregationMethodTable.encode(int(v)) }

// ParseAggregationMethod decodes "avg", "sum" or "eop".
func ParseAggregationMethod(s string) (AggregationMethod, error) {
	v, err := aggregationMethodTable.decode(s)
	return AggregationMethod(v), err
}

// OutputType selects how observations relate to real-time periods and vintages.
type OutputType int

const (
	OutputRealtimePeriod OutputType = iota
	OutputVintageDateAllObservations
	OutputVintageDateNewAndRevised
	OutputInitialReleaseOnly
)

var outputTypeTable = enumTable{kind: "output_type", entries: []enumEntry{
	OutputRealtimePeriod:             {"RealtimePeriod", "1"},
	OutputVintageDateAllObservations: {"VintageDateAllObservations", "2"},
	OutputVintageDateNewAndRevised:   {"VintageDateNewAndRevised", "3"},
	OutputInitialReleaseOnly:         {"InitialReleaseOnly", "4"},
}}

func (v OutputType) String() string { return outputTypeTable.encode(int(v)) }

// ParseOutputType decodes "1" to "4".
func ParseOutputType(s string) (OutputType, error) {
	v, err := outputTypeTable.decode(s)
	return OutputType(v), err
}

// MarshalText lets tag groups render as their wire string in JSON and YAML output.
func (v TagGroupID) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText decodes the wire string.
func (v *TagGroupID) UnmarshalText(b []byte) error {
	parsed, err := ParseTagGroupID(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
