package fred

import (
	"strconv"
	"strings"
	"time"
)

// Category is a node of the FRED category tree. The root category has ID 0.
type Category struct {
	ID       int    `json:"id" yaml:"id"`
	ParentID int    `json:"parent_id" yaml:"parent_id"`
	Name     string `json:"name" yaml:"name"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func decodeCategory(n *node) (Category, error) {
	r := newFieldReader(n)
	c := Category{
		ID:       r.reqInt("id"),
		ParentID: r.reqInt("parent_id"),
		Name:     r.str("name"),
		Notes:    r.optStr("notes"),
	}
	return c, r.done()
}

// Series describes an economic data series.
type Series struct {
	ID                      string    `json:"id" yaml:"id"`
	Title                   string    `json:"title" yaml:"title"`
	RealtimeStart           time.Time `json:"realtime_start" yaml:"realtime_start"`
	RealtimeEnd             time.Time `json:"realtime_end" yaml:"realtime_end"`
	ObservationStart        time.Time `json:"observation_start" yaml:"observation_start"`
	ObservationEnd          time.Time `json:"observation_end" yaml:"observation_end"`
	Frequency               string    `json:"frequency" yaml:"frequency"`
	FrequencyShort          string    `json:"frequency_short" yaml:"frequency_short"`
	Units                   string    `json:"units" yaml:"units"`
	UnitsShort              string    `json:"units_short" yaml:"units_short"`
	SeasonalAdjustment      string    `json:"seasonal_adjustment" yaml:"seasonal_adjustment"`
	SeasonalAdjustmentShort string    `json:"seasonal_adjustment_short" yaml:"seasonal_adjustment_short"`
	LastUpdatedRaw          string    `json:"-" yaml:"-"`
	LastUpdated             time.Time `json:"last_updated" yaml:"last_updated"`
	Popularity              int       `json:"popularity" yaml:"popularity"`
	GroupPopularity         int       `json:"group_popularity" yaml:"group_popularity"`
	Notes                   string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func decodeSeries(n *node) (Series, error) {
	r := newFieldReader(n)
	s := Series{
		ID:                      r.str("id"),
		Title:                   r.str("title"),
		RealtimeStart:           r.date("realtime_start"),
		RealtimeEnd:             r.date("realtime_end"),
		ObservationStart:        r.optDate("observation_start"),
		ObservationEnd:          r.optDate("observation_end"),
		Frequency:               r.optStr("frequency"),
		FrequencyShort:          r.optStr("frequency_short"),
		Units:                   r.optStr("units"),
		UnitsShort:              r.optStr("units_short"),
		SeasonalAdjustment:      r.optStr("seasonal_adjustment"),
		SeasonalAdjustmentShort: r.optStr("seasonal_adjustment_short"),
		LastUpdatedRaw:          r.optStr("last_updated"),
		LastUpdated:             r.optTimestamp("last_updated"),
		Popularity:              r.optInt("popularity"),
		GroupPopularity:         r.optInt("group_popularity"),
		Notes:                   r.optStr("notes"),
	}
	return s, r.done()
}

// Release is a publication of one or more series.
type Release struct {
	ID            int       `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	RealtimeStart time.Time `json:"realtime_start" yaml:"realtime_start"`
	RealtimeEnd   time.Time `json:"realtime_end" yaml:"realtime_end"`
	PressRelease  bool      `json:"press_release" yaml:"press_release"`
	Link          string    `json:"link,omitempty" yaml:"link,omitempty"`
	Notes         string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func decodeRelease(n *node) (Release, error) {
	r := newFieldReader(n)
	rel := Release{
		ID:            r.reqInt("id"),
		Name:          r.str("name"),
		RealtimeStart: r.optDate("realtime_start"),
		RealtimeEnd:   r.optDate("realtime_end"),
		PressRelease:  r.optBool("press_release"),
		Link:          r.optStr("link"),
		Notes:         r.optStr("notes"),
	}
	return rel, r.done()
}

// ReleaseDate is a date on which a release was or will be published.
type ReleaseDate struct {
	ReleaseID   int       `json:"release_id" yaml:"release_id"`
	ReleaseName string    `json:"release_name,omitempty" yaml:"release_name,omitempty"`
	Date        time.Time `json:"date" yaml:"date"`
}

func decodeReleaseDate(n *node) (ReleaseDate, error) {
	r := newFieldReader(n)
	d := ReleaseDate{
		ReleaseID:   r.reqInt("release_id"),
		ReleaseName: r.optStr("release_name"),
		Date:        r.textDate(),
	}
	return d, r.done()
}

// Source is an agency or organization that provides data.
type Source struct {
	ID            int       `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	RealtimeStart time.Time `json:"realtime_start" yaml:"realtime_start"`
	RealtimeEnd   time.Time `json:"realtime_end" yaml:"realtime_end"`
	Link          string    `json:"link,omitempty" yaml:"link,omitempty"`
	Notes         string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func decodeSource(n *node) (Source, error) {
	r := newFieldReader(n)
	s := Source{
		ID:            r.reqInt("id"),
		Name:          r.str("name"),
		RealtimeStart: r.optDate("realtime_start"),
		RealtimeEnd:   r.optDate("realtime_end"),
		Link:          r.optStr("link"),
		Notes:         r.optStr("notes"),
	}
	return s, r.done()
}

// Tag is a keyword attached to series. GroupIDRaw keeps the wire string
// GroupID was decoded from.
type Tag struct {
	Name        string     `json:"name" yaml:"name"`
	GroupIDRaw  string     `json:"-" yaml:"-"`
	GroupID     TagGroupID `json:"group_id" yaml:"group_id"`
	Notes       string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedRaw  string     `json:"-" yaml:"-"`
	Created     time.Time  `json:"created" yaml:"created"`
	Popularity  int        `json:"popularity" yaml:"popularity"`
	SeriesCount int        `json:"series_count" yaml:"series_count"`
}

func decodeTag(n *node) (Tag, error) {
	r := newFieldReader(n)
	t := Tag{
		Name:        r.str("name"),
		GroupIDRaw:  r.str("group_id"),
		Notes:       r.optStr("notes"),
		CreatedRaw:  r.optStr("created"),
		Created:     r.optTimestamp("created"),
		Popularity:  r.optInt("popularity"),
		SeriesCount: r.optInt("series_count"),
	}
	if r.done() == nil {
		g, err := ParseTagGroupID(t.GroupIDRaw)
		if err != nil {
			r.setErr(err)
		}
		t.GroupID = g
	}
	return t, r.done()
}

// Observation is one data value of a series. Missing is set when the API
// reports no value for the date, in which case Value is 0.
type Observation struct {
	RealtimeStart time.Time `json:"realtime_start" yaml:"realtime_start"`
	RealtimeEnd   time.Time `json:"realtime_end" yaml:"realtime_end"`
	Date          time.Time `json:"date" yaml:"date"`
	Value         float64   `json:"value" yaml:"value"`
	Missing       bool      `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// missingValue is how the API writes an observation without data.
const missingValue = "."

func decodeObservation(n *node) (Observation, error) {
	r := newFieldReader(n)
	o := Observation{
		RealtimeStart: r.optDate("realtime_start"),
		RealtimeEnd:   r.optDate("realtime_end"),
		Date:          r.date("date"),
	}
	raw := strings.TrimSpace(r.str("value"))
	if r.done() != nil {
		return o, r.done()
	}
	if raw == missingValue {
		o.Missing = true
		return o, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.fail("value", "invalid number", err)
		return o, r.done()
	}
	o.Value = v
	return o, nil
}

// VintageDate is a date on which a series was revised.
type VintageDate struct {
	Date time.Time `json:"date" yaml:"date"`
}

func decodeVintageDate(n *node) (VintageDate, error) {
	r := newFieldReader(n)
	v := VintageDate{Date: r.textDate()}
	return v, r.done()
}

// Element is a line of a release table. SeriesID is nil for section
// headers and ParentID is nil for top-level lines.
type Element struct {
	ElementID int       `json:"element_id" yaml:"element_id"`
	ReleaseID int       `json:"release_id" yaml:"release_id"`
	SeriesID  *string   `json:"series_id,omitempty" yaml:"series_id,omitempty"`
	ParentID  *string   `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Name      string    `json:"name" yaml:"name"`
	Line      string    `json:"line,omitempty" yaml:"line,omitempty"`
	Type      string    `json:"type,omitempty" yaml:"type,omitempty"`
	Level     int       `json:"level" yaml:"level"`
	Children  []Element `json:"children,omitempty" yaml:"children,omitempty"`
}

const elementTag = "element"

func decodeElement(n *node) (Element, error) {
	r := newFieldReader(n)
	e := Element{
		ElementID: r.reqInt("element_id"),
		ReleaseID: r.reqInt("release_id"),
		SeriesID:  r.nullable("series_id"),
		ParentID:  r.nullable("parent_id"),
		Name:      r.str("name"),
		Line:      r.optStr("line"),
		Type:      r.optStr("type"),
		Level:     r.optInt("level"),
	}
	if err := r.done(); err != nil {
		return e, err
	}
	if children := n.child("children"); children != nil {
		kids, err := decodeChildren(children, elementTag, decodeElement)
		if err != nil {
			return e, err
		}
		e.Children = kids
	}
	return e, nil
}
