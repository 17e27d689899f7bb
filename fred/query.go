package fred

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "200601021504"

	defaultLimit             = 1000
	defaultObservationsLimit = 100000
	defaultDatesLimit        = 10000
)

// Query is an ordered list of query-string parameters. Keys keep the order
// in which they were first set.
type Query struct {
	keys   []string
	values map[string]string
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: make(map[string]string)}
}

// Set adds key or replaces its value in place.
func (q *Query) Set(key, value string) {
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

// Get returns the value for key.
func (q *Query) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (q *Query) Keys() []string {
	return append([]string(nil), q.keys...)
}

// Len returns the number of parameters. A nil query is empty.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.keys)
}

// Encode renders the query in insertion order.
func (q *Query) Encode() string {
	var b strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[k]))
	}
	return b.String()
}

// Values converts the query to url.Values.
func (q *Query) Values() url.Values {
	v := make(url.Values, len(q.keys))
	for _, k := range q.keys {
		v.Set(k, q.values[k])
	}
	return v
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// joinSemicolon joins tag names for tag_names / exclude_tag_names.
func joinSemicolon(param string, names []string) (string, error) {
	if len(names) == 0 {
		return "", invalidParam(param, "at least one tag name is required")
	}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return "", invalidParam(param, "tag names must not be blank")
		}
		if strings.Contains(n, ";") {
			return "", invalidParam(param, "tag name %q contains ';'", n)
		}
	}
	return strings.Join(names, ";"), nil
}

// joinDates joins calendar dates for vintage_dates.
func joinDates(dates []time.Time) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = formatDate(d)
	}
	return strings.Join(parts, ",")
}

// builder accumulates parameters and the first validation error so the
// per-endpoint query methods read as a flat list of rules.
type builder struct {
	q   *Query
	err error
}

func newBuilder() *builder {
	return &builder{q: NewQuery()}
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *builder) set(key, value string) {
	b.q.Set(key, value)
}

func (b *builder) setInt(key string, v int) {
	b.q.Set(key, strconv.Itoa(v))
}

func (b *builder) setBool(key string, v bool) {
	b.q.Set(key, strconv.FormatBool(v))
}

func (b *builder) requiredString(key, v string) {
	if strings.TrimSpace(v) == "" {
		b.fail(invalidParam(key, "is required"))
		return
	}
	b.q.Set(key, v)
}

func (b *builder) optionalString(key, v string) {
	if v != "" {
		b.q.Set(key, v)
	}
}

func (b *builder) categoryID(v int) {
	if v < 0 {
		b.fail(invalidParam("category_id", "must be non-negative, got %d", v))
		return
	}
	b.setInt("category_id", v)
}

func (b *builder) positiveID(key string, v int) {
	if v <= 0 {
		b.fail(invalidParam(key, "must be positive, got %d", v))
		return
	}
	b.setInt(key, v)
}

func (b *builder) paging(limit, offset, def int) {
	switch {
	case limit == 0:
		limit = def
	case limit < 0 || limit > def:
		b.fail(invalidParam("limit", "must be between 1 and %d, got %d", def, limit))
		return
	}
	if offset < 0 {
		b.fail(invalidParam("offset", "must be non-negative, got %d", offset))
		return
	}
	b.setInt("limit", limit)
	b.setInt("offset", offset)
}

// enum writes a wire string after checking the value is a known constant.
func (b *builder) enum(key string, table enumTable, v int) {
	if !table.valid(v) {
		b.fail(invalidParam(key, "unknown value %d", v))
		return
	}
	b.q.Set(key, table.encode(v))
}

// optionalEnum omits the key for the zero-valued None sentinel.
func (b *builder) optionalEnum(key string, table enumTable, v int) {
	if v == 0 {
		return
	}
	b.enum(key, table, v)
}

func (b *builder) date(key string, t time.Time) {
	if !t.IsZero() {
		b.q.Set(key, formatDate(t))
	}
}

func (b *builder) timestamp(key string, t time.Time) {
	if !t.IsZero() {
		b.q.Set(key, formatTime(t))
	}
}

// dates writes a list of calendar dates. Zero dates are rejected rather
// than sent as 0001-01-01.
func (b *builder) dates(key string, ds []time.Time) {
	if len(ds) == 0 {
		return
	}
	for i, d := range ds {
		if d.IsZero() {
			b.fail(invalidParam(key, "date at index %d is zero", i))
			return
		}
	}
	b.set(key, joinDates(ds))
}

func (b *builder) dateRange(startKey, endKey string, start, end time.Time) {
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		b.fail(invalidParam(startKey, "%s is after %s", formatDate(start), endKey))
		return
	}
	b.date(startKey, start)
	b.date(endKey, end)
}

func (b *builder) realtime(p RealtimePeriod) {
	b.dateRange("realtime_start", "realtime_end", p.Start, p.End)
}

// tags writes tag_names / exclude_tag_names. required makes an empty
// tag_names list an error; exclusions always need inclusions.
func (b *builder) tags(include, exclude []string, required bool) {
	if len(include) > 0 || required {
		joined, err := joinSemicolon("tag_names", include)
		if err != nil {
			b.fail(err)
			return
		}
		b.q.Set("tag_names", joined)
	}
	if len(exclude) > 0 {
		if len(include) == 0 {
			b.fail(invalidParam("exclude_tag_names", "requires tag_names"))
			return
		}
		joined, err := joinSemicolon("exclude_tag_names", exclude)
		if err != nil {
			b.fail(err)
			return
		}
		b.q.Set("exclude_tag_names", joined)
	}
}

// seriesFilter writes filter_variable and filter_value together or not at all.
func (b *builder) seriesFilter(variable SeriesFilterVariable, value string) {
	if variable == FilterNone {
		if value != "" {
			b.fail(invalidParam("filter_value", "requires filter_variable"))
		}
		return
	}
	if strings.TrimSpace(value) == "" {
		b.fail(invalidParam("filter_value", "is required when filter_variable is %s", variable))
		return
	}
	b.enum("filter_variable", seriesFilterVariableTable, int(variable))
	b.q.Set("filter_value", value)
}

func (b *builder) build() (*Query, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.q, nil
}
