package filter

import (
	"github.com/s0up4200/fredctl/fred"
)

// Record environments expose fields under their wire names, so an expression
// such as `frequency_short == "M" and popularity > 50` reads like the API.

// SeriesEnv builds the environment for a series.
func SeriesEnv(s fred.Series) Env {
	return Env{
		"id":                        s.ID,
		"title":                     s.Title,
		"realtime_start":            s.RealtimeStart,
		"realtime_end":              s.RealtimeEnd,
		"observation_start":         s.ObservationStart,
		"observation_end":           s.ObservationEnd,
		"frequency":                 s.Frequency,
		"frequency_short":           s.FrequencyShort,
		"units":                     s.Units,
		"units_short":               s.UnitsShort,
		"seasonal_adjustment":       s.SeasonalAdjustment,
		"seasonal_adjustment_short": s.SeasonalAdjustmentShort,
		"last_updated":              s.LastUpdated,
		"popularity":                s.Popularity,
		"group_popularity":          s.GroupPopularity,
		"notes":                     s.Notes,
	}
}

// ObservationEnv builds the environment for an observation. Missing values
// have value 0 and missing true.
func ObservationEnv(o fred.Observation) Env {
	return Env{
		"realtime_start": o.RealtimeStart,
		"realtime_end":   o.RealtimeEnd,
		"date":           o.Date,
		"value":          o.Value,
		"missing":        o.Missing,
	}
}

// TagEnv builds the environment for a tag. group_id is the wire string.
func TagEnv(t fred.Tag) Env {
	return Env{
		"name":         t.Name,
		"group_id":     t.GroupID.String(),
		"notes":        t.Notes,
		"created":      t.Created,
		"popularity":   t.Popularity,
		"series_count": t.SeriesCount,
	}
}

// ReleaseEnv builds the environment for a release.
func ReleaseEnv(r fred.Release) Env {
	return Env{
		"id":             r.ID,
		"name":           r.Name,
		"realtime_start": r.RealtimeStart,
		"realtime_end":   r.RealtimeEnd,
		"press_release":  r.PressRelease,
		"link":           r.Link,
		"notes":          r.Notes,
	}
}

// ReleaseDateEnv builds the environment for a release date.
func ReleaseDateEnv(d fred.ReleaseDate) Env {
	return Env{
		"release_id":   d.ReleaseID,
		"release_name": d.ReleaseName,
		"date":         d.Date,
	}
}

// CategoryEnv builds the environment for a category.
func CategoryEnv(c fred.Category) Env {
	return Env{
		"id":        c.ID,
		"parent_id": c.ParentID,
		"name":      c.Name,
		"notes":     c.Notes,
	}
}

// SourceEnv builds the environment for a source.
func SourceEnv(s fred.Source) Env {
	return Env{
		"id":             s.ID,
		"name":           s.Name,
		"realtime_start": s.RealtimeStart,
		"realtime_end":   s.RealtimeEnd,
		"link":           s.Link,
		"notes":          s.Notes,
	}
}

// VintageDateEnv builds the environment for a vintage date.
func VintageDateEnv(v fred.VintageDate) Env {
	return Env{
		"date": v.Date,
	}
}

// ElementEnv builds the environment for a release table element. The type
// field is exposed as element_type since type is an expr builtin. Nested
// children are not filtered.
func ElementEnv(e fred.Element) Env {
	env := Env{
		"element_id":   e.ElementID,
		"release_id":   e.ReleaseID,
		"name":         e.Name,
		"line":         e.Line,
		"element_type": e.Type,
		"level":        e.Level,
		"series_id":    "",
		"parent_id":    "",
	}
	if e.SeriesID != nil {
		env["series_id"] = *e.SeriesID
	}
	if e.ParentID != nil {
		env["parent_id"] = *e.ParentID
	}
	return env
}
