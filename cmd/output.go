package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bndr/gotabulate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/fredctl/filter"
	"github.com/s0up4200/fredctl/fred"
)

// column renders one table column of a record
type column[T any] struct {
	header string
	value  func(T) string
}

// printer writes records in the configured output format
type printer struct {
	out         io.Writer
	format      string
	maxCellSize int
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{
		out:         cmd.OutOrStdout(),
		format:      cfg.Output.Format,
		maxCellSize: cfg.Output.MaxCellSize,
	}
}

// printList filters records with the active filter and prints the matches
func printList[T any](cmd *cobra.Command, records []T, envOf func(T) filter.Env, cols []column[T]) error {
	f, err := activeFilter()
	if err != nil {
		return err
	}

	matched, err := filter.Apply(cmd.Context(), evaluator, f, records, envOf)
	if err != nil {
		return err
	}
	if f != nil {
		logger.Debug().
			Int("total", len(records)).
			Int("matched", len(matched)).
			Msg("Filter applied")
	}

	return render(newPrinter(cmd), matched, cols)
}

// printOne prints a single record
func printOne[T any](cmd *cobra.Command, record T, cols []column[T]) error {
	return render(newPrinter(cmd), []T{record}, cols)
}

func render[T any](p *printer, records []T, cols []column[T]) error {
	switch p.format {
	case "json":
		return p.json(records)
	case "yaml":
		return p.yaml(records)
	default:
		return p.table(tableRows(records, cols), headers(cols))
	}
}

func (p *printer) json(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

func (p *printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func (p *printer) table(rows [][]any, headers []string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.out, "No results.")
		return err
	}

	t := gotabulate.Create(rows)
	t.SetHeaders(headers)
	t.SetAlign("left")
	t.SetWrapStrings(true)
	if p.maxCellSize > 0 {
		t.SetMaxCellSize(p.maxCellSize)
	}
	_, err := fmt.Fprint(p.out, t.Render("grid"))
	return err
}

func headers[T any](cols []column[T]) []string {
	h := make([]string, len(cols))
	for i, c := range cols {
		h[i] = c.header
	}
	return h
}

func tableRows[T any](records []T, cols []column[T]) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = c.value(r)
		}
		rows = append(rows, row)
	}
	return rows
}

// printTree prints a release table. Table output is an indented outline; json
// and yaml keep the nested structure. The filter applies to top-level
// elements only.
func printTree(cmd *cobra.Command, elements []fred.Element) error {
	f, err := activeFilter()
	if err != nil {
		return err
	}
	elements, err = filter.Apply(cmd.Context(), evaluator, f, elements, filter.ElementEnv)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	switch p.format {
	case "json":
		return p.json(elements)
	case "yaml":
		return p.yaml(elements)
	}

	if len(elements) == 0 {
		_, err := fmt.Fprintln(p.out, "No results.")
		return err
	}

	var sb strings.Builder
	for _, e := range elements {
		writeElement(&sb, e, 0)
	}
	_, err = fmt.Fprint(p.out, sb.String())
	return err
}

func writeElement(sb *strings.Builder, e fred.Element, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(e.Name)
	if e.SeriesID != nil && *e.SeriesID != "" {
		fmt.Fprintf(sb, " [%s]", *e.SeriesID)
	}
	fmt.Fprintf(sb, " (element %d", e.ElementID)
	if e.Type != "" {
		fmt.Fprintf(sb, ", %s", e.Type)
	}
	sb.WriteString(")\n")

	for _, c := range e.Children {
		writeElement(sb, c, depth+1)
	}
}

// Formatting helpers shared by the column sets

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtValue(o fred.Observation) string {
	if o.Missing {
		return "."
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

var (
	categoryColumns = []column[fred.Category]{
		{"ID", func(c fred.Category) string { return strconv.Itoa(c.ID) }},
		{"Parent", func(c fred.Category) string { return strconv.Itoa(c.ParentID) }},
		{"Name", func(c fred.Category) string { return c.Name }},
	}

	seriesColumns = []column[fred.Series]{
		{"ID", func(s fred.Series) string { return s.ID }},
		{"Title", func(s fred.Series) string { return s.Title }},
		{"Freq", func(s fred.Series) string { return s.FrequencyShort }},
		{"Units", func(s fred.Series) string { return s.UnitsShort }},
		{"SA", func(s fred.Series) string { return s.SeasonalAdjustmentShort }},
		{"Start", func(s fred.Series) string { return fmtDate(s.ObservationStart) }},
		{"End", func(s fred.Series) string { return fmtDate(s.ObservationEnd) }},
		{"Updated", func(s fred.Series) string { return fmtTime(s.LastUpdated) }},
		{"Pop", func(s fred.Series) string { return strconv.Itoa(s.Popularity) }},
	}

	releaseColumns = []column[fred.Release]{
		{"ID", func(r fred.Release) string { return strconv.Itoa(r.ID) }},
		{"Name", func(r fred.Release) string { return r.Name }},
		{"Press", func(r fred.Release) string { return strconv.FormatBool(r.PressRelease) }},
		{"Link", func(r fred.Release) string { return r.Link }},
	}

	releaseDateColumns = []column[fred.ReleaseDate]{
		{"Release", func(d fred.ReleaseDate) string { return strconv.Itoa(d.ReleaseID) }},
		{"Name", func(d fred.ReleaseDate) string { return d.ReleaseName }},
		{"Date", func(d fred.ReleaseDate) string { return fmtDate(d.Date) }},
	}

	sourceColumns = []column[fred.Source]{
		{"ID", func(s fred.Source) string { return strconv.Itoa(s.ID) }},
		{"Name", func(s fred.Source) string { return s.Name }},
		{"Link", func(s fred.Source) string { return s.Link }},
	}

	tagColumns = []column[fred.Tag]{
		{"Name", func(t fred.Tag) string { return t.Name }},
		{"Group", func(t fred.Tag) string { return t.GroupID.String() }},
		{"Series", func(t fred.Tag) string { return strconv.Itoa(t.SeriesCount) }},
		{"Pop", func(t fred.Tag) string { return strconv.Itoa(t.Popularity) }},
		{"Created", func(t fred.Tag) string { return fmtTime(t.Created) }},
	}

	vintageDateColumns = []column[fred.VintageDate]{
		{"Date", func(v fred.VintageDate) string { return fmtDate(v.Date) }},
	}

	observationColumns = []column[seriesObservation]{
		{"Series", func(o seriesObservation) string { return o.SeriesID }},
		{"Date", func(o seriesObservation) string { return fmtDate(o.Date) }},
		{"Value", func(o seriesObservation) string { return fmtValue(o.Observation) }},
		{"Realtime Start", func(o seriesObservation) string { return fmtDate(o.RealtimeStart) }},
		{"Realtime End", func(o seriesObservation) string { return fmtDate(o.RealtimeEnd) }},
	}
)
