package fred

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	categoriesBody = `<categories>
  <category id="125" parent_id="13" name="Trade Balance"/>
  <category id="126" parent_id="13" name="Exports"/>
</categories>`

	seriesBody = `<seriess realtime_start="2024-01-01" realtime_end="2024-01-01">
  <series id="GNPCA" realtime_start="2024-01-01" realtime_end="2024-01-01" title="Real Gross National Product"/>
  <series id="UNRATE" realtime_start="2024-01-01" realtime_end="2024-01-01" title="Unemployment Rate"/>
  <series id="PAYEMS" realtime_start="2024-01-01" realtime_end="2024-01-01" title="All Employees, Total Nonfarm"/>
</seriess>`

	tagsBody = `<tags>
  <tag name="usa" group_id="geo" series_count="472574"/>
  <tag name="nsa" group_id="seas" series_count="369049"/>
</tags>`

	releasesBody = `<releases>
  <release id="9" name="Advance Monthly Sales for Retail and Food Services" press_release="true"/>
  <release id="10" name="Consumer Price Index" press_release="true"/>
</releases>`

	releaseDatesBody = `<release_dates>
  <release_date release_id="9" release_name="Advance Monthly Sales for Retail and Food Services">2024-01-17</release_date>
  <release_date release_id="10" release_name="Consumer Price Index">2024-01-11</release_date>
  <release_date release_id="13">2024-01-17</release_date>
</release_dates>`

	sourcesBody = `<sources>
  <source id="1" name="Board of Governors of the Federal Reserve System (US)"/>
</sources>`

	observationsBody = `<observations>
  <observation date="2020-01-01" value="1.5"/>
  <observation date="2021-01-01" value="."/>
</observations>`

	vintageDatesBody = `<vintage_dates>
  <vintage_date>1958-12-21</vintage_date>
  <vintage_date>1959-02-19</vintage_date>
</vintage_dates>`

	tablesBody = `<release_tables>
  <element element_id="12886" release_id="53" type="section" name="Personal consumption" level="0"/>
</release_tables>`
)

// TestEndpointRouting checks, for every API method, the path requested and
// the shape of the decoded result.
func TestEndpointRouting(t *testing.T) {
	tags := []string{"usa"}

	tests := []struct {
		name    string
		path    string
		body    string
		call    func(context.Context, API) (any, error)
		want    any
		wantLen int // -1 for single records
	}{
		// Categories
		{"category", "category", categoriesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetCategory(ctx, 125) },
			Category{}, -1},
		{"category children", "category/children", categoriesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetCategoryChildren(ctx, CategoryParams{ID: 13}) },
			[]Category{}, 2},
		{"category related", "category/related", categoriesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetCategoryRelated(ctx, CategoryParams{ID: 32073}) },
			[]Category{}, 2},
		{"category series", "category/series", seriesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetCategorySeries(ctx, CategorySeriesParams{CategoryID: 125})
			},
			[]Series{}, 3},
		{"category tags", "category/tags", tagsBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetCategoryTags(ctx, CategoryTagsParams{CategoryID: 125})
			},
			[]Tag{}, 2},
		{"category related tags", "category/related_tags", tagsBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetCategoryRelatedTags(ctx, CategoryRelatedTagsParams{
					CategoryID:        125,
					RelatedTagsParams: RelatedTagsParams{TagsParams: TagsParams{TagNames: tags}},
				})
			},
			[]Tag{}, 2},

		// Releases
		{"releases", "releases", releasesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetReleases(ctx, ReleasesParams{}) },
			[]Release{}, 2},
		{"releases dates", "releases/dates", releaseDatesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetReleasesDates(ctx, ReleasesDatesParams{}) },
			[]ReleaseDate{}, 3},
		{"release", "release", releasesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetRelease(ctx, ReleaseParams{ReleaseID: 9}) },
			Release{}, -1},
		{"release dates", "release/dates", releaseDatesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetReleaseDates(ctx, ReleaseDatesParams{ReleaseID: 9})
			},
			[]ReleaseDate{}, 3},
		{"release series", "release/series", seriesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetReleaseSeries(ctx, ReleaseSeriesParams{ReleaseID: 51})
			},
			[]Series{}, 3},
		{"release sources", "release/sources", sourcesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetReleaseSources(ctx, ReleaseParams{ReleaseID: 51})
			},
			[]Source{}, 1},
		{"release tags", "release/tags", tagsBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetReleaseTags(ctx, ReleaseTagsParams{ReleaseID: 86})
			},
			[]Tag{}, 2},
		{"release related tags", "release/related_tags", tagsBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetReleaseRelatedTags(ctx, ReleaseRelatedTagsParams{
					ReleaseID:         86,
					RelatedTagsParams: RelatedTagsParams{TagsParams: TagsParams{TagNames: tags}},
				})
			},
			[]Tag{}, 2},
		{"release tables", "release/tables", tablesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetReleaseTables(ctx, ReleaseTablesParams{ReleaseID: 53})
			},
			[]Element{}, 1},

		// Series
		{"series", "series", seriesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetSeries(ctx, SeriesParams{SeriesID: "GNPCA"}) },
			Series{}, -1},
		{"series categories", "series/categories", categoriesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetSeriesCategories(ctx, SeriesParams{SeriesID: "EXJPUS"})
			},
			[]Category{}, 2},
		{"series observations", "series/observations", observationsBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetSeriesObservations(ctx, ObservationsParams{SeriesID: "GNPCA"})
			},
			[]Observation{}, 2},
		{"series release", "series/release", releasesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetSeriesRelease(ctx, SeriesParams{SeriesID: "IRA"})
			},
			Release{}, -1},
		{"series search", "series/search", seriesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.SearchSeries(ctx, SeriesSearchParams{SearchText: "monetary service index"})
			},
			[]Series{}, 3},
		{"series search tags", "series/search/tags", tagsBody,
			func(ctx context.Context, c API) (any, error) {
				return c.SearchSeriesTags(ctx, SeriesSearchTagsParams{SeriesSearchText: "monetary service index"})
			},
			[]Tag{}, 2},
		{"series search related tags", "series/search/related_tags", tagsBody,
			func(ctx context.Context, c API) (any, error) {
				return c.SearchSeriesRelatedTags(ctx, SeriesSearchRelatedTagsParams{
					SeriesSearchText:  "mortgage rate",
					RelatedTagsParams: RelatedTagsParams{TagsParams: TagsParams{TagNames: tags}},
				})
			},
			[]Tag{}, 2},
		{"series tags", "series/tags", tagsBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetSeriesTags(ctx, SeriesTagsParams{SeriesID: "STLFSI"})
			},
			[]Tag{}, 2},
		{"series updates", "series/updates", seriesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetSeriesUpdates(ctx, SeriesUpdatesParams{}) },
			[]Series{}, 3},
		{"series vintage dates", "series/vintagedates", vintageDatesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetSeriesVintageDates(ctx, VintageDatesParams{SeriesID: "GNPCA"})
			},
			[]VintageDate{}, 2},

		// Sources
		{"sources", "sources", sourcesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetSources(ctx, SourcesParams{}) },
			[]Source{}, 1},
		{"source", "source", sourcesBody,
			func(ctx context.Context, c API) (any, error) { return c.GetSource(ctx, SourceParams{SourceID: 1}) },
			Source{}, -1},
		{"source releases", "source/releases", releasesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetSourceReleases(ctx, SourceReleasesParams{SourceID: 1})
			},
			[]Release{}, 2},

		// Tags
		{"tags", "tags", tagsBody,
			func(ctx context.Context, c API) (any, error) { return c.GetTags(ctx, TagsParams{}) },
			[]Tag{}, 2},
		{"related tags", "related_tags", tagsBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetRelatedTags(ctx, RelatedTagsParams{TagsParams: TagsParams{TagNames: tags}})
			},
			[]Tag{}, 2},
		{"tags series", "tags/series", seriesBody,
			func(ctx context.Context, c API) (any, error) {
				return c.GetTagsSeries(ctx, TagsSeriesParams{TagNames: tags})
			},
			[]Series{}, 3},
	}

	require.Len(t, tests, reflect.TypeOf((*API)(nil)).Elem().NumMethod()-1, "every endpoint is listed")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ft := newFakeClient(t, tt.body)

			got, err := tt.call(context.Background(), c)
			require.NoError(t, err)
			assert.Equal(t, tt.path, ft.path)
			assert.Equal(t, 1, ft.calls)
			require.IsType(t, tt.want, got)

			if tt.wantLen >= 0 {
				assert.Equal(t, tt.wantLen, reflect.ValueOf(got).Len())
			}
		})
	}
}
