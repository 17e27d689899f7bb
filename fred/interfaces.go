package fred

import "context"

// API defines every FRED endpoint. *Client implements it; the CLI depends on
// the interface so commands can be tested against a fake.
type API interface {
	// Categories
	GetCategory(ctx context.Context, id int) (Category, error)
	GetCategoryChildren(ctx context.Context, params CategoryParams) ([]Category, error)
	GetCategoryRelated(ctx context.Context, params CategoryParams) ([]Category, error)
	GetCategorySeries(ctx context.Context, params CategorySeriesParams) ([]Series, error)
	GetCategoryTags(ctx context.Context, params CategoryTagsParams) ([]Tag, error)
	GetCategoryRelatedTags(ctx context.Context, params CategoryRelatedTagsParams) ([]Tag, error)

	// Releases
	GetReleases(ctx context.Context, params ReleasesParams) ([]Release, error)
	GetReleasesDates(ctx context.Context, params ReleasesDatesParams) ([]ReleaseDate, error)
	GetRelease(ctx context.Context, params ReleaseParams) (Release, error)
	GetReleaseDates(ctx context.Context, params ReleaseDatesParams) ([]ReleaseDate, error)
	GetReleaseSeries(ctx context.Context, params ReleaseSeriesParams) ([]Series, error)
	GetReleaseSources(ctx context.Context, params ReleaseParams) ([]Source, error)
	GetReleaseTags(ctx context.Context, params ReleaseTagsParams) ([]Tag, error)
	GetReleaseRelatedTags(ctx context.Context, params ReleaseRelatedTagsParams) ([]Tag, error)
	GetReleaseTables(ctx context.Context, params ReleaseTablesParams) ([]Element, error)

	// Series
	GetSeries(ctx context.Context, params SeriesParams) (Series, error)
	GetSeriesCategories(ctx context.Context, params SeriesParams) ([]Category, error)
	GetSeriesObservations(ctx context.Context, params ObservationsParams) ([]Observation, error)
	GetSeriesRelease(ctx context.Context, params SeriesParams) (Release, error)
	SearchSeries(ctx context.Context, params SeriesSearchParams) ([]Series, error)
	SearchSeriesTags(ctx context.Context, params SeriesSearchTagsParams) ([]Tag, error)
	SearchSeriesRelatedTags(ctx context.Context, params SeriesSearchRelatedTagsParams) ([]Tag, error)
	GetSeriesTags(ctx context.Context, params SeriesTagsParams) ([]Tag, error)
	GetSeriesUpdates(ctx context.Context, params SeriesUpdatesParams) ([]Series, error)
	GetSeriesVintageDates(ctx context.Context, params VintageDatesParams) ([]VintageDate, error)

	// Sources
	GetSources(ctx context.Context, params SourcesParams) ([]Source, error)
	GetSource(ctx context.Context, params SourceParams) (Source, error)
	GetSourceReleases(ctx context.Context, params SourceReleasesParams) ([]Release, error)

	// Tags
	GetTags(ctx context.Context, params TagsParams) ([]Tag, error)
	GetRelatedTags(ctx context.Context, params RelatedTagsParams) ([]Tag, error)
	GetTagsSeries(ctx context.Context, params TagsSeriesParams) ([]Series, error)

	Close() error
}

var _ API = (*Client)(nil)
