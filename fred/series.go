package fred

import "context"

// GetSeries returns one series.
func (c *Client) GetSeries(ctx context.Context, params SeriesParams) (Series, error) {
	return fetchOne(ctx, c, "series", params, "series", decodeSeries)
}

// GetSeriesCategories returns the categories a series belongs to.
func (c *Client) GetSeriesCategories(ctx context.Context, params SeriesParams) ([]Category, error) {
	return fetchList(ctx, c, "series/categories", params, "", decodeCategory)
}

// GetSeriesObservations returns the data values of a series.
func (c *Client) GetSeriesObservations(ctx context.Context, params ObservationsParams) ([]Observation, error) {
	return fetchList(ctx, c, "series/observations", params, "", decodeObservation)
}

// GetSeriesRelease returns the release a series belongs to.
func (c *Client) GetSeriesRelease(ctx context.Context, params SeriesParams) (Release, error) {
	return fetchOne(ctx, c, "series/release", params, "release", decodeRelease)
}

// SearchSeries returns series matching search text.
func (c *Client) SearchSeries(ctx context.Context, params SeriesSearchParams) ([]Series, error) {
	return fetchList(ctx, c, "series/search", params, "", decodeSeries)
}

// SearchSeriesTags returns the tags of series matching search text.
func (c *Client) SearchSeriesTags(ctx context.Context, params SeriesSearchTagsParams) ([]Tag, error) {
	return fetchList(ctx, c, "series/search/tags", params, "", decodeTag)
}

// SearchSeriesRelatedTags returns tags related to params.TagNames for series
// matching search text.
func (c *Client) SearchSeriesRelatedTags(ctx context.Context, params SeriesSearchRelatedTagsParams) ([]Tag, error) {
	return fetchList(ctx, c, "series/search/related_tags", params, "", decodeTag)
}

// GetSeriesTags returns the tags of a series.
func (c *Client) GetSeriesTags(ctx context.Context, params SeriesTagsParams) ([]Tag, error) {
	return fetchList(ctx, c, "series/tags", params, "", decodeTag)
}

// GetSeriesUpdates returns recently updated series, newest first.
func (c *Client) GetSeriesUpdates(ctx context.Context, params SeriesUpdatesParams) ([]Series, error) {
	return fetchList(ctx, c, "series/updates", params, "", decodeSeries)
}

// GetSeriesVintageDates returns the dates on which a series was revised.
func (c *Client) GetSeriesVintageDates(ctx context.Context, params VintageDatesParams) ([]VintageDate, error) {
	return fetchList(ctx, c, "series/vintagedates", params, "", decodeVintageDate)
}
