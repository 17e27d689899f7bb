package fred

import "context"

// GetReleases returns all releases.
func (c *Client) GetReleases(ctx context.Context, params ReleasesParams) ([]Release, error) {
	return fetchList(ctx, c, "releases", params, "", decodeRelease)
}

// GetReleasesDates returns release dates for all releases.
func (c *Client) GetReleasesDates(ctx context.Context, params ReleasesDatesParams) ([]ReleaseDate, error) {
	return fetchList(ctx, c, "releases/dates", params, "", decodeReleaseDate)
}

// GetRelease returns one release.
func (c *Client) GetRelease(ctx context.Context, params ReleaseParams) (Release, error) {
	return fetchOne(ctx, c, "release", params, "release", decodeRelease)
}

// GetReleaseDates returns the dates of one release.
func (c *Client) GetReleaseDates(ctx context.Context, params ReleaseDatesParams) ([]ReleaseDate, error) {
	return fetchList(ctx, c, "release/dates", params, "", decodeReleaseDate)
}

// GetReleaseSeries returns the series on a release.
func (c *Client) GetReleaseSeries(ctx context.Context, params ReleaseSeriesParams) ([]Series, error) {
	return fetchList(ctx, c, "release/series", params, "", decodeSeries)
}

// GetReleaseSources returns the sources of a release.
func (c *Client) GetReleaseSources(ctx context.Context, params ReleaseParams) ([]Source, error) {
	return fetchList(ctx, c, "release/sources", params, "", decodeSource)
}

// GetReleaseTags returns the tags for series on a release.
func (c *Client) GetReleaseTags(ctx context.Context, params ReleaseTagsParams) ([]Tag, error) {
	return fetchList(ctx, c, "release/tags", params, "", decodeTag)
}

// GetReleaseRelatedTags returns tags related to params.TagNames on a release.
func (c *Client) GetReleaseRelatedTags(ctx context.Context, params ReleaseRelatedTagsParams) ([]Tag, error) {
	return fetchList(ctx, c, "release/related_tags", params, "", decodeTag)
}

// GetReleaseTables returns release table elements. The response mixes
// element nodes with bookkeeping nodes; only elements are returned, each
// with its nested children.
func (c *Client) GetReleaseTables(ctx context.Context, params ReleaseTablesParams) ([]Element, error) {
	return fetchList(ctx, c, "release/tables", params, elementTag, decodeElement)
}
