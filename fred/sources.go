package fred

import "context"

// GetSources returns all sources.
func (c *Client) GetSources(ctx context.Context, params SourcesParams) ([]Source, error) {
	return fetchList(ctx, c, "sources", params, "", decodeSource)
}

// GetSource returns one source.
func (c *Client) GetSource(ctx context.Context, params SourceParams) (Source, error) {
	return fetchOne(ctx, c, "source", params, "source", decodeSource)
}

// GetSourceReleases returns the releases of a source.
func (c *Client) GetSourceReleases(ctx context.Context, params SourceReleasesParams) ([]Release, error) {
	return fetchList(ctx, c, "source/releases", params, "", decodeRelease)
}
