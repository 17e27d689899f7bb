package fred

import "context"

// GetTags returns tags, optionally narrowed by name, group or search text.
func (c *Client) GetTags(ctx context.Context, params TagsParams) ([]Tag, error) {
	return fetchList(ctx, c, "tags", params, "", decodeTag)
}

// GetRelatedTags returns tags that appear on series together with all of
// params.TagNames.
func (c *Client) GetRelatedTags(ctx context.Context, params RelatedTagsParams) ([]Tag, error) {
	return fetchList(ctx, c, "related_tags", params, "", decodeTag)
}

// GetTagsSeries returns series carrying all of params.TagNames.
func (c *Client) GetTagsSeries(ctx context.Context, params TagsSeriesParams) ([]Series, error) {
	return fetchList(ctx, c, "tags/series", params, "", decodeSeries)
}
