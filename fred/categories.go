package fred

import "context"

// GetCategory returns one category. ID 0 is the root.
func (c *Client) GetCategory(ctx context.Context, id int) (Category, error) {
	return fetchOne(ctx, c, "category", CategoryParams{ID: id}, "category", decodeCategory)
}

// GetCategoryChildren returns the child categories of a category.
func (c *Client) GetCategoryChildren(ctx context.Context, params CategoryParams) ([]Category, error) {
	return fetchList(ctx, c, "category/children", params, "", decodeCategory)
}

// GetCategoryRelated returns categories related to a category.
func (c *Client) GetCategoryRelated(ctx context.Context, params CategoryParams) ([]Category, error) {
	return fetchList(ctx, c, "category/related", params, "", decodeCategory)
}

// GetCategorySeries returns the series in a category.
func (c *Client) GetCategorySeries(ctx context.Context, params CategorySeriesParams) ([]Series, error) {
	return fetchList(ctx, c, "category/series", params, "", decodeSeries)
}

// GetCategoryTags returns the tags for series in a category.
func (c *Client) GetCategoryTags(ctx context.Context, params CategoryTagsParams) ([]Tag, error) {
	return fetchList(ctx, c, "category/tags", params, "", decodeTag)
}

// GetCategoryRelatedTags returns tags related to params.TagNames within a category.
func (c *Client) GetCategoryRelatedTags(ctx context.Context, params CategoryRelatedTagsParams) ([]Tag, error) {
	return fetchList(ctx, c, "category/related_tags", params, "", decodeTag)
}
