package httpclient

import (
	"context"
	"net/http"
	"net/url"

	"ordertrack/internal/core/domain/model/category"
)

// CategoryClient fetches categories from the product service. Categories
// are addressed by their natural key, the category name.
type CategoryClient struct {
	client
}

// NewCategoryClient creates a category lookup client. A nil httpClient uses
// a default client with DefaultTimeout.
func NewCategoryClient(baseURL string, httpClient *http.Client) *CategoryClient {
	return &CategoryClient{client: newClient(baseURL, "product-service", httpClient)}
}

func (c *CategoryClient) GetByName(ctx context.Context, name string) (*category.Category, error) {
	var cat category.Category
	if err := c.getJSON(ctx, "/categories/"+url.PathEscape(name), name, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *CategoryClient) GetByNames(ctx context.Context, names []string) ([]*category.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var categories []*category.Category
	if err := c.getJSON(ctx, "/categories"+batchQuery("names", names), names, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
