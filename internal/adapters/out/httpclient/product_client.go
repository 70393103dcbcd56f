package httpclient

import (
	"context"
	"net/http"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/product"
)

// ProductClient fetches products from the product service.
type ProductClient struct {
	client
}

// NewProductClient creates a product lookup client. A nil httpClient uses a
// default client with DefaultTimeout.
func NewProductClient(baseURL string, httpClient *http.Client) *ProductClient {
	return &ProductClient{client: newClient(baseURL, "product-service", httpClient)}
}

func (c *ProductClient) GetByID(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	var p product.Product
	if err := c.getJSON(ctx, "/products/"+id.String(), id.String(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *ProductClient) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []*product.Product
	if err := c.getJSON(ctx, "/products"+batchQuery("ids", uuidStrings(ids)), ids, &products); err != nil {
		return nil, err
	}
	return products, nil
}
