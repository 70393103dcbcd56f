package httpclient

import (
	"context"
	"net/http"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/review"
)

// ReviewClient fetches reviews from the review service.
type ReviewClient struct {
	client
}

// NewReviewClient creates a review lookup client. A nil httpClient uses a
// default client with DefaultTimeout.
func NewReviewClient(baseURL string, httpClient *http.Client) *ReviewClient {
	return &ReviewClient{client: newClient(baseURL, "review-service", httpClient)}
}

func (c *ReviewClient) GetByID(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	var r review.Review
	if err := c.getJSON(ctx, "/reviews/"+id.String(), id.String(), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *ReviewClient) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*review.Review, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var reviews []*review.Review
	if err := c.getJSON(ctx, "/reviews"+batchQuery("ids", uuidStrings(ids)), ids, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
