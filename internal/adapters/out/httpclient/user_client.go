package httpclient

import (
	"context"
	"net/http"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/user"
)

// UserClient fetches users from the user service.
type UserClient struct {
	client
}

// NewUserClient creates a user lookup client. A nil httpClient uses a
// default client with DefaultTimeout.
func NewUserClient(baseURL string, httpClient *http.Client) *UserClient {
	return &UserClient{client: newClient(baseURL, "user-service", httpClient)}
}

func (c *UserClient) GetByID(ctx context.Context, id kernel.UUID) (*user.User, error) {
	var u user.User
	if err := c.getJSON(ctx, "/users/"+id.String(), id.String(), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *UserClient) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*user.User
	if err := c.getJSON(ctx, "/users"+batchQuery("ids", uuidStrings(ids)), ids, &users); err != nil {
		return nil, err
	}
	return users, nil
}
