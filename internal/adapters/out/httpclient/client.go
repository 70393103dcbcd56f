// Package httpclient implements the lookup clients for entities owned by
// collaborating services. Each collaborator exposes a JSON API with a
// single-item endpoint and a batch endpoint; batch responses omit missing
// keys instead of failing.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

// DefaultTimeout bounds one lookup round trip.
const DefaultTimeout = 10 * time.Second

// client carries what all typed lookup clients share: the collaborator's
// base URL, its service name for error reporting, and the HTTP client.
type client struct {
	baseURL    string
	service    string
	httpClient *http.Client
}

func newClient(baseURL, service string, httpClient *http.Client) client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		service:    service,
		httpClient: httpClient,
	}
}

// getJSON performs one GET and decodes the response body into out.
// A 404 maps to an ObjectNotFoundError carrying key; anything else that is
// not a 200 maps to a RemoteCallFailedError with the service name attached.
func (c client) getJSON(ctx context.Context, path string, key any, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errs.NewRemoteCallFailedErrorWithCause(c.service, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewRemoteCallFailedErrorWithCause(c.service, "request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError(c.service, key)
	case resp.StatusCode != http.StatusOK:
		return errs.NewRemoteCallFailedError(c.service, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewRemoteCallFailedErrorWithCause(c.service, "decode response", err)
	}
	return nil
}

// batchQuery builds the ?<param>=a,b,c query string for a batch lookup.
func batchQuery(param string, keys []string) string {
	return "?" + param + "=" + url.QueryEscape(strings.Join(keys, ","))
}

func uuidStrings(ids []kernel.UUID) []string {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}
	return keys
}
