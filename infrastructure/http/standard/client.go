// ABOUTME: Standard HTTP client implementation backed by net/http
// ABOUTME: Performs each request exactly once so loader timeout semantics stay exact

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"syndikit/core/interfaces"
)

const defaultUserAgent = "syndikit/1.0"

// acceptHeader advertises the syndication media types resources are
// published under, with a wildcard so plain-XML servers still answer.
const acceptHeader = "application/rss+xml, application/atom+xml, application/xml, text/xml, */*"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout leaves the request lifetime to the caller's context, which
// is how the loader bounds fetches.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}
}

// SetUserAgent overrides the User-Agent header sent with each request.
// Empty values are ignored.
func (c *StandardHTTPClient) SetUserAgent(userAgent string) {
	if userAgent != "" {
		c.userAgent = userAgent
	}
}

// Get performs an HTTP GET request. The request is attempted exactly once;
// a load that should retry is a new load.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
