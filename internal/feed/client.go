// Package feed provides the typed data model for the Creative Cloud products
// feed and an HTTP client for fetching it.
//
// Every request carries the fixed client-identification headers the update
// service expects. The client is a plain *http.Client wrapper so the same
// instance also serves the secondary manifest and proxy-data fetches.
package feed

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ccstack/ccfeed/internal/errors"
)

const (
	defaultTimeout = 30 * time.Second

	headerUserAgent = "Creative Cloud"
	headerAppID     = "AUSST_4_0"
)

// NewHTTPClient creates an http.Client that adds the Creative Cloud
// identification headers (User-Agent, x-adobe-app-id) to every request.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: defaultTimeout,
		Transport: &headerTransport{
			base: http.DefaultTransport,
		},
	}
}

// headerTransport adds the fixed identification headers to requests.
type headerTransport struct {
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", headerUserAgent)
	req.Header.Set("x-adobe-app-id", headerAppID)
	return t.base.RoundTrip(req)
}

// Client fetches feed documents from the update service.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new feed Client.
// If httpClient is nil, a default client with the identification headers is used.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{httpClient: httpClient}
}

// HTTPClient returns the underlying http.Client, for the secondary manifest
// and proxy-data fetches that share its headers and timeout.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Fetch performs a single GET of the feed URL and decodes the JSON document.
// There is no retry; a failed run is rerun by the surrounding pipeline.
func (c *Client) Fetch(ctx context.Context, url string) (*Feed, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var f Feed
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, errors.NewParseError(url, "json", err)
	}
	return &f, nil
}

// Get performs a single GET and returns the full response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewNetworkError(url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewHTTPError(url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError(url, err)
	}
	return body, nil
}
