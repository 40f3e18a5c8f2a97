// Package manifest fetches the per-product manifest.xml and its proxy-data
// document. The manifest describes package assets for one
// product/platform/locale combination; the proxy-data fetch is diagnostic
// only and feeds no output field.
package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/beevik/etree"

	"github.com/ccstack/ccfeed/internal/errors"
)

// Getter performs a GET and returns the response body.
// Satisfied by *feed.Client.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Fetcher fetches manifest and proxy-data documents.
type Fetcher struct {
	client Getter
}

// NewFetcher creates a new Fetcher.
func NewFetcher(client Getter) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads the manifest at manifestURL, extracts the proxy-data URL,
// and downloads the proxy document for inspection. Both fetches share the
// feed client's headers; any transport or parse failure aborts the run.
func (f *Fetcher) Fetch(ctx context.Context, manifestURL string) error {
	slog.Info("fetching manifest.xml", "url", manifestURL)

	body, err := f.client.Get(ctx, manifestURL)
	if err != nil {
		return err
	}

	proxyURL, err := proxyDataURL(manifestURL, body)
	if err != nil {
		return err
	}

	return f.fetchProxyData(ctx, proxyURL)
}

// fetchProxyData downloads the proxy document. Its content does not feed any
// output field; it is logged for inspection.
func (f *Fetcher) fetchProxyData(ctx context.Context, proxyURL string) error {
	slog.Info("fetching proxy data", "url", proxyURL)

	body, err := f.client.Get(ctx, proxyURL)
	if err != nil {
		return err
	}

	slog.Debug("proxy data received", "bytes", len(body), "body", string(body))
	return nil
}

// proxyDataURL parses the manifest XML and returns the text of its proxy_data
// element.
func proxyDataURL(manifestURL string, body []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return "", errors.NewParseError(manifestURL, "xml", err)
	}

	elem := doc.FindElement("//proxy_data")
	if elem == nil {
		return "", errors.NewParseError(manifestURL, "xml", fmt.Errorf("no proxy_data element in manifest"))
	}

	url := strings.TrimSpace(elem.Text())
	if url == "" {
		return "", errors.NewParseError(manifestURL, "xml", fmt.Errorf("empty proxy_data element in manifest"))
	}
	return url, nil
}
