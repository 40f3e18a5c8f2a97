// Package resolve selects the best-matching product and platform entry from
// the Creative Cloud products feed and derives the output fields consumed by
// the surrounding packaging pipeline.
package resolve

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/ccstack/ccfeed/internal/errors"
	"github.com/ccstack/ccfeed/internal/feed"
	"github.com/ccstack/ccfeed/internal/manifest"
	"github.com/ccstack/ccfeed/internal/version"
)

const (
	// VersionLatest selects the greatest version among the candidates.
	VersionLatest = "latest"

	// packageTypeRIBS is the legacy packaging style this resolver refuses
	// to process.
	packageTypeRIBS = "RIBS"

	// cdnChannel is the channel whose secure CDN base manifest URLs are
	// built against.
	cdnChannel = "ccm"

	iconSize = "96x96"
)

// DefaultChannels and DefaultPlatforms are the selectors used when the
// caller does not override them.
var (
	DefaultChannels  = []string{"ccm", "sti"}
	DefaultPlatforms = []string{"osx10", "osx10-64"}
)

// Options configure a single resolve run.
type Options struct {
	// ProductID is the SAP code of the requested product. Required.
	ProductID string

	// BaseVersion restricts candidates to one product lineage when several
	// share a SAP code. Optional.
	BaseVersion string

	// Version is either VersionLatest or an exact version string.
	Version string

	// Channels are the feed channels to consider.
	Channels []string

	// Platforms are the deployment platforms to consider, in preference order
	// of the feed's platform list.
	Platforms []string

	// ParseProxyXML triggers the secondary manifest and proxy-data fetch.
	ParseProxyXML bool
}

// withDefaults fills unset options with their defaults.
func (o Options) withDefaults() Options {
	if o.Version == "" {
		o.Version = VersionLatest
	}
	if len(o.Channels) == 0 {
		o.Channels = DefaultChannels
	}
	if len(o.Platforms) == 0 {
		o.Platforms = DefaultPlatforms
	}
	return o
}

// Result holds the resolved output fields. The JSON names are a fixed
// contract with the downstream packaging pipeline; do not rename them.
type Result struct {
	ProductInfoURL   string `json:"product_info_url,omitempty"`
	IconURL          string `json:"icon_url,omitempty"`
	BaseVersion      string `json:"base_version,omitempty"`
	Version          string `json:"version"`
	DisplayName      string `json:"display_name"`
	ManifestURL      string `json:"manifest_url,omitempty"`
	Family           string `json:"family,omitempty"`
	MinimumOSVersion string `json:"minimum_os_version,omitempty"`
}

// Resolver resolves product metadata from a feed document.
type Resolver struct {
	client   *feed.Client
	manifest *manifest.Fetcher
	endpoint string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithEndpoint overrides the feed endpoint (for testing).
func WithEndpoint(endpoint string) ResolverOption {
	return func(r *Resolver) {
		r.endpoint = endpoint
	}
}

// NewResolver creates a new Resolver.
// If client is nil, a default feed client is used.
func NewResolver(client *feed.Client, opts ...ResolverOption) *Resolver {
	if client == nil {
		client = feed.NewClient(nil)
	}
	r := &Resolver{
		client:   client,
		manifest: manifest.NewFetcher(client),
		endpoint: feed.DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the feed and resolves the product metadata for opts.
func (r *Resolver) Resolve(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	url := feed.URL(r.endpoint, opts.Channels, opts.Platforms)
	slog.Info("fetching products feed", "url", url)

	doc, err := r.client.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := ResolveFeed(doc, opts)
	if err != nil {
		return nil, err
	}

	if opts.ParseProxyXML && result.ManifestURL != "" {
		if err := r.manifest.Fetch(ctx, result.ManifestURL); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ResolveFeed selects the best product and platform from an already-fetched
// feed document and derives the output fields.
func ResolveFeed(doc *feed.Feed, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	cdn := channelCDN(doc, opts.Channels)

	product := selectProduct(doc, opts)
	if product == nil {
		return nil, errors.NewNoMatchError(opts.ProductID, opts.BaseVersion, opts.Version, opts.Channels)
	}

	slog.Info("found matching product",
		"displayName", product.DisplayName, "version", product.Version)

	platform, err := matchPlatform(product, opts.Platforms)
	if err != nil {
		return nil, err
	}

	return extractFields(product, platform, cdn, opts), nil
}

// channelCDN records each requested channel's CDN info by channel name.
func channelCDN(doc *feed.Feed, channels []string) map[string]feed.CDN {
	cdn := make(map[string]feed.CDN)
	for _, ch := range doc.Channels {
		if slices.Contains(channels, ch.Name) {
			cdn[ch.Name] = ch.CDN
		}
	}
	return cdn
}

// selectProduct folds the candidate products of the requested channels down
// to the single best match, or nil when nothing qualifies.
func selectProduct(doc *feed.Feed, opts Options) *feed.Product {
	var best *feed.Product

	for ci := range doc.Channels {
		ch := &doc.Channels[ci]
		if !slices.Contains(opts.Channels, ch.Name) {
			continue
		}

		for pi := range ch.Products.Products {
			prod := &ch.Products.Products[pi]
			if !isCandidate(prod, opts) {
				continue
			}

			if opts.Version == VersionLatest {
				// Strictly greater replaces; the first of equals wins.
				if best == nil || version.Less(best.Version, prod.Version) {
					best = prod
				}
				continue
			}

			if prod.Version == opts.Version {
				return prod
			}
		}
	}

	return best
}

// isCandidate applies the identifier, base-version, and version-presence
// filters to one product.
func isCandidate(prod *feed.Product, opts Options) bool {
	if prod.ID != opts.ProductID {
		return false
	}

	if opts.BaseVersion != "" {
		base := prod.FirstPlatform().FirstLanguageSet().BaseVersion
		if base != opts.BaseVersion {
			return false
		}
	}

	if prod.Version == "" {
		// Not fatal: some entries carry no version at all.
		slog.Info("product has no version, skipping", "displayName", prod.DisplayName)
		return false
	}

	return true
}

// matchPlatform picks the first of the product's platforms whose id is in the
// requested set. A RIBS platform is rejected outright; no match at all is a
// resolve failure rather than a silent empty platform.
func matchPlatform(product *feed.Product, platforms []string) (*feed.Platform, error) {
	for i := range product.Platforms.Platforms {
		pl := &product.Platforms.Platforms[i]
		if !slices.Contains(platforms, pl.ID) {
			continue
		}

		if pl.PackageType == packageTypeRIBS {
			return nil, errors.NewUnsupportedPackageError(pl.ID, pl.PackageType)
		}
		return pl, nil
	}

	return nil, errors.NewNoPlatformMatchError(product.ID, platforms)
}

// extractFields derives the output mapping from the selected product and
// matched platform.
func extractFields(product *feed.Product, platform *feed.Platform, cdn map[string]feed.CDN, opts Options) *Result {
	result := &Result{
		ProductInfoURL: product.ProductInfoPage,
		Version:        product.Version,
		DisplayName:    product.DisplayName,
		Family:         product.Family,
	}

	if ranges := platform.SystemCompatibility.OperatingSystem.Ranges; len(ranges) > 0 {
		result.MinimumOSVersion = minimumOSVersion(ranges[0])
	}

	langSet := platform.FirstLanguageSet()

	result.BaseVersion = langSet.BaseVersion
	if result.BaseVersion == "" {
		result.BaseVersion = opts.BaseVersion
	}

	if langSet.URLs.ManifestURL == "" {
		slog.Info("no manifest.xml in the product feed data",
			"product", product.ID, "platform", platform.ID)
	} else if secure := cdn[cdnChannel].Secure; secure == "" {
		slog.Info("no secure CDN base recorded for channel, leaving manifest URL unset",
			"channel", cdnChannel)
	} else {
		result.ManifestURL = secure + langSet.URLs.ManifestURL
	}

	for _, icon := range product.ProductIcons.Icons {
		if icon.Size == iconSize {
			result.IconURL = icon.Value
			break
		}
	}

	return result
}

// minimumOSVersion extracts the lower bound of a dash-delimited
// min-max compatibility range.
func minimumOSVersion(compatibilityRange string) string {
	minVersion, _, _ := strings.Cut(compatibilityRange, "-")
	return minVersion
}
