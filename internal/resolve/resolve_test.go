package resolve

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccstack/ccfeed/internal/errors"
	"github.com/ccstack/ccfeed/internal/feed"
)

// testProduct builds a product with one platform carrying the usual nested
// feed structure.
func testProduct(id, ver, baseVersion, platformID, packageType, manifestURL string) feed.Product {
	return feed.Product{
		ID:              id,
		Version:         ver,
		DisplayName:     id + " " + ver,
		Family:          "CC",
		ProductInfoPage: "https://www.example.com/" + id,
		Platforms: feed.PlatformList{
			Platforms: []feed.Platform{
				{
					ID:          platformID,
					PackageType: packageType,
					SystemCompatibility: feed.SystemCompatibility{
						OperatingSystem: feed.OperatingSystem{
							Ranges: []string{"10.12.0-99.0.0"},
						},
					},
					LanguageSets: []feed.LanguageSet{
						{
							BaseVersion: baseVersion,
							URLs:        feed.LanguageSetURLs{ManifestURL: manifestURL},
						},
					},
				},
			},
		},
	}
}

func testFeed(channelName string, products ...feed.Product) *feed.Feed {
	return &feed.Feed{
		Channels: []feed.Channel{
			{
				Name:     channelName,
				CDN:      feed.CDN{Secure: "https://cdn.example"},
				Products: feed.ProductList{Products: products},
			},
		},
	}
}

func TestResolveFeed_Latest(t *testing.T) {
	t.Parallel()

	doc := testFeed("ccm",
		testProduct("PHSP", "19.1.0", "19.0", "osx10-64", "", "/products/PHSP/19.1/manifest.xml"),
		testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", "/products/PHSP/20.0/manifest.xml"),
		testProduct("PHSP", "20.0.0", "20.0", "osx10-64", "", "/products/PHSP/20.0/manifest.xml"),
		testProduct("ILST", "23.0.0", "23.0", "osx10-64", "", "/products/ILST/23.0/manifest.xml"),
	)

	result, err := ResolveFeed(doc, Options{ProductID: "PHSP"})
	require.NoError(t, err)

	assert.Equal(t, "20.0.1", result.Version)
	assert.Equal(t, "PHSP 20.0.1", result.DisplayName)
	assert.Equal(t, "https://cdn.example/products/PHSP/20.0/manifest.xml", result.ManifestURL)
	assert.Equal(t, "10.12.0", result.MinimumOSVersion)
	assert.Equal(t, "20.0", result.BaseVersion)
	assert.Equal(t, "CC", result.Family)
	assert.Equal(t, "https://www.example.com/PHSP", result.ProductInfoURL)
}

func TestResolveFeed_Latest_DottedNotLexicographic(t *testing.T) {
	t.Parallel()

	doc := testFeed("ccm",
		testProduct("PHSP", "9.0.0", "9.0", "osx10-64", "", ""),
		testProduct("PHSP", "10.0.0", "10.0", "osx10-64", "", ""),
	)

	result, err := ResolveFeed(doc, Options{ProductID: "PHSP"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0", result.Version)
}

func TestResolveFeed_Latest_EqualVersionsKeepFirst(t *testing.T) {
	t.Parallel()

	first := testProduct("PHSP", "20.0.0", "20.0", "osx10-64", "", "")
	first.DisplayName = "first"
	second := testProduct("PHSP", "20.0.0", "20.0", "osx10-64", "", "")
	second.DisplayName = "second"

	result, err := ResolveFeed(testFeed("ccm", first, second), Options{ProductID: "PHSP"})
	require.NoError(t, err)
	assert.Equal(t, "first", result.DisplayName)
}

func TestResolveFeed_ExactVersion(t *testing.T) {
	t.Parallel()

	doc := testFeed("ccm",
		testProduct("PHSP", "19.1.0", "19.0", "osx10-64", "", ""),
		testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", ""),
	)

	result, err := ResolveFeed(doc, Options{ProductID: "PHSP", Version: "19.1.0"})
	require.NoError(t, err)
	assert.Equal(t, "19.1.0", result.Version)
}

func TestResolveFeed_ExactVersion_NotFound(t *testing.T) {
	t.Parallel()

	doc := testFeed("ccm", testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", ""))

	_, err := ResolveFeed(doc, Options{ProductID: "PHSP", Version: "18.0.0"})

	var noMatch *errors.NoMatchError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, "PHSP", noMatch.ProductID)
	assert.Equal(t, "18.0.0", noMatch.Version)
}

func TestResolveFeed_UnknownProduct(t *testing.T) {
	t.Parallel()

	doc := testFeed("ccm", testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", ""))

	_, err := ResolveFeed(doc, Options{ProductID: "KBRG"})

	var noMatch *errors.NoMatchError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, "KBRG", noMatch.ProductID)
	assert.Equal(t, []string{"ccm", "sti"}, noMatch.Channels)
}

func TestResolveFeed_BaseVersionConstraint(t *testing.T) {
	t.Parallel()

	doc := testFeed("ccm",
		testProduct("PHSP", "19.1.9", "19.0", "osx10-64", "", ""),
		testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", ""),
	)

	result, err := ResolveFeed(doc, Options{ProductID: "PHSP", BaseVersion: "19.0"})
	require.NoError(t, err)
	assert.Equal(t, "19.1.9", result.Version)
	assert.Equal(t, "19.0", result.BaseVersion)
}

func TestResolveFeed_BaseVersionConstraint_MissingFieldRejected(t *testing.T) {
	t.Parallel()

	// The product carries no baseVersion; with a constraint set it is rejected.
	doc := testFeed("ccm", testProduct("PHSP", "20.0.1", "", "osx10-64", "", ""))

	_, err := ResolveFeed(doc, Options{ProductID: "PHSP", BaseVersion: "20.0"})

	var noMatch *errors.NoMatchError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, "20.0", noMatch.BaseVersion)
}

func TestResolveFeed_BaseVersionPassthrough(t *testing.T) {
	t.Parallel()

	// The candidate filter reads the first platform's language set, but the
	// matched platform carries none; the input constraint flows to the output.
	prod := testProduct("PHSP", "20.0.1", "20.0", "win64", "", "")
	prod.Platforms.Platforms = append(prod.Platforms.Platforms,
		feed.Platform{ID: "osx10-64"},
	)

	result, err := ResolveFeed(testFeed("ccm", prod), Options{
		ProductID:   "PHSP",
		BaseVersion: "20.0",
		Platforms:   []string{"osx10", "osx10-64"},
	})
	require.NoError(t, err)
	assert.Equal(t, "20.0", result.BaseVersion)
}

func TestResolveFeed_MissingVersionSkippedNotFatal(t *testing.T) {
	t.Parallel()

	unversioned := testProduct("PHSP", "", "20.0", "osx10-64", "", "")
	doc := testFeed("ccm",
		unversioned,
		testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", ""),
	)

	result, err := ResolveFeed(doc, Options{ProductID: "PHSP"})
	require.NoError(t, err)
	assert.Equal(t, "20.0.1", result.Version)
}

func TestResolveFeed_ChannelNotRequested(t *testing.T) {
	t.Parallel()

	doc := testFeed("beta", testProduct("PHSP", "21.0.0", "21.0", "osx10-64", "", ""))

	_, err := ResolveFeed(doc, Options{ProductID: "PHSP", Channels: []string{"ccm", "sti"}})

	var noMatch *errors.NoMatchError
	require.ErrorAs(t, err, &noMatch)
}

func TestResolveFeed_RIBSPackageRejected(t *testing.T) {
	t.Parallel()

	doc := testFeed("ccm", testProduct("PHSP", "13.0.1", "13.0", "osx10", "RIBS", ""))

	_, err := ResolveFeed(doc, Options{ProductID: "PHSP"})

	var unsupported *errors.UnsupportedPackageError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "RIBS", unsupported.PackageType)
	assert.Equal(t, "osx10", unsupported.PlatformID)
}

func TestResolveFeed_NoPlatformMatch(t *testing.T) {
	t.Parallel()

	doc := testFeed("ccm", testProduct("PHSP", "20.0.1", "20.0", "win64", "", ""))

	_, err := ResolveFeed(doc, Options{ProductID: "PHSP", Platforms: []string{"osx10", "osx10-64"}})

	var noMatch *errors.NoMatchError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, []string{"osx10", "osx10-64"}, noMatch.Platforms)
}

func TestResolveFeed_PlatformPreferenceOrder(t *testing.T) {
	t.Parallel()

	prod := testProduct("PHSP", "20.0.1", "20.0", "win64", "", "")
	prod.Platforms.Platforms = append(prod.Platforms.Platforms,
		feed.Platform{ID: "osx10-64", LanguageSets: []feed.LanguageSet{{BaseVersion: "20.0-64bit"}}},
		feed.Platform{ID: "osx10", LanguageSets: []feed.LanguageSet{{BaseVersion: "20.0-32bit"}}},
	)

	// The product's own platform order decides, not the requested order.
	result, err := ResolveFeed(testFeed("ccm", prod), Options{
		ProductID: "PHSP",
		Platforms: []string{"osx10", "osx10-64"},
	})
	require.NoError(t, err)
	assert.Equal(t, "20.0-64bit", result.BaseVersion)
}

func TestResolveFeed_IconSelection(t *testing.T) {
	t.Parallel()

	prod := testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", "")
	prod.ProductIcons = feed.IconList{Icons: []feed.Icon{
		{Size: "32x32", Value: "https://cdn.example/icons/32.png"},
		{Size: "96x96", Value: "https://cdn.example/icons/96.png"},
		{Size: "96x96", Value: "https://cdn.example/icons/96-alt.png"},
	}}

	result, err := ResolveFeed(testFeed("ccm", prod), Options{ProductID: "PHSP"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/icons/96.png", result.IconURL)
}

func TestResolveFeed_IconSelection_No96x96(t *testing.T) {
	t.Parallel()

	prod := testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", "")
	prod.ProductIcons = feed.IconList{Icons: []feed.Icon{
		{Size: "32x32", Value: "https://cdn.example/icons/32.png"},
	}}

	result, err := ResolveFeed(testFeed("ccm", prod), Options{ProductID: "PHSP"})
	require.NoError(t, err)
	assert.Empty(t, result.IconURL)
}

func TestResolveFeed_MissingManifestURL(t *testing.T) {
	t.Parallel()

	result, err := ResolveFeed(
		testFeed("ccm", testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", "")),
		Options{ProductID: "PHSP"})
	require.NoError(t, err)
	assert.Empty(t, result.ManifestURL)
}

func TestResolveFeed_ManifestURLNeedsCCMCDN(t *testing.T) {
	t.Parallel()

	// Product lives in sti only; without a ccm CDN base the manifest URL
	// stays unset instead of pointing at a wrong host.
	doc := testFeed("sti", testProduct("PHSP", "20.0.1", "20.0", "osx10-64", "", "/products/PHSP/manifest.xml"))

	result, err := ResolveFeed(doc, Options{ProductID: "PHSP", Channels: []string{"sti"}})
	require.NoError(t, err)
	assert.Empty(t, result.ManifestURL)
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"ccm", "sti"}, r.URL.Query()["channel"])
		assert.Equal(t, []string{"osx10", "osx10-64"}, r.URL.Query()["platform"])
		assert.Equal(t, "true", r.URL.Query().Get("payload"))

		fmt.Fprintln(w, `{
			"channel": [
				{
					"name": "ccm",
					"cdn": {"secure": "https://cdn.example"},
					"products": {
						"product": [
							{
								"id": "PHSP",
								"version": "20.0.0",
								"displayName": "Photoshop CC",
								"family": "CC",
								"productInfoPage": "https://www.example.com/photoshop",
								"productIcons": {"icon": [{"size": "96x96", "value": "https://cdn.example/icons/phsp.png"}]},
								"platforms": {
									"platform": [
										{
											"id": "osx10-64",
											"packageType": "hdPackage",
											"systemCompatibility": {"operatingSystem": {"range": ["10.12.0-99.0.0"]}},
											"languageSet": [
												{"baseVersion": "20.0", "urls": {"manifestURL": "/products/PHSP/manifest.xml"}}
											]
										}
									]
								}
							}
						]
					}
				}
			]
		}`)
	}))
	defer srv.Close()

	resolver := NewResolver(nil, WithEndpoint(srv.URL))

	result, err := resolver.Resolve(context.Background(), Options{ProductID: "PHSP"})
	require.NoError(t, err)

	assert.Equal(t, "20.0.0", result.Version)
	assert.Equal(t, "Photoshop CC", result.DisplayName)
	assert.Equal(t, "20.0", result.BaseVersion)
	assert.Equal(t, "CC", result.Family)
	assert.Equal(t, "https://cdn.example/products/PHSP/manifest.xml", result.ManifestURL)
	assert.Equal(t, "https://cdn.example/icons/phsp.png", result.IconURL)
	assert.Equal(t, "10.12.0", result.MinimumOSVersion)
}

func TestResolver_Resolve_FeedUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	resolver := NewResolver(nil, WithEndpoint(srv.URL))

	_, err := resolver.Resolve(context.Background(), Options{ProductID: "PHSP"})

	var networkErr *errors.NetworkError
	require.ErrorAs(t, err, &networkErr)
	assert.Equal(t, http.StatusBadGateway, networkErr.StatusCode)
}
