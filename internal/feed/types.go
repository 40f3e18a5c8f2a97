package feed

// Feed is the top-level products feed document.
type Feed struct {
	Channels []Channel `json:"channel"`
}

// Channel is a release track ("ccm", "sti") grouping product entries.
type Channel struct {
	Name     string      `json:"name"`
	CDN      CDN         `json:"cdn"`
	Products ProductList `json:"products"`
}

// CDN carries the base URLs for a channel's content delivery network.
type CDN struct {
	Secure string `json:"secure"`
}

// ProductList wraps the feed's nested product array.
type ProductList struct {
	Products []Product `json:"product"`
}

// Product is a single product entry within a channel.
type Product struct {
	ID              string       `json:"id"`
	Version         string       `json:"version,omitempty"`
	DisplayName     string       `json:"displayName"`
	Family          string       `json:"family,omitempty"`
	ProductInfoPage string       `json:"productInfoPage,omitempty"`
	ProductIcons    IconList     `json:"productIcons,omitempty"`
	Platforms       PlatformList `json:"platforms"`
}

// IconList wraps the feed's nested icon array.
type IconList struct {
	Icons []Icon `json:"icon"`
}

// Icon is a product icon at a specific pixel size ("96x96").
type Icon struct {
	Size  string `json:"size"`
	Value string `json:"value"`
}

// PlatformList wraps the feed's nested platform array.
type PlatformList struct {
	Platforms []Platform `json:"platform"`
}

// Platform is a per-platform packaging entry of a product.
type Platform struct {
	ID                  string              `json:"id"`
	PackageType         string              `json:"packageType,omitempty"`
	SystemCompatibility SystemCompatibility `json:"systemCompatibility,omitempty"`
	LanguageSets        []LanguageSet       `json:"languageSet,omitempty"`
}

// SystemCompatibility holds the operating system requirements of a platform.
type SystemCompatibility struct {
	OperatingSystem OperatingSystem `json:"operatingSystem"`
}

// OperatingSystem carries dash-delimited min-max version ranges
// ("10.12.0-99.0.0").
type OperatingSystem struct {
	Ranges []string `json:"range"`
}

// LanguageSet is per-locale packaging metadata. The feed's first entry may
// carry the base version and manifest URL for the whole platform.
type LanguageSet struct {
	BaseVersion string          `json:"baseVersion,omitempty"`
	URLs        LanguageSetURLs `json:"urls,omitempty"`
}

// LanguageSetURLs holds the download locations of a language set, relative to
// the channel CDN base.
type LanguageSetURLs struct {
	ManifestURL string `json:"manifestURL,omitempty"`
}

// FirstLanguageSet returns the platform's first language set, or a zero value
// when the feed omits the array.
func (p Platform) FirstLanguageSet() LanguageSet {
	if len(p.LanguageSets) == 0 {
		return LanguageSet{}
	}
	return p.LanguageSets[0]
}

// FirstPlatform returns the product's first platform, or a zero value when
// the feed omits the array.
func (p Product) FirstPlatform() Platform {
	if len(p.Platforms.Platforms) == 0 {
		return Platform{}
	}
	return p.Platforms.Platforms[0]
}
