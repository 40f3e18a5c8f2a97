package feed

import "net/url"

// DefaultEndpoint is the production products feed endpoint.
const DefaultEndpoint = "https://prod-rel-ffc-ccm.oobesaas.adobe.com/adobe-ffc-external/core/v4/products/all"

// URL builds the feed query URL for the given channels and platforms.
// Channel and platform values are passed through verbatim; the feed itself
// decides what it recognizes.
func URL(endpoint string, channels, platforms []string) string {
	params := url.Values{}
	params.Set("payload", "true")
	params.Set("productType", "Desktop")
	params.Set("_type", "json")
	for _, ch := range channels {
		params.Add("channel", ch)
	}
	for _, pl := range platforms {
		params.Add("platform", pl)
	}

	return endpoint + "?" + encodeOrdered(params)
}

// encodeOrdered encodes query parameters in the order the feed expects:
// fixed parameters first, then repeated channel and platform values.
// url.Values.Encode sorts keys alphabetically, which would interleave them.
func encodeOrdered(params url.Values) string {
	var buf []byte
	for _, key := range []string{"payload", "productType", "_type", "channel", "platform"} {
		for _, v := range params[key] {
			if len(buf) > 0 {
				buf = append(buf, '&')
			}
			buf = append(buf, url.QueryEscape(key)...)
			buf = append(buf, '=')
			buf = append(buf, url.QueryEscape(v)...)
		}
	}
	return string(buf)
}
