// Package crawl — link filtering rules.
// Provides helpers to decide which links are checked over the network and
// to normalize them so each URL is checked once.
package crawl

import (
	"net/url"
	"strings"
)

// IsExternal reports whether a link destination points at an http(s) URL.
// Relative links, anchors and other schemes are resolved by the site
// build, not over the network.
func IsExternal(rawURL string) bool {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

// NormalizeURL strips fragments for deduplication. Two links that only
// differ in their fragment address the same resource.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	parsed.RawFragment = ""
	return parsed.String()
}
