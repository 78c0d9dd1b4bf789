package crawl

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.mdx":                  {Data: []byte("# Index")},
		"pages/core/entrypoints.mdx": {Data: []byte("# Entry points")},
		"pages/core/state.mdx":       {Data: []byte("# State")},
		"pages/_meta.json":           {Data: []byte("{}")},
		"pages/readme.md":            {Data: []byte("# Readme")},
	}
}

func TestDiscover(t *testing.T) {
	got, err := Discover(testFS(), "**/*.mdx")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"index.mdx",
		"pages/core/entrypoints.mdx",
		"pages/core/state.mdx",
	}, got)
}

func TestDiscoverBraces(t *testing.T) {
	got, err := Discover(testFS(), "pages/**/*.{md,mdx}")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"pages/core/entrypoints.mdx",
		"pages/core/state.mdx",
		"pages/readme.md",
	}, got)
}

func TestDiscoverNoMatches(t *testing.T) {
	got, err := Discover(testFS(), "**/*.rst")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDiscoverBadPattern(t *testing.T) {
	_, err := Discover(testFS(), "pages/[")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadPattern))
}

func TestIsExternal(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/docs": true,
		"http://example.com":       true,
		"HTTPS://EXAMPLE.COM":      true,
		"/docs/intro":              false,
		"../intro.mdx":             false,
		"#anchor":                  false,
		"mailto:me@example.com":    false,
		"httpfoo":                  false,
		"https://":                 false,
	}
	for input, want := range cases {
		assert.Equal(t, want, IsExternal(input), input)
	}
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com/a", NormalizeURL("https://example.com/a#section"))
	assert.Equal(t, "https://example.com/a?q=1", NormalizeURL("https://example.com/a?q=1"))
}
