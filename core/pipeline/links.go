package pipeline

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/gaurav-prasanna/doctestgen/core"
	"github.com/gaurav-prasanna/doctestgen/crawl"
)

// ErrBrokenLink marks a failure to resolve an external link or image.
var ErrBrokenLink = errors.New("broken link")

// LinkChecker verifies that every external link and image in the
// documentation resolves.
type LinkChecker struct {
	Docs      fs.FS
	Pattern   string
	Extractor core.LinkExtractor
	Fetcher   core.Fetcher
	Log       zerolog.Logger
}

// Run checks each distinct external URL once, in document order, and
// returns the number of URLs seen. It stops at the first broken link.
func (c *LinkChecker) Run(ctx context.Context) (int, error) {
	docs, err := crawl.Discover(c.Docs, c.Pattern)
	if err != nil {
		return 0, err
	}
	c.Log.Info().Int("count", len(docs)).Str("pattern", c.Pattern).Msg("discovered documents")

	seen := make(map[string]bool)
	for _, doc := range docs {
		src, err := fs.ReadFile(c.Docs, doc)
		if err != nil {
			return len(seen), fmt.Errorf("reading %s: %w", doc, err)
		}
		c.Log.Debug().Str("file", doc).Msg("checking")

		for _, link := range c.Extractor.Links(src) {
			if !crawl.IsExternal(link.URL) {
				continue
			}
			url := crawl.NormalizeURL(link.URL)
			if seen[url] {
				continue
			}
			seen[url] = true
			c.Log.Debug().Str("url", url).Stringer("kind", link.Kind).Msg("found external")

			if _, err := c.Fetcher.Fetch(ctx, url); err != nil {
				err = errors.Wrapf(err, "%s: %s %q is broken", doc, link.Kind, url)
				return len(seen), errors.Mark(err, ErrBrokenLink)
			}
		}
	}
	return len(seen), nil
}
