// Package crawl walks the documentation tree. It discovers the source
// documents both pipelines read, and holds the rules used to pick and
// deduplicate the links found inside them.
package crawl

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is returned for a malformed discovery glob.
var ErrBadPattern = doublestar.ErrBadPattern

// Discover returns the files of fsys matching pattern, sorted. The pattern
// is slash-separated and may use ** to match any number of directories.
// Directories are never returned.
func Discover(fsys fs.FS, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("discovering documents %q: %w", pattern, ErrBadPattern)
	}

	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("discovering documents %q: %w", pattern, err)
	}

	sort.Strings(matches)
	return matches, nil
}
