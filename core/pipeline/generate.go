// Package pipeline drives the two doctestgen runs over a documentation tree.
//
// Generator: discover → read → extract blocks → materialize.
// LinkChecker: discover → read → extract links → fetch.
//
// Both stop at the first error; there is no per-document isolation.
package pipeline

import (
	"fmt"
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/gaurav-prasanna/doctestgen/core"
	"github.com/gaurav-prasanna/doctestgen/crawl"
)

// ErrDuplicateOutput is returned when two blocks resolve to the same output file.
var ErrDuplicateOutput = errors.New("duplicate output path")

// Writer materializes blocks. EnsureDirs runs once before the first block.
type Writer interface {
	core.Materializer
	EnsureDirs() error
	Path(doc string, block core.CodeBlock) string
}

// Summary counts what a generation run did.
type Summary struct {
	Documents int // documents discovered
	Blocks    int // actionable blocks extracted
	Files     int // files written
	Planned   int // files a dry run would have written
}

type origin struct {
	doc   string
	index int
}

// Generator materializes the annotated code blocks of every document.
type Generator struct {
	Docs      fs.FS  // documentation root
	Pattern   string // discovery glob, relative to Docs
	Extractor core.BlockExtractor
	Writer    Writer
	DryRun    bool // reporting only; the Writer decides whether to touch disk
	Log       zerolog.Logger

	claimed map[string]origin
}

// Run processes every discovered document in order.
func (g *Generator) Run() (Summary, error) {
	var sum Summary
	g.claimed = make(map[string]origin)

	docs, err := crawl.Discover(g.Docs, g.Pattern)
	if err != nil {
		return sum, err
	}
	sum.Documents = len(docs)
	g.Log.Info().Int("count", len(docs)).Str("pattern", g.Pattern).Msg("discovered documents")

	if err := g.Writer.EnsureDirs(); err != nil {
		return sum, fmt.Errorf("preparing output: %w", err)
	}

	for _, doc := range docs {
		if err := g.processDocument(doc, &sum); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func (g *Generator) processDocument(doc string, sum *Summary) error {
	src, err := fs.ReadFile(g.Docs, doc)
	if err != nil {
		return fmt.Errorf("reading %s: %w", doc, err)
	}

	blocks := g.Extractor.Extract(src)
	sum.Blocks += len(blocks)
	g.Log.Debug().Str("file", doc).Int("blocks", len(blocks)).Msg("extracted")

	for _, block := range blocks {
		if err := g.claim(doc, block); err != nil {
			return err
		}
		path, err := g.Writer.Materialize(doc, block)
		if err != nil {
			return err
		}
		if g.DryRun {
			sum.Planned++
			g.Log.Info().Str("path", path).Str("template", block.Template).Msg("would write")
			continue
		}
		sum.Files++
		g.Log.Info().Str("path", path).Str("template", block.Template).Msg("written")
	}
	return nil
}

// claim reserves the output path of block, failing if an earlier block of
// the run already resolved to it.
func (g *Generator) claim(doc string, block core.CodeBlock) error {
	path := g.Writer.Path(doc, block)
	if prev, ok := g.claimed[path]; ok {
		err := errors.Wrapf(ErrDuplicateOutput, "%s: block %d and %s: block %d both map to %s",
			prev.doc, prev.index, doc, block.Index, path)
		return errors.WithHint(err, "rename one of the documents so their flattened names differ")
	}
	g.claimed[path] = origin{doc: doc, index: block.Index}
	return nil
}
