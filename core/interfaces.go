// Package core defines the shared types and stage interfaces of doctestgen.
// Each stage of both pipelines is a small, testable interface:
//
//	generate: discover → extract blocks → materialize
//	links:    discover → extract links → fetch
package core

import (
	"context"

	"github.com/gaurav-prasanna/doctestgen/core/lang"
)

// CodeBlock is one actionable code sample taken from a document.
type CodeBlock struct {
	Language lang.Language
	Template string
	Code     string // literal source between the fences
	Index    int    // position among actionable blocks of the document, from 0
}

// LinkKind distinguishes hyperlinks from image references.
type LinkKind int

const (
	KindLink LinkKind = iota
	KindImage
)

func (k LinkKind) String() string {
	if k == KindImage {
		return "image"
	}
	return "link"
}

// Link is a link or image destination found in a document.
type Link struct {
	Kind LinkKind
	URL  string
}

// FetchResult holds the outcome of probing a URL.
type FetchResult struct {
	URL        string
	StatusCode int
}

// BlockExtractor yields the actionable code blocks of a document in order.
type BlockExtractor interface {
	Extract(source []byte) []CodeBlock
}

// LinkExtractor yields every link and image destination of a document.
type LinkExtractor interface {
	Links(source []byte) []Link
}

// Materializer renders a block and writes it out, returning the written path.
type Materializer interface {
	Materialize(doc string, block CodeBlock) (string, error)
}

// Fetcher probes a URL and reports its status.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
