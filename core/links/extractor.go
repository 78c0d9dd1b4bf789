// Package links implements the LinkExtractor interface.
// It collects link and image destinations from a markdown/MDX document:
// markdown links, images and autolinks from the goldmark AST, plus href and
// src attributes of raw HTML or JSX tags embedded in the document.
package links

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/doctestgen/core"
)

// MarkdownLinkExtractor pulls link destinations out of markdown.
type MarkdownLinkExtractor struct {
	parser parser.Parser
}

// New creates a MarkdownLinkExtractor.
func New() *MarkdownLinkExtractor {
	return &MarkdownLinkExtractor{parser: goldmark.DefaultParser()}
}

// Links returns every link and image destination in source, in document order.
// Destinations are returned as written; filtering is left to the caller.
func (e *MarkdownLinkExtractor) Links(source []byte) []core.Link {
	doc := e.parser.Parse(text.NewReader(source))

	var out []core.Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Link:
			out = append(out, core.Link{Kind: core.KindLink, URL: string(n.Destination)})
		case *ast.Image:
			out = append(out, core.Link{Kind: core.KindImage, URL: string(n.Destination)})
		case *ast.AutoLink:
			if n.AutoLinkType == ast.AutoLinkURL {
				out = append(out, core.Link{Kind: core.KindLink, URL: string(n.URL(source))})
			}
		case *ast.HTMLBlock:
			var buf bytes.Buffer
			writeLines(&buf, n.Lines(), source)
			if n.HasClosure() {
				buf.Write(n.ClosureLine.Value(source))
			}
			out = append(out, htmlLinks(buf.String())...)
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			var buf bytes.Buffer
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				buf.Write(seg.Value(source))
			}
			out = append(out, htmlLinks(buf.String())...)
		}
		return ast.WalkContinue, nil
	})
	return out
}

func writeLines(buf *bytes.Buffer, lines *text.Segments, source []byte) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
}

// htmlLinks extracts href (links) and src (images and media) attributes
// from an HTML or JSX fragment.
func htmlLinks(fragment string) []core.Link {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var out []core.Link
	doc.Find("[href], [src]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			out = append(out, core.Link{Kind: core.KindLink, URL: href})
		}
		if src, ok := s.Attr("src"); ok && src != "" {
			out = append(out, core.Link{Kind: core.KindImage, URL: src})
		}
	})
	return out
}
