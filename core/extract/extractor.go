// Package extract implements the BlockExtractor interface.
// It parses a markdown/MDX document into a goldmark AST and collects the
// fenced code blocks whose info string names both a language and a template.
package extract

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/doctestgen/core"
	"github.com/gaurav-prasanna/doctestgen/core/fence"
)

// MarkdownExtractor pulls annotated code blocks out of markdown.
type MarkdownExtractor struct {
	parser parser.Parser
}

// New creates a MarkdownExtractor using goldmark's CommonMark parser.
func New() *MarkdownExtractor {
	return &MarkdownExtractor{parser: goldmark.DefaultParser()}
}

// Extract returns the actionable code blocks of source in document order.
// Blocks without a language or a template are skipped.
func (e *MarkdownExtractor) Extract(source []byte) []core.CodeBlock {
	doc := e.parser.Parse(text.NewReader(source))

	var blocks []core.CodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		cb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		a := fence.Parse(infoString(cb, source))
		if !a.Actionable() {
			return ast.WalkSkipChildren, nil
		}
		blocks = append(blocks, core.CodeBlock{
			Language: a.Language,
			Template: a.Template,
			Code:     literal(cb, source),
			Index:    len(blocks),
		})
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

func infoString(cb *ast.FencedCodeBlock, source []byte) string {
	if cb.Info == nil {
		return ""
	}
	return string(cb.Info.Segment.Value(source))
}

// literal joins the raw lines of a code block. Segment values already carry
// their trailing newline and any indentation padding.
func literal(cb *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := cb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
