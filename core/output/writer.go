// Package output materializes code blocks: it resolves a block's template,
// renders the sample into it and writes the result under the output
// directory of the block's language.
//
// File names are flat and derived from the document path, e.g.
// pages/core/entrypoints.mdx, block 0, template core →
// tests/pages_core_entrypoints_mdx_core_0.rs
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/gaurav-prasanna/doctestgen/core"
	"github.com/gaurav-prasanna/doctestgen/core/lang"
	"github.com/gaurav-prasanna/doctestgen/core/templates"
)

// ErrUnknownTemplate is returned when a block names a template that is not registered.
var ErrUnknownTemplate = errors.New("unknown template")

// Writer writes rendered code blocks to disk.
type Writer struct {
	OutputDir string
	Templates *templates.Registry
	// DryRun renders and resolves paths but skips every filesystem change.
	DryRun bool
}

// New creates a Writer rooted at outputDir.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string, registry *templates.Registry) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}
	return &Writer{OutputDir: outputDir, Templates: registry}, nil
}

// EnsureDirs creates the output directory of every language. Existing
// directories are left alone.
func (w *Writer) EnsureDirs() error {
	if w.DryRun {
		return nil
	}
	for _, l := range lang.All() {
		dir := w.dirFor(l)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// Materialize renders block into its template and writes it, overwriting
// any previous file at the same path. doc is the document path the block
// came from, relative to the documentation root.
func (w *Writer) Materialize(doc string, block core.CodeBlock) (string, error) {
	tpl, ok := w.Templates.Lookup(block.Template)
	if !ok {
		err := errors.Wrapf(ErrUnknownTemplate, "%s: block %d: template %q", doc, block.Index, block.Template)
		return "", errors.WithHintf(err, "available templates: %s", strings.Join(w.Templates.Names(), ", "))
	}

	path := w.Path(doc, block)
	if w.DryRun {
		return path, nil
	}

	if err := os.WriteFile(path, []byte(tpl.Render(block.Code)), 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Path returns the file block from doc is written to. It does not check
// the template.
func (w *Writer) Path(doc string, block core.CodeBlock) string {
	return filepath.Join(w.dirFor(block.Language), Filename(doc, block))
}

func (w *Writer) dirFor(l lang.Language) string {
	return filepath.Join(w.OutputDir, l.Dir())
}

// Filename returns the flat output file name for block taken from doc:
// <flattened doc>_<template>_<index>.<ext>
func Filename(doc string, block core.CodeBlock) string {
	return fmt.Sprintf("%s_%s_%d.%s",
		sanitize(filepath.ToSlash(doc)),
		sanitize(block.Template),
		block.Index,
		block.Language.Ext(),
	)
}

// sanitize replaces non-alphanumeric characters with underscores, which
// flattens separators, dots and parent-directory markers alike. Distinct
// paths can flatten to the same name; the generator rejects such runs.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
