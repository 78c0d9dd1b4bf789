// Package cmd — generate command.
// Runs the materialization pipeline: discover → extract → materialize.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/doctestgen/config"
	"github.com/gaurav-prasanna/doctestgen/core/extract"
	"github.com/gaurav-prasanna/doctestgen/core/output"
	"github.com/gaurav-prasanna/doctestgen/core/pipeline"
	"github.com/gaurav-prasanna/doctestgen/core/templates"
)

func newGenerateCmd(c *cli) *cobra.Command {
	var dryRun bool

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Materialize annotated code samples into test files",
		Long: `Generate scans the documentation for fenced code blocks whose info string
names a language and a template, e.g.

  ` + "```rust template=\"core\"" + `

and writes each one, wrapped in its template, to the language's test
directory (tests/ for Rust, go_tests/ for Go). Existing files are overwritten.

Examples:
  doctestgen generate
  doctestgen generate --root docs --pattern '**/*.md' --out build
  doctestgen generate --dry-run -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(dryRun)
		},
	}

	generateCmd.Flags().String("out", config.DefaultOutDir, "Directory holding the per-language test directories")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve templates and paths without writing")
	_ = c.v.BindPFlag("out", generateCmd.Flags().Lookup("out"))
	return generateCmd
}

func (c *cli) runGenerate(dryRun bool) error {
	writer, err := output.New(c.cfg.Out, templates.Builtin())
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	writer.DryRun = dryRun

	gen := &pipeline.Generator{
		Docs:      os.DirFS(c.cfg.Root),
		Pattern:   c.cfg.Pattern,
		Extractor: extract.New(),
		Writer:    writer,
		DryRun:    dryRun,
		Log:       c.log.With().Str("root", c.cfg.Root).Logger(),
	}

	sum, err := gen.Run()
	if err != nil {
		return err
	}
	c.log.Info().
		Int("documents", sum.Documents).
		Int("blocks", sum.Blocks).
		Int("files", sum.Files).
		Int("planned", sum.Planned).
		Bool("dry_run", dryRun).
		Msg("✓ generation complete")
	return nil
}
