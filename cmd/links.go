// Package cmd — links command.
// Checks that every external link and image in the documentation resolves.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/doctestgen/config"
	"github.com/gaurav-prasanna/doctestgen/core/fetch"
	"github.com/gaurav-prasanna/doctestgen/core/links"
	"github.com/gaurav-prasanna/doctestgen/core/pipeline"
)

func newLinksCmd(c *cli) *cobra.Command {
	linksCmd := &cobra.Command{
		Use:   "links",
		Short: "Check that external links and images resolve",
		Long: `Links walks the same documents as generate and requests every distinct
http(s) link and image once. Any non-2xx response or network failure stops
the run with a non-zero exit status. Requests are never retried.

Examples:
  doctestgen links
  doctestgen links --timeout 10s -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLinks(cmd.Context())
		},
	}

	linksCmd.Flags().Duration("timeout", config.DefaultLinkTimeout, "Per-request timeout")
	_ = c.v.BindPFlag("links.timeout", linksCmd.Flags().Lookup("timeout"))
	return linksCmd
}

func (c *cli) runLinks(ctx context.Context) error {
	checker := &pipeline.LinkChecker{
		Docs:      os.DirFS(c.cfg.Root),
		Pattern:   c.cfg.Pattern,
		Extractor: links.New(),
		Fetcher:   fetch.New(c.cfg.Links.Timeout),
		Log:       c.log.With().Str("root", c.cfg.Root).Logger(),
	}

	n, err := checker.Run(ctx)
	if err != nil {
		return err
	}
	c.log.Info().Int("urls", n).Msg("✓ all links are valid")
	return nil
}
