// Package cmd implements the CLI commands for doctestgen using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/doctestgen/config"
)

// cli is the state shared by one command tree: every flag is bound to v,
// and setup fills cfg and log before a subcommand runs.
type cli struct {
	v          *viper.Viper
	configFile string

	cfg *config.Config
	log zerolog.Logger
}

// newRootCmd builds the full command tree with its own settings.
func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "doctestgen",
		Short: "doctestgen — turn documentation code samples into test files",
		Long: `doctestgen extracts fenced code samples annotated with a language and a
template from markdown/MDX documentation, and writes each one as a standalone
test file built from that template.

Usage:
  doctestgen generate [flags]
  doctestgen links [flags]`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "TOML config file")
	flags.String("root", config.DefaultRoot, "Documentation root directory")
	flags.String("pattern", config.DefaultPattern, "Glob selecting documents, relative to --root")
	flags.BoolP("verbose", "v", false, "Debug logging")

	config.SetDefaults(c.v)
	config.BindEnv(c.v)
	for _, name := range []string{"root", "pattern", "verbose"} {
		_ = c.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(newGenerateCmd(c), newLinksCmd(c))
	return rootCmd
}

// setup loads the configuration and initializes logging before any subcommand runs.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if c.configFile != "" {
		if err := config.ReadFile(c.v, c.configFile); err != nil {
			return err
		}
	}

	loaded, err := config.Load(c.v)
	if err != nil {
		return err
	}
	c.cfg = loaded
	c.log = newLogger(loaded.Verbose)
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
