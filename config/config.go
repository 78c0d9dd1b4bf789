// Package config loads doctestgen settings with Viper.
//
// Precedence (lowest to highest): defaults < config file < environment
// (DOCTESTGEN_*) < command-line flags. With nothing set, the defaults
// reproduce the fixed layout: documents under src/ matching **/*.mdx,
// generated files under the current directory.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "DOCTESTGEN"

	DefaultRoot        = "src"
	DefaultPattern     = "**/*.mdx"
	DefaultOutDir      = "."
	DefaultLinkTimeout = 30 * time.Second
)

// Config is the full set of run settings.
type Config struct {
	Root    string      `mapstructure:"root"`
	Pattern string      `mapstructure:"pattern"`
	Out     string      `mapstructure:"out"`
	Verbose bool        `mapstructure:"verbose"`
	Links   LinksConfig `mapstructure:"links"`
}

// LinksConfig configures the link checker.
type LinksConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("root", DefaultRoot)
	v.SetDefault("pattern", DefaultPattern)
	v.SetDefault("out", DefaultOutDir)
	v.SetDefault("verbose", false)
	v.SetDefault("links.timeout", DefaultLinkTimeout)
}

// BindEnv makes every key readable from DOCTESTGEN_<KEY>, with dots
// replaced by underscores (links.timeout → DOCTESTGEN_LINKS_TIMEOUT).
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile merges the TOML file at path into v.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("invalid config: root must not be empty")
	}
	if strings.TrimSpace(c.Pattern) == "" {
		return fmt.Errorf("invalid config: pattern must not be empty")
	}
	if c.Links.Timeout <= 0 {
		return fmt.Errorf("invalid config: links.timeout must be positive, got %s", c.Links.Timeout)
	}
	return nil
}
