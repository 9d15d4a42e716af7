// internal/config/config.go

// Package config holds the run settings of the dotplot command. Values are
// layered by viper: command-line flags, DOTPLOT_* environment variables, an
// optional YAML config file, then the defaults below.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Setting keys; they double as flag names and config-file keys.
const (
	KeyFirstFile  = "first-file"
	KeySecondFile = "second-file"
	KeyFirstName  = "first-name"
	KeySecondName = "second-name"
	KeyOutput     = "output"
	KeyWidth      = "width"
	KeyWindow     = "window"
	KeyRevCompl   = "revcompl"
	KeySVG        = "svg"
	KeyFormat     = "format"
	KeyThreads    = "threads"
	KeySummary    = "summary"
	KeyVerbose    = "verbose"
	KeyQuiet      = "quiet"
)

// Keys lists every setting.
var Keys = []string{
	KeyFirstFile, KeySecondFile, KeyFirstName, KeySecondName,
	KeyOutput, KeyWidth, KeyWindow, KeyRevCompl, KeySVG, KeyFormat,
	KeyThreads, KeySummary, KeyVerbose, KeyQuiet,
}

// Defaults.
const (
	DefaultWidth  = 0.3
	DefaultWindow = 10
)

// EnvPrefix prefixes environment overrides, e.g. DOTPLOT_WINDOW=12.
const EnvPrefix = "DOTPLOT"

// Config is the decoded set of run settings.
type Config struct {
	// inputs
	FirstFile  string `mapstructure:"first-file"`
	SecondFile string `mapstructure:"second-file"`
	FirstName  string `mapstructure:"first-name"`
	SecondName string `mapstructure:"second-name"`

	// output
	Output  string `mapstructure:"output"`
	Format  string `mapstructure:"format"`
	SVG     bool   `mapstructure:"svg"`
	Summary string `mapstructure:"summary"`

	// matching
	Width    float64 `mapstructure:"width"`
	Window   int     `mapstructure:"window"`
	RevCompl bool    `mapstructure:"revcompl"`

	// performance
	Threads int `mapstructure:"threads"`

	// logging
	Verbose bool `mapstructure:"verbose"`
	Quiet   bool `mapstructure:"quiet"`
}

// New returns a viper instance with defaults and environment lookup wired.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, k := range Keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault(KeyWidth, DefaultWidth)
	v.SetDefault(KeyWindow, DefaultWindow)
	v.SetDefault(KeyThreads, 0)
	return v
}

// ReadFile merges a YAML (or any viper-supported) config file into v.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load decodes the current settings of v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
