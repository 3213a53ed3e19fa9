/*
Package config holds the options of a screen: spacing of stack layouts,
size of the viewport, stylesheets to load and the trace level of the engine.

Options are read with viper from a configuration file (YAML, TOML or JSON,
by file extension) and from environment variables prefixed by BOXSTYLE_,
e.g. BOXSTYLE_SPACING=8.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/viper"
)

// ErrInvalidOption is returned for options with illegal values.
var ErrInvalidOption = errors.New("invalid configuration option")

// TraceKeys are the trace keys used by the packages of this module.
var TraceKeys = []string{
	"boxstyle.tree",
	"boxstyle.style",
	"boxstyle.cssom",
	"boxstyle.scene",
	"boxstyle.layout",
	"boxstyle.event",
	"boxstyle.input",
	"boxstyle.screen",
}

// Options configure a screen.
type Options struct {
	Spacing        int      `mapstructure:"spacing"`         // spacing of stack layouts in pixels
	ViewportWidth  int      `mapstructure:"viewport_width"`  // size of the viewport windows are attached to
	ViewportHeight int      `mapstructure:"viewport_height"` // in pixels
	TraceLevel     string   `mapstructure:"trace_level"`     // Error, Info or Debug
	Stylesheets    []string `mapstructure:"stylesheets"`     // CSS files, loaded in order
}

// SetDefaults sets the default options of v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("spacing", 5)
	v.SetDefault("viewport_width", 800)
	v.SetDefault("viewport_height", 600)
	v.SetDefault("trace_level", "Error")
	v.SetDefault("stylesheets", []string{})
}

// Default returns the default options.
func Default() *Options {
	v := viper.New()
	SetDefaults(v)
	opts, err := FromViper(v)
	if err != nil {
		panic(fmt.Sprintf("default options are invalid: %v", err))
	}
	return opts
}

// Load reads options from a configuration file and from the environment. If
// path is empty, only the environment is consulted.
func Load(path string) (*Options, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("BOXSTYLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading configuration %s: %w", path, err)
		}
		tracing.Select("boxstyle.screen").Infof("configuration read from %s", path)
	}
	return FromViper(v)
}

// FromViper extracts and validates the options held by v.
func FromViper(v *viper.Viper) (*Options, error) {
	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Validate checks the options for illegal values.
func (o *Options) Validate() error {
	if o.Spacing < 0 {
		return fmt.Errorf("%w: spacing must not be negative, is %d", ErrInvalidOption, o.Spacing)
	}
	if o.ViewportWidth < 0 || o.ViewportHeight < 0 {
		return fmt.Errorf("%w: viewport size must not be negative, is %dx%d", ErrInvalidOption,
			o.ViewportWidth, o.ViewportHeight)
	}
	if _, ok := traceLevels[strings.ToLower(o.TraceLevel)]; !ok {
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalidOption, o.TraceLevel)
	}
	return nil
}

var traceLevels = map[string]tracing.TraceLevel{
	"":      tracing.LevelError,
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}

// Level returns the trace level of the options.
func (o *Options) Level() tracing.TraceLevel {
	return traceLevels[strings.ToLower(o.TraceLevel)]
}

// ApplyTracing sets the trace level for all trace keys of this module.
func (o *Options) ApplyTracing() {
	for _, key := range TraceKeys {
		tracing.Select(key).SetTraceLevel(o.Level())
	}
}
