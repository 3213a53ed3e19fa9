package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	opts := Default()
	assert.Equal(t, 5, opts.Spacing)
	assert.Equal(t, 800, opts.ViewportWidth)
	assert.Equal(t, 600, opts.ViewportHeight)
	assert.Equal(t, tracing.LevelError, opts.Level())
	assert.Empty(t, opts.Stylesheets)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.yaml")
	yaml := []byte(`
spacing: 8
viewport_width: 1024
trace_level: Debug
stylesheets:
  - base.css
  - theme.css
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, opts.Spacing)
	assert.Equal(t, 1024, opts.ViewportWidth)
	assert.Equal(t, 600, opts.ViewportHeight)
	assert.Equal(t, tracing.LevelDebug, opts.Level())
	assert.Equal(t, []string{"base.css", "theme.css"}, opts.Stylesheets)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BOXSTYLE_SPACING", "12")
	t.Setenv("BOXSTYLE_VIEWPORT_HEIGHT", "480")
	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, opts.Spacing)
	assert.Equal(t, 480, opts.ViewportHeight)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("spacing", -1)
	_, err := FromViper(v)
	assert.True(t, errors.Is(err, ErrInvalidOption))
	//
	v = viper.New()
	SetDefaults(v)
	v.Set("trace_level", "verbose")
	_, err = FromViper(v)
	assert.True(t, errors.Is(err, ErrInvalidOption))
	//
	v = viper.New()
	SetDefaults(v)
	v.Set("viewport_width", -640)
	_, err = FromViper(v)
	assert.True(t, errors.Is(err, ErrInvalidOption))
}
