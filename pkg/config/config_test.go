package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vermeer/pkg/css"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, css.Size{Width: 800, Height: 600}, cfg.Viewport())
	assert.Equal(t, 16.0, cfg.DefaultFontSize)
	assert.True(t, cfg.LegacyRootEm)
	assert.Equal(t, 6.0, cfg.FocusRingWidth)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vermeer.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
viewport_width = 1024
viewport_height = 768
default_font_size = 18
root_font_size = 20
legacy_root_em = false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.ViewportWidth)
	assert.Equal(t, 768.0, cfg.ViewportHeight)
	assert.Equal(t, 18.0, cfg.DefaultFontSize)
	assert.Equal(t, 20.0, cfg.RootSize())
	assert.Equal(t, 6.0, cfg.FocusRingWidth, "unset keys keep their defaults")
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("viewport_width = -10\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"zero viewport width":     func(c *Config) { c.ViewportWidth = 0 },
		"negative viewport height": func(c *Config) { c.ViewportHeight = -1 },
		"zero font size":          func(c *Config) { c.DefaultFontSize = 0 },
		"negative focus ring":     func(c *Config) { c.FocusRingWidth = -2 },
	}
	for name, mutate := range tests {
		cfg := Default()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestRootSize_LegacyPinning(t *testing.T) {
	cfg := Default()
	cfg.RootFontSize = 24
	assert.Equal(t, 16.0, cfg.RootSize(), "legacy mode ignores the configured root size")

	cfg.LegacyRootEm = false
	assert.Equal(t, 24.0, cfg.RootSize())
}

func TestContext(t *testing.T) {
	cfg := Default()
	cfg.RootFontSize = 20
	cfg.LegacyRootEm = false

	ctx := cfg.Context(300, 18)
	assert.Equal(t, 300.0, ctx.ContainerSize)
	assert.Equal(t, 18.0, ctx.FontSize)
	assert.Equal(t, 20.0, ctx.RootFontSize)
	assert.Equal(t, 16.0, ctx.DefaultFontSize)
	assert.Equal(t, cfg.Viewport(), ctx.Viewport)
}
