// Package config holds the renderer's process-wide settings. Everything
// that used to be a hidden constant — the default font size, the root size
// rem resolves against, the focus ring width — is explicit here and gets
// threaded through resolution calls.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"vermeer/pkg/css"
)

// Config is the renderer configuration. The zero value is not usable;
// start from Default.
type Config struct {
	// ViewportWidth and ViewportHeight size the drawing surface, in
	// pixels. They are read-only for the duration of a paint pass.
	ViewportWidth  float64 `toml:"viewport_width"`
	ViewportHeight float64 `toml:"viewport_height"`

	// DefaultFontSize is the engine-wide initial font size. It scales em
	// units and seeds the font-size cascade at the root.
	DefaultFontSize float64 `toml:"default_font_size"`

	// RootFontSize is what rem units resolve against when LegacyRootEm
	// is false. The embedder should read it off the tree's root node.
	RootFontSize float64 `toml:"root_font_size"`

	// LegacyRootEm pins rem resolution to DefaultFontSize, reproducing
	// the historical fixed-constant behavior for compatibility testing.
	LegacyRootEm bool `toml:"legacy_root_em"`

	// FocusRingWidth is the uniform border width substituted on focused
	// elements.
	FocusRingWidth float64 `toml:"focus_ring_width"`
}

// Default returns the stock configuration: 800x600 viewport, 16px fonts,
// legacy rem behavior, 6px focus ring.
func Default() Config {
	return Config{
		ViewportWidth:   800,
		ViewportHeight:  600,
		DefaultFontSize: css.DefaultFontSize,
		RootFontSize:    css.DefaultFontSize,
		LegacyRootEm:    true,
		FocusRingWidth:  6,
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects sizes a paint pass cannot work with.
func (c Config) Validate() error {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.ViewportWidth, c.ViewportHeight)
	}
	if c.DefaultFontSize <= 0 {
		return fmt.Errorf("default font size must be positive, got %g", c.DefaultFontSize)
	}
	if c.FocusRingWidth < 0 {
		return fmt.Errorf("focus ring width must not be negative, got %g", c.FocusRingWidth)
	}
	return nil
}

// Viewport returns the viewport as a size.
func (c Config) Viewport() css.Size {
	return css.Size{Width: c.ViewportWidth, Height: c.ViewportHeight}
}

// RootSize returns the font size rem units resolve against.
func (c Config) RootSize() float64 {
	if c.LegacyRootEm {
		return c.DefaultFontSize
	}
	return c.RootFontSize
}

// Context builds a ResolveContext for the given container and font size.
func (c Config) Context(containerSize, fontSize float64) css.ResolveContext {
	return css.ResolveContext{
		ContainerSize:   containerSize,
		FontSize:        fontSize,
		RootFontSize:    c.RootSize(),
		DefaultFontSize: c.DefaultFontSize,
		Viewport:        c.Viewport(),
	}
}
