// Package config loads the optional refresh.yaml that tunes refresh controls
// and the surfaces used by the demo and trace replays.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	drifterrors "github.com/go-drift/refresh/pkg/errors"
	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/refresh"
)

// FileName is the name LoadOptional looks for.
const FileName = "refresh.yaml"

// Config represents refresh.yaml.
type Config struct {
	Header  HeaderConfig  `yaml:"header"`
	Footer  FooterConfig  `yaml:"footer"`
	Surface SurfaceConfig `yaml:"surface"`
	Demo    DemoConfig    `yaml:"demo"`
}

// HeaderConfig sizes the pull to refresh header.
type HeaderConfig struct {
	Height           float64 `yaml:"height" validate:"gt=0"`
	FireHeight       float64 `yaml:"fire_height" validate:"gt=0"`
	RefreshingHeight float64 `yaml:"refreshing_height" validate:"gt=0,ltefield=Height"`
}

// FooterConfig sizes the load more footer and selects its trigger mode.
type FooterConfig struct {
	Height             float64 `yaml:"height" validate:"gt=0"`
	Mode               string  `yaml:"mode" validate:"oneof=scroll tap scroll_and_tap"`
	LoadWhileScrolling bool    `yaml:"load_while_scrolling"`
}

// SurfaceConfig describes the initial geometry of a scroll surface.
type SurfaceConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width" validate:"gte=0"`
	ViewportHeight float64 `yaml:"viewport_height" validate:"gt=0"`
	ContentHeight  float64 `yaml:"content_height" validate:"gte=0"`
	InsetTop       float64 `yaml:"inset_top" validate:"gte=0"`
	InsetBottom    float64 `yaml:"inset_bottom" validate:"gte=0"`
	Bouncing       bool    `yaml:"bouncing"`
}

// DemoConfig tunes the interactive demo.
type DemoConfig struct {
	// LoadDelay simulates the duration of a refresh or page load.
	LoadDelay time.Duration `yaml:"load_delay" validate:"gte=0"`
	// PageSize is the number of rows appended per page.
	PageSize int `yaml:"page_size" validate:"gt=0"`
	// MaxPages switches the footer to no more data after this many pages.
	// Zero means unlimited.
	MaxPages int `yaml:"max_pages" validate:"gte=0"`
}

// Default returns the configuration used when refresh.yaml is absent.
func Default() *Config {
	return &Config{
		Header: HeaderConfig{
			Height:           refresh.DefaultHeaderHeight,
			FireHeight:       refresh.DefaultHeaderHeight,
			RefreshingHeight: refresh.DefaultHeaderHeight,
		},
		Footer: FooterConfig{
			Height: refresh.DefaultFooterHeight,
			Mode:   refresh.ModeScrollAndTap.String(),
		},
		Surface: SurfaceConfig{
			ViewportWidth:  320,
			ViewportHeight: 500,
			ContentHeight:  1000,
			Bouncing:       true,
		},
		Demo: DemoConfig{
			LoadDelay: 1200 * time.Millisecond,
			PageSize:  20,
			MaxPages:  5,
		},
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &drifterrors.RefreshError{Op: "config.Parse", Kind: drifterrors.KindConfig, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &drifterrors.RefreshError{Op: "config.Load", Kind: drifterrors.KindConfig, Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		var refreshErr *drifterrors.RefreshError
		if errors.As(err, &refreshErr) {
			refreshErr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// LoadOptional reads refresh.yaml from dir if present, and returns the
// defaults otherwise.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, &drifterrors.RefreshError{Op: "config.LoadOptional", Kind: drifterrors.KindConfig, Path: path, Err: err}
	}
	return Load(path)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := Struct(c); err != nil {
		return &drifterrors.RefreshError{
			Op:   "config.Validate",
			Kind: drifterrors.KindConfig,
			Err:  fmt.Errorf("invalid configuration: %w", err),
		}
	}
	return nil
}

// FooterMode returns the parsed footer mode.
func (c FooterConfig) FooterMode() refresh.FooterMode {
	mode, err := refresh.ParseFooterMode(c.Mode)
	if err != nil {
		return refresh.ModeScrollAndTap
	}
	return mode
}

// Viewport returns the viewport size.
func (c SurfaceConfig) Viewport() graphics.Size {
	return graphics.Size{Width: c.ViewportWidth, Height: c.ViewportHeight}
}

// Inset returns the initial content inset.
func (c SurfaceConfig) Inset() graphics.EdgeInsets {
	return graphics.EdgeInsets{Top: c.InsetTop, Bottom: c.InsetBottom}
}
