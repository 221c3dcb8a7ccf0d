package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"LocalPaint/internal/tools"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = "localpaint.yaml"

// Config represents the optional localpaint.yaml configuration.
type Config struct {
	Canvas         CanvasConfig `yaml:"canvas"`
	Brush          BrushConfig  `yaml:"brush"`
	Spray          SprayConfig  `yaml:"spray"`
	Tool           string       `yaml:"tool,omitempty"`
	TrustedOrigins []string     `yaml:"trusted_origins,omitempty"`
}

// CanvasConfig sets the initial surface size in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// BrushConfig sets the brush sizes offered and the starting colour.
type BrushConfig struct {
	Sizes []float64 `yaml:"sizes,omitempty"`
	Color string    `yaml:"color,omitempty"`
}

// SprayConfig sets the repaint interval of the spray tool.
type SprayConfig struct {
	Interval string `yaml:"interval,omitempty"`
}

// Resolved contains validated configuration values with defaults applied.
type Resolved struct {
	Width          int
	Height         int
	BrushSizes     []float64
	Color          color.NRGBA
	SprayInterval  time.Duration
	Tool           tools.Name
	TrustedOrigins []string
}

// DefaultBrushSizes are the sizes offered by the brush size selector.
var DefaultBrushSizes = []float64{1, 2, 3, 5, 8, 12, 25, 35, 50, 75, 100}

// LoadOptional reads the config at path if present. A missing file is
// not an error and yields an empty Config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve loads path (if present), applies defaults and validates.
func Resolve(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve applies defaults to cfg and validates every field.
func (cfg *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		Width:          cfg.Canvas.Width,
		Height:         cfg.Canvas.Height,
		BrushSizes:     cfg.Brush.Sizes,
		SprayInterval:  tools.DefaultSprayInterval,
		Tool:           tools.Line,
		TrustedOrigins: cfg.TrustedOrigins,
	}

	if r.Width == 0 {
		r.Width = 1000
	}
	if r.Height == 0 {
		r.Height = 600
	}
	if r.Width < 0 || r.Height < 0 {
		return nil, fmt.Errorf("canvas: size must be positive, got %dx%d", r.Width, r.Height)
	}

	if len(r.BrushSizes) == 0 {
		r.BrushSizes = DefaultBrushSizes
	}
	for _, s := range r.BrushSizes {
		if s <= 0 {
			return nil, fmt.Errorf("brush.sizes: size must be positive, got %v", s)
		}
	}

	hex := strings.TrimSpace(cfg.Brush.Color)
	if hex == "" {
		hex = "#000000"
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("brush.color: %w", err)
	}
	red, green, blue := c.RGB255()
	r.Color = color.NRGBA{R: red, G: green, B: blue, A: 255}

	if iv := strings.TrimSpace(cfg.Spray.Interval); iv != "" {
		d, err := time.ParseDuration(iv)
		if err != nil {
			return nil, fmt.Errorf("spray.interval: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("spray.interval: must be positive, got %s", d)
		}
		r.SprayInterval = d
	}

	if name := strings.TrimSpace(cfg.Tool); name != "" {
		n, ok := tools.ParseName(name)
		if !ok {
			return nil, fmt.Errorf("tool: unknown tool %q", name)
		}
		r.Tool = n
	}

	return r, nil
}

// Trusted reports whether images from host may be exported again.
func (r *Resolved) Trusted(host string) bool {
	for _, o := range r.TrustedOrigins {
		if strings.EqualFold(strings.TrimSpace(o), host) {
			return true
		}
	}
	return false
}
