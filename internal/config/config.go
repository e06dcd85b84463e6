// Package config handles configuration loading and run defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure. Every field has
// a working default, the file only needs to name what differs.
type Config struct {
	// Colors overrides display colors per zone type, as #RRGGBB values.
	Colors map[string]string `yaml:"colors,omitempty"`

	ImageFormat  string  `yaml:"image_format,omitempty"` // png or webp
	TableFormat  string  `yaml:"table_format,omitempty"` // markdown or wiki
	Scale        float64 `yaml:"scale,omitempty"`        // pixels per block
	WebpQuality  float32 `yaml:"webp_quality,omitempty"`
	PreviewWidth int     `yaml:"preview_width,omitempty"`
}

// Default returns the built-in configuration: 1 px per block minimap
// exports, PNG output and markdown tables.
func Default() *Config {
	return &Config{
		ImageFormat:  "png",
		TableFormat:  "markdown",
		Scale:        1,
		WebpQuality:  85,
		PreviewWidth: 640,
	}
}

// Load reads and parses the YAML configuration file from the specified path,
// filling unset fields from the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) check() error {
	switch c.ImageFormat {
	case "png", "webp":
	default:
		return fmt.Errorf("unsupported image format %q", c.ImageFormat)
	}

	switch c.TableFormat {
	case "markdown", "wiki":
	default:
		return fmt.Errorf("unsupported table format %q", c.TableFormat)
	}

	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}

	return nil
}
