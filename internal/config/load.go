package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late, at draw time.
func (c *Config) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"render.ocean", c.Render.Ocean},
		{"render.land", c.Render.Land},
		{"render.border", c.Render.Border},
	} {
		if _, err := ParseColor(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	if c.Data.Land == "" || c.Data.Borders == "" {
		return fmt.Errorf("data.land and data.borders are required")
	}
	if c.Render.PrerenderDelay < 0 {
		return fmt.Errorf("render.prerender_delay must not be negative")
	}
	// the spin key can start the ticker even when spin is off
	if c.Globe.SpinInterval <= 0 {
		return fmt.Errorf("globe.spin_interval must be positive")
	}
	if c.Globe.SpinStep <= 0 {
		return fmt.Errorf("globe.spin_step must be positive")
	}
	return nil
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./globemap.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "globemap")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "globemap")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "globemap")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "globemap")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
