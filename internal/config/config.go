// Package config handles configuration loading for globemap.
package config

import "time"

// Config holds all settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Render  RenderConfig  `yaml:"render"`
	Globe   GlobeConfig   `yaml:"globe"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds the dataset sources: file paths or http(s) URLs.
type DataConfig struct {
	Land    string `yaml:"land"`
	Borders string `yaml:"borders"`
}

// RenderConfig holds 2D map settings. Colors are hex strings.
type RenderConfig struct {
	PrerenderDelay time.Duration `yaml:"prerender_delay"`
	Ocean          string        `yaml:"ocean"`
	Land           string        `yaml:"land"`
	Border         string        `yaml:"border"`
	BorderWidth    float64       `yaml:"border_width"`
}

// GlobeConfig holds 3D globe settings.
type GlobeConfig struct {
	StartLon     float64       `yaml:"start_lon"`
	StartLat     float64       `yaml:"start_lat"`
	Spin         bool          `yaml:"spin"`
	SpinInterval time.Duration `yaml:"spin_interval"`
	SpinStep     float64       `yaml:"spin_step"`
	Graticule    bool          `yaml:"graticule"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Land:    "data/land.geojson",
			Borders: "data/borders.geojson",
		},
		Render: RenderConfig{
			PrerenderDelay: 100 * time.Millisecond,
			Ocean:          "#0B2545",
			Land:           "#3E7C4F",
			Border:         "#E6E6E6",
			BorderWidth:    1,
		},
		Globe: GlobeConfig{
			StartLon:     0,
			StartLat:     20,
			Spin:         true,
			SpinInterval: 150 * time.Millisecond,
			SpinStep:     2,
			Graticule:    true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "globemap.log",
		},
	}
}
