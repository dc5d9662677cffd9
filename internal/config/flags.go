package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLand    = flag.String("land", "", "Land dataset (path or http(s) URL)")
	flagBorders = flag.String("borders", "", "Borders dataset (path or http(s) URL)")
	flagNoSpin  = flag.Bool("no-spin", false, "Do not spin the globe")
	flagExport  = flag.String("export", "", "Render the 2D map to this PNG file and exit")
	flagWidth   = flag.Int("width", 1440, "Export width in pixels")
	flagHeight  = flag.Int("height", 720, "Export height in pixels")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Export returns the PNG export target and size; path is empty for the
// interactive mode.
func Export() (path string, width, height int) {
	return *flagExport, *flagWidth, *flagHeight
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLand != "" {
		cfg.Data.Land = *flagLand
	}
	if *flagBorders != "" {
		cfg.Data.Borders = *flagBorders
	}
	if *flagNoSpin {
		cfg.Globe.Spin = false
	}
}
