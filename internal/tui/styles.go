package tui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"globemap/internal/config"
	"globemap/internal/globe"
	"globemap/internal/mapdraw"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	warnFg    = lipgloss.Color("#FFA500")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	buttonStyle = lipgloss.NewStyle().Foreground(baseFg).Background(borderCol).Padding(0, 1)
	busyStyle   = buttonStyle.Foreground(baseDimFg)
	retryStyle  = buttonStyle.Foreground(warnFg).Bold(true)
)

// globe colors are fixed; the map colors come from the config
var (
	globeOutline   = color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}
	globeGraticule = color.RGBA{R: 0x24, G: 0x31, B: 0x41, A: 0xFF}
)

// MapStyle converts the configured colors. The config is validated on
// load, so parse errors fall back to black.
func MapStyle(cfg *config.Config) mapdraw.Style {
	return mapdraw.Style{
		Ocean:       colorOrBlack(cfg.Render.Ocean),
		Land:        colorOrBlack(cfg.Render.Land),
		Border:      colorOrBlack(cfg.Render.Border),
		BorderWidth: cfg.Render.BorderWidth,
	}
}

func globeStyle(cfg *config.Config) globe.Style {
	st := globe.Style{
		Outline:   globeOutline,
		Coastline: colorOrBlack(cfg.Render.Land),
		Border:    colorOrBlack(cfg.Render.Border),
	}
	if cfg.Globe.Graticule {
		st.Graticule = globeGraticule
	}
	return st
}

func colorOrBlack(s string) color.Color {
	c, err := config.ParseColor(s)
	if err != nil {
		return color.Black
	}
	return c
}
