package mapdraw

import (
	"errors"
	"image/color"

	"go.uber.org/zap"

	"globemap/internal/canvas"
	"globemap/internal/geom"
)

var ErrNotReady = errors.New("land and border datasets are not both loaded")

// Style holds the colors of the composed map.
type Style struct {
	Ocean       color.Color
	Land        color.Color
	Border      color.Color
	BorderWidth float64
}

// Cache composes the 2D map once into an offscreen surface and keeps it
// until the datasets change or the cache is invalidated.
type Cache[S canvas.Context] struct {
	newSurface func(w, h int) S
	style      Style
	log        *zap.Logger

	land    *geom.FeatureCollection
	borders *geom.FeatureCollection

	surface  S
	w, h     int
	rendered bool
	renders  int
}

// NewCache returns an empty cache. newSurface builds the offscreen surface
// for a given size.
func NewCache[S canvas.Context](newSurface func(w, h int) S, style Style, log *zap.Logger) *Cache[S] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache[S]{newSurface: newSurface, style: style, log: log}
}

func (c *Cache[S]) SetLand(fc *geom.FeatureCollection) {
	c.land = fc
	c.rendered = false
}

func (c *Cache[S]) SetBorders(fc *geom.FeatureCollection) {
	c.borders = fc
	c.rendered = false
}

// Ready reports whether both datasets are loaded, in whichever order.
func (c *Cache[S]) Ready() bool { return c.land != nil && c.borders != nil }

// Rendered reports whether the surface holds a valid composition.
func (c *Cache[S]) Rendered() bool { return c.rendered }

// Renders counts the compositions done so far.
func (c *Cache[S]) Renders() int { return c.renders }

// Invalidate forces the next Render to compose again.
func (c *Cache[S]) Invalidate() { c.rendered = false }

// Surface returns the composed surface. It is the zero value until the
// first Render.
func (c *Cache[S]) Surface() S { return c.surface }

// Render composes ocean, land fill and border stroke passes into a new
// offscreen surface of w x h. It does nothing and returns false while the
// cached composition is still valid for that size.
func (c *Cache[S]) Render(w, h int) (bool, error) {
	if !c.Ready() {
		return false, ErrNotReady
	}
	if c.rendered && c.w == w && c.h == h {
		return false, nil
	}
	s := c.newSurface(w, h)
	s.Clear(c.style.Ocean)
	land := DrawFeatures(s, c.land, Paint{Fill: c.style.Land}, c.log)
	borders := DrawFeatures(s, c.borders, Paint{Stroke: c.style.Border, StrokeWidth: c.style.BorderWidth}, c.log)

	c.surface = s
	c.w, c.h = w, h
	c.rendered = true
	c.renders++
	c.log.Debug("composed map",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("land_paths", land.Paths),
		zap.Int("land_skipped", land.Skipped),
		zap.Int("border_paths", borders.Paths),
		zap.Int("border_skipped", borders.Skipped))
	return true, nil
}
