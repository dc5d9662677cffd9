// Package canvas provides raster drawing surfaces with a path API modeled
// on a 2D canvas context.
package canvas

import "image/color"

// Context is the drawing surface the map renderers trace paths into.
// Coordinates are in surface units: dots for Braille, pixels for Raster.
type Context interface {
	Size() (width, height int)
	// Clear paints the whole surface with c and drops the current path.
	Clear(c color.Color)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Fill paints the current path's interior, open sub-paths closed implicitly.
	Fill(c color.Color)
	Stroke(c color.Color, width float64)
}

type point struct{ x, y float64 }

type subpath struct {
	pts    []point
	closed bool
}

// path accumulates sub-paths between BeginPath and Fill/Stroke.
type path struct {
	subs []subpath
}

func (p *path) begin() { p.subs = p.subs[:0] }

func (p *path) moveTo(x, y float64) {
	p.subs = append(p.subs, subpath{pts: []point{{x, y}}})
}

func (p *path) lineTo(x, y float64) {
	if len(p.subs) == 0 || p.subs[len(p.subs)-1].closed {
		p.moveTo(x, y)
		return
	}
	last := &p.subs[len(p.subs)-1]
	last.pts = append(last.pts, point{x, y})
}

func (p *path) closePath() {
	if len(p.subs) == 0 {
		return
	}
	p.subs[len(p.subs)-1].closed = true
}

// segments calls fn for each edge; closing edges are included when
// closeAll is set or the sub-path was closed explicitly.
func (p *path) segments(closeAll bool, fn func(a, b point)) {
	for _, s := range p.subs {
		for i := 0; i+1 < len(s.pts); i++ {
			fn(s.pts[i], s.pts[i+1])
		}
		if (closeAll || s.closed) && len(s.pts) > 2 {
			fn(s.pts[len(s.pts)-1], s.pts[0])
		}
	}
}
