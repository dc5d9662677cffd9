package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Raster is an RGBA pixel surface rasterized with golang.org/x/image/vector.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
	p   path
}

func NewRaster(w, h int) *Raster {
	w, h = max(w, 1), max(h, 1)
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the composed pixels.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	r.p.begin()
}

func (r *Raster) BeginPath()          { r.p.begin() }
func (r *Raster) MoveTo(x, y float64) { r.p.moveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.p.lineTo(x, y) }
func (r *Raster) ClosePath()          { r.p.closePath() }

func (r *Raster) Fill(c color.Color) {
	w, h := r.Size()
	r.z.Reset(w, h)
	for _, s := range r.p.subs {
		if len(s.pts) < 2 {
			continue
		}
		r.z.MoveTo(float32(s.pts[0].x), float32(s.pts[0].y))
		for _, pt := range s.pts[1:] {
			r.z.LineTo(float32(pt.x), float32(pt.y))
		}
		r.z.ClosePath()
	}
	r.paint(c)
}

// Stroke outlines every segment as a quad of the given width. All quads
// share one winding so overlaps at joints never cancel out.
func (r *Raster) Stroke(c color.Color, width float64) {
	if width <= 0 {
		width = 1
	}
	w, h := r.Size()
	r.z.Reset(w, h)
	half := width / 2
	r.p.segments(false, func(a, b point) {
		dx, dy := b.x-a.x, b.y-a.y
		l := math.Hypot(dx, dy)
		if l == 0 {
			return
		}
		nx, ny := -dy/l*half, dx/l*half
		r.z.MoveTo(float32(a.x+nx), float32(a.y+ny))
		r.z.LineTo(float32(b.x+nx), float32(b.y+ny))
		r.z.LineTo(float32(b.x-nx), float32(b.y-ny))
		r.z.LineTo(float32(a.x-nx), float32(a.y-ny))
		r.z.ClosePath()
	})
	r.paint(c)
}

func (r *Raster) paint(c color.Color) {
	r.z.DrawOp = draw.Over
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}
