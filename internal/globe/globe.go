// Package globe draws the datasets on an orthographic globe. Unlike the
// flat map it is redrawn for every frame since the view keeps turning.
package globe

import (
	"image/color"
	"math"

	"github.com/paulmach/orb"

	"globemap/internal/canvas"
	"globemap/internal/geom"
	"globemap/internal/proj"
)

// Style holds the globe colors.
type Style struct {
	Outline   color.Color
	Coastline color.Color
	Border    color.Color
	Graticule color.Color // nil disables the graticule
}

// View returns an orthographic view that fits a surface of w x h units.
// aspect is the height of one unit relative to its width.
func View(lon0, lat0 float64, w, h int, aspect float64) proj.Ortho {
	if aspect <= 0 {
		aspect = 1
	}
	r := math.Min(float64(w), float64(h)*aspect) / 2 * 0.95
	return proj.Ortho{Lon0: lon0, Lat0: lat0, Radius: r, CX: float64(w) / 2, CY: float64(h) / 2}
}

// Draw paints the disc outline, the graticule, land rings and borders.
// Segments with an endpoint on the far side are dropped.
func Draw(ctx canvas.Context, land, borders *geom.FeatureCollection, view proj.Ortho, st Style) {
	outline(ctx, view, st.Outline)
	if st.Graticule != nil {
		graticule(ctx, view, st.Graticule)
	}
	drawCollection(ctx, land, view, st.Coastline)
	drawCollection(ctx, borders, view, st.Border)
}

func outline(ctx canvas.Context, v proj.Ortho, c color.Color) {
	const steps = 96
	ctx.BeginPath()
	for i := 0; i <= steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		x := v.CX + v.Radius*math.Cos(a)
		y := v.CY + v.Radius*math.Sin(a)
		if i == 0 {
			ctx.MoveTo(x, y)
		} else {
			ctx.LineTo(x, y)
		}
	}
	ctx.Stroke(c, 1)
}

func graticule(ctx canvas.Context, v proj.Ortho, c color.Color) {
	ctx.BeginPath()
	for lon := -180.0; lon < 180; lon += 30 {
		var ls orb.LineString
		for lat := -90.0; lat <= 90; lat += 5 {
			ls = append(ls, orb.Point{lon, lat})
		}
		tracePoints(ctx, ls, v, false)
	}
	for lat := -60.0; lat <= 60; lat += 30 {
		var ls orb.LineString
		for lon := -180.0; lon <= 180; lon += 5 {
			ls = append(ls, orb.Point{lon, lat})
		}
		tracePoints(ctx, ls, v, false)
	}
	ctx.Stroke(c, 1)
}

func drawCollection(ctx canvas.Context, fc *geom.FeatureCollection, v proj.Ortho, c color.Color) {
	if fc == nil || c == nil {
		return
	}
	ctx.BeginPath()
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		switch f.Geometry.Type {
		case geom.Polygon, geom.MultiPolygon:
			rings, err := f.Geometry.Rings()
			if err != nil {
				continue
			}
			for _, r := range rings {
				if len(r) >= 3 {
					tracePoints(ctx, r, v, true)
				}
			}
		case geom.LineString, geom.MultiLineString:
			lines, err := f.Geometry.Lines()
			if err != nil {
				continue
			}
			for _, ls := range lines {
				if len(ls) >= 2 {
					tracePoints(ctx, ls, v, false)
				}
			}
		}
	}
	ctx.Stroke(c, 1)
}

// tracePoints emits the visible runs of pts as open sub-paths.
func tracePoints(ctx canvas.Context, pts []orb.Point, v proj.Ortho, closed bool) {
	if closed && len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	pen := false
	for _, p := range pts {
		x, y, ok := v.Project(p.Lat(), p.Lon())
		if !ok {
			pen = false
			continue
		}
		if pen {
			ctx.LineTo(x, y)
		} else {
			ctx.MoveTo(x, y)
			pen = true
		}
	}
}
