// Package mapdraw traces GeoJSON geometry onto a canvas with the
// equirectangular projection and caches the composed 2D map.
package mapdraw

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"globemap/internal/canvas"
	"globemap/internal/geom"
	"globemap/internal/proj"
)

const (
	minRingPoints = 3
	minLinePoints = 2
)

// Trace appends the sub-paths of g to the current path of ctx and returns
// how many were emitted. Rings shorter than 3 points and lines shorter
// than 2 are skipped without emitting anything.
func Trace(ctx canvas.Context, g *geom.Geometry) (int, error) {
	if g == nil {
		return 0, geom.ErrNoGeometry
	}
	w, h := ctx.Size()
	switch g.Type {
	case geom.Polygon, geom.MultiPolygon:
		rings, err := g.Rings()
		if err != nil {
			return 0, err
		}
		n := 0
		for _, r := range rings {
			if traceRing(ctx, r, float64(w), float64(h)) {
				n++
			}
		}
		return n, nil
	case geom.LineString, geom.MultiLineString:
		lines, err := g.Lines()
		if err != nil {
			return 0, err
		}
		n := 0
		for _, ls := range lines {
			if traceLine(ctx, ls, float64(w), float64(h)) {
				n++
			}
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", geom.ErrUnsupportedGeometry, g.Type)
}

func traceRing(ctx canvas.Context, r orb.Ring, w, h float64) bool {
	if len(r) < minRingPoints {
		return false
	}
	tracePoints(ctx, r, w, h)
	ctx.ClosePath()
	return true
}

func traceLine(ctx canvas.Context, ls orb.LineString, w, h float64) bool {
	if len(ls) < minLinePoints {
		return false
	}
	tracePoints(ctx, ls, w, h)
	return true
}

func tracePoints(ctx canvas.Context, pts []orb.Point, w, h float64) {
	for i, p := range pts {
		x, y := proj.Equirect(p.Lat(), p.Lon(), w, h)
		if i == 0 {
			ctx.MoveTo(x, y)
		} else {
			ctx.LineTo(x, y)
		}
	}
}

// Paint is what DrawFeatures does with each traced feature.
type Paint struct {
	Fill        color.Color // used when non-nil
	Stroke      color.Color // used when non-nil
	StrokeWidth float64
}

// Stats summarizes one draw pass.
type Stats struct {
	Features int
	Paths    int
	Skipped  int
}

// DrawFeatures traces and paints each feature on its own path. A feature
// that fails, including by panicking, is logged and skipped; the pass
// always runs to the end.
func DrawFeatures(ctx canvas.Context, fc *geom.FeatureCollection, paint Paint, log *zap.Logger) Stats {
	var st Stats
	if fc == nil {
		return st
	}
	if log == nil {
		log = zap.NewNop()
	}
	for i, f := range fc.Features {
		st.Features++
		n, err := drawFeature(ctx, f, paint)
		if err != nil {
			st.Skipped++
			lvl := log.Warn
			if errors.Is(err, geom.ErrNoGeometry) {
				lvl = log.Debug
			}
			lvl("skipping feature",
				zap.Int("index", i),
				zap.String("name", f.Name()),
				zap.Error(err))
			continue
		}
		st.Paths += n
	}
	return st
}

func drawFeature(ctx canvas.Context, f geom.Feature, paint Paint) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while drawing: %v", r)
		}
	}()
	ctx.BeginPath()
	n, err = Trace(ctx, f.Geometry)
	if err != nil || n == 0 {
		return n, err
	}
	if paint.Fill != nil {
		ctx.Fill(paint.Fill)
	}
	if paint.Stroke != nil {
		ctx.Stroke(paint.Stroke, paint.StrokeWidth)
	}
	return n, nil
}
