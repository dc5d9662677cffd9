package geom

import (
	"errors"

	"github.com/paulmach/orb"
)

// Geometry kinds the renderer draws.
const (
	Polygon         = "Polygon"
	MultiPolygon    = "MultiPolygon"
	LineString      = "LineString"
	MultiLineString = "MultiLineString"
)

var (
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")
	ErrNoGeometry          = errors.New("feature has no geometry")
)

// Geometry keeps the decoded coordinates as raw JSON values so that
// malformed entries can be skipped one by one when the geometry is walked.
type Geometry struct {
	Type        string
	Coordinates any
}

type Feature struct {
	Geometry   *Geometry
	Properties map[string]any
}

// Name returns the feature's name property, if any.
func (f Feature) Name() string {
	for _, k := range []string{"name", "NAME", "ADMIN", "admin"} {
		if s, ok := f.Properties[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// FeatureCollection is an ordered list of features.
type FeatureCollection struct {
	Features []Feature
}

// Bound returns the bounding box of every decodable coordinate.
// ok is false when the collection has no coordinates at all.
func (fc *FeatureCollection) Bound() (b orb.Bound, ok bool) {
	add := func(p orb.Point) {
		if !ok {
			b = p.Bound()
			ok = true
			return
		}
		b = b.Extend(p)
	}
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		if rings, err := f.Geometry.Rings(); err == nil {
			for _, r := range rings {
				for _, p := range r {
					add(p)
				}
			}
		}
		if lines, err := f.Geometry.Lines(); err == nil {
			for _, ls := range lines {
				for _, p := range ls {
					add(p)
				}
			}
		}
	}
	return b, ok
}
