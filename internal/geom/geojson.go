package geom

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// Decode parses a GeoJSON FeatureCollection, Feature or bare geometry.
// Only the top level must be well formed; geometries are walked lazily.
func Decode(data []byte) (*FeatureCollection, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding geojson: %w", err)
	}
	fc := &FeatureCollection{}
	t, _ := raw["type"].(string)
	switch t {
	case "FeatureCollection":
		fs, ok := raw["features"].([]any)
		if !ok {
			return nil, errors.New("invalid geojson: features is not an array")
		}
		for _, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				// keep the slot so feature indexes in logs match the file
				fc.Features = append(fc.Features, Feature{})
				continue
			}
			fc.Features = append(fc.Features, parseFeature(fm))
		}
	case "Feature":
		fc.Features = append(fc.Features, parseFeature(raw))
	case "":
		return nil, errors.New("invalid geojson: missing type")
	default:
		fc.Features = append(fc.Features, Feature{Geometry: parseGeometry(raw)})
	}
	return fc, nil
}

func parseFeature(fm map[string]any) Feature {
	f := Feature{}
	f.Properties, _ = fm["properties"].(map[string]any)
	if g, ok := fm["geometry"].(map[string]any); ok {
		f.Geometry = parseGeometry(g)
	}
	return f
}

func parseGeometry(g map[string]any) *Geometry {
	gt, _ := g["type"].(string)
	return &Geometry{Type: gt, Coordinates: g["coordinates"]}
}

// Rings returns every ring of a Polygon or MultiPolygon. Malformed
// positions are dropped, so a ring may come back shorter than written.
func (g *Geometry) Rings() ([]orb.Ring, error) {
	switch g.Type {
	case Polygon:
		poly, err := parsePolygon(g.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.Type, err)
		}
		return poly, nil
	case MultiPolygon:
		arr, ok := g.Coordinates.([]any)
		if !ok {
			return nil, fmt.Errorf("%s: coordinates are not an array", g.Type)
		}
		var rings []orb.Ring
		for _, el := range arr {
			poly, err := parsePolygon(el)
			if err != nil {
				// one broken member does not spoil the others
				continue
			}
			rings = append(rings, poly...)
		}
		return rings, nil
	}
	return nil, fmt.Errorf("%w: %q has no rings", ErrUnsupportedGeometry, g.Type)
}

// Lines returns every line of a LineString or MultiLineString.
func (g *Geometry) Lines() ([]orb.LineString, error) {
	switch g.Type {
	case LineString:
		ls, err := parsePositions(g.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.Type, err)
		}
		return []orb.LineString{orb.LineString(ls)}, nil
	case MultiLineString:
		arr, ok := g.Coordinates.([]any)
		if !ok {
			return nil, fmt.Errorf("%s: coordinates are not an array", g.Type)
		}
		var lines []orb.LineString
		for _, el := range arr {
			ls, err := parsePositions(el)
			if err != nil {
				continue
			}
			lines = append(lines, orb.LineString(ls))
		}
		return lines, nil
	}
	return nil, fmt.Errorf("%w: %q has no lines", ErrUnsupportedGeometry, g.Type)
}

func parsePolygon(v any) ([]orb.Ring, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, errors.New("coordinates are not an array")
	}
	var poly []orb.Ring
	for _, ring := range arr {
		pts, err := parsePositions(ring)
		if err != nil {
			continue
		}
		poly = append(poly, orb.Ring(pts))
	}
	return poly, nil
}

func parsePositions(v any) ([]orb.Point, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, errors.New("positions are not an array")
	}
	pts := make([]orb.Point, 0, len(arr))
	for _, el := range arr {
		if pt, ok := parsePoint(el); ok {
			pts = append(pts, pt)
		}
	}
	return pts, nil
}

// parsePoint reads [lon, lat, ...]; anything else is skipped.
func parsePoint(v any) (orb.Point, bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return orb.Point{}, false
	}
	lon, lok := a[0].(float64)
	lat, aok := a[1].(float64)
	if !lok || !aok {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}
