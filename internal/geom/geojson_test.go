package geom

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const sample = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Triangle"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[10,0],[10,10]]]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "MultiLineString", "coordinates": [[[0,0],[5,5]], [[1,1]]]}},
    {"type": "Feature", "geometry": null},
    "not a feature"
  ]
}`

func TestDecodeFeatureCollection(t *testing.T) {
	fc, err := Decode([]byte(sample))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(fc.Features) != 4 {
		t.Fatalf("expected 4 feature slots, got %d", len(fc.Features))
	}
	if got := fc.Features[0].Name(); got != "Triangle" {
		t.Errorf("expected name Triangle, got %q", got)
	}
	if fc.Features[2].Geometry != nil {
		t.Error("null geometry should decode as nil")
	}
	rings, err := fc.Features[0].Geometry.Rings()
	if err != nil {
		t.Fatalf("rings: %v", err)
	}
	if len(rings) != 1 || len(rings[0]) != 3 {
		t.Errorf("expected one ring of 3 points, got %v", rings)
	}
	lines, err := fc.Features[1].Geometry.Lines()
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if len(lines) != 2 || len(lines[1]) != 1 {
		t.Errorf("expected two lines, second with 1 point, got %v", lines)
	}
}

func TestDecodeSingleFeatureAndBareGeometry(t *testing.T) {
	fc, err := Decode([]byte(`{"type":"Feature","geometry":{"type":"LineString","coordinates":[[1,2],[3,4]]}}`))
	if err != nil || len(fc.Features) != 1 || fc.Features[0].Geometry.Type != LineString {
		t.Fatalf("unexpected feature decode: %+v, %v", fc, err)
	}
	fc, err = Decode([]byte(`{"type":"MultiPolygon","coordinates":[]}`))
	if err != nil || len(fc.Features) != 1 || fc.Features[0].Geometry.Type != MultiPolygon {
		t.Fatalf("unexpected geometry decode: %+v, %v", fc, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{"type": `},
		{"missing type", `{"features": []}`},
		{"features not array", `{"type":"FeatureCollection","features":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRingsSkipMalformedPositions(t *testing.T) {
	fc, err := Decode([]byte(`{"type":"Polygon","coordinates":[[[0,0],[1],"x",[2,"a"],[5,5,100],[0,5]]]}`))
	if err != nil {
		t.Fatal(err)
	}
	rings, err := fc.Features[0].Geometry.Rings()
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 1 || len(rings[0]) != 3 {
		t.Fatalf("expected 3 surviving positions, got %v", rings)
	}
	if rings[0][1][0] != 5 || rings[0][1][1] != 5 {
		t.Errorf("altitude should be ignored, got %v", rings[0][1])
	}
}

func TestMultiPolygonSkipsBrokenMembers(t *testing.T) {
	fc, err := Decode([]byte(`{"type":"MultiPolygon","coordinates":[7, [[[0,0],[1,0],[1,1]]], [[[2,2],[3,2],[3,3]], 9]]}`))
	if err != nil {
		t.Fatal(err)
	}
	rings, err := fc.Features[0].Geometry.Rings()
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 2 {
		t.Errorf("expected 2 rings, got %d", len(rings))
	}
}

func TestWrongKindIsUnsupported(t *testing.T) {
	g := &Geometry{Type: "Point", Coordinates: []any{1.0, 2.0}}
	if _, err := g.Rings(); !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("expected ErrUnsupportedGeometry, got %v", err)
	}
	if _, err := g.Lines(); !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("expected ErrUnsupportedGeometry, got %v", err)
	}
	g = &Geometry{Type: Polygon, Coordinates: "nope"}
	if _, err := g.Rings(); err == nil {
		t.Error("expected error for non-array coordinates")
	}
}

func TestBound(t *testing.T) {
	fc, err := Decode([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	b, ok := fc.Bound()
	if !ok {
		t.Fatal("expected a bound")
	}
	if b.Min[0] != 0 || b.Min[1] != 0 || b.Max[0] != 10 || b.Max[1] != 10 {
		t.Errorf("unexpected bound %v", b)
	}
	if _, ok := (&FeatureCollection{}).Bound(); ok {
		t.Error("empty collection should have no bound")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "land.geojson")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	fc, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(fc.Features) != 4 {
		t.Errorf("expected 4 features, got %d", len(fc.Features))
	}
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.geojson")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/land.geojson":
			w.Write([]byte(sample))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	fc, err := Load(context.Background(), srv.URL+"/land.geojson")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(fc.Features) != 4 {
		t.Errorf("expected 4 features, got %d", len(fc.Features))
	}
	if _, err := Load(context.Background(), srv.URL+"/missing.geojson"); err == nil {
		t.Error("expected error for 404")
	}
}
