package proj

import "math"

// Equirect maps lat/lon onto a width x height surface with a plain linear
// transform. Input is not validated: out of range coordinates land outside
// the surface.
func Equirect(lat, lon, width, height float64) (x, y float64) {
	x = (lon + 180) * width / 360
	y = (90 - lat) * height / 180
	return x, y
}

// Ortho is an orthographic globe view centered on (Lon0, Lat0).
type Ortho struct {
	Lon0   float64
	Lat0   float64
	Radius float64
	CX     float64
	CY     float64
}

// Project maps lon/lat onto the globe disc. visible is false on the far hemisphere.
func (o Ortho) Project(lat, lon float64) (x, y float64, visible bool) {
	phi := lat * math.Pi / 180
	lam := (lon - o.Lon0) * math.Pi / 180
	phi0 := o.Lat0 * math.Pi / 180

	cosc := math.Sin(phi0)*math.Sin(phi) + math.Cos(phi0)*math.Cos(phi)*math.Cos(lam)
	px := o.Radius * math.Cos(phi) * math.Sin(lam)
	py := o.Radius * (math.Cos(phi0)*math.Sin(phi) - math.Sin(phi0)*math.Cos(phi)*math.Cos(lam))
	// screen y grows downwards
	return o.CX + px, o.CY - py, cosc >= 0
}

// Rotate shifts the view center by dlon degrees, wrapping into [-180, 180).
func (o Ortho) Rotate(dlon float64) Ortho {
	l := math.Mod(o.Lon0+dlon+180, 360)
	if l < 0 {
		l += 360
	}
	o.Lon0 = l - 180
	return o
}

// Tilt shifts the view latitude by dlat degrees, clamped to the poles.
func (o Ortho) Tilt(dlat float64) Ortho {
	o.Lat0 = math.Max(-90, math.Min(90, o.Lat0+dlat))
	return o
}
