package geodesy

import "math"

// Shape is an area on the Earth's surface.
type Shape interface {
	Contains(p Point) bool
}

// Circle is the set of points within Radius meters of Center.
type Circle struct {
	Center Point
	Radius float64 // meters
}

// Rectangle is centered on Center with its long side oriented along Azimuth
// (radians clockwise from north). Semi-axes are in meters.
type Rectangle struct {
	Center        Point
	LongSemiAxis  float64
	ShortSemiAxis float64
	Azimuth       float64
}

// Ellipse is centered on Center with its major axis oriented along Azimuth
// (radians clockwise from north). Semi-axes are in meters.
type Ellipse struct {
	Center        Point
	LongSemiAxis  float64
	ShortSemiAxis float64
	Azimuth       float64
}

// InArea reports whether p lies inside shape.
func InArea(shape Shape, p Point) bool {
	return shape.Contains(p)
}

// Contains implements Shape.
func (c Circle) Contains(p Point) bool {
	return Within(c.Radius, c.Center, p)
}

// Contains implements Shape.
func (r Rectangle) Contains(p Point) bool {
	along, across := localFrame(r.Center, r.Azimuth, p)

	return math.Abs(along) <= r.LongSemiAxis && math.Abs(across) <= r.ShortSemiAxis
}

// Contains implements Shape.
func (e Ellipse) Contains(p Point) bool {
	along, across := localFrame(e.Center, e.Azimuth, p)
	if e.LongSemiAxis <= 0 || e.ShortSemiAxis <= 0 {
		return along == 0 && across == 0
	}

	u := along / e.LongSemiAxis
	v := across / e.ShortSemiAxis

	return u*u+v*v <= 1
}

// localFrame projects p onto the axes of a shape centered on center whose
// first axis points along azimuth. Both results are in meters.
func localFrame(center Point, azimuth float64, p Point) (float64, float64) {
	d := DistanceBetween(center, p)
	if d == 0 {
		return 0, 0
	}

	angle := Bearing(center, p) - azimuth

	return d * math.Cos(angle), d * math.Sin(angle)
}
