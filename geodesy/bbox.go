package geodesy

import (
	"errors"
	"math"
)

// Semi-axes of the WGS-84 reference ellipsoid in meters.
const (
	wgs84A = 6_378_137.0
	wgs84B = 6_356_752.3
)

// ErrNoPoints is returned by operations over point sets when no point could be located.
var ErrNoPoints = errors.New("no usable points")

// Box is a latitude/longitude aligned bounding box in degrees.
type Box struct {
	SouthWest Point `json:"south_west"`
	NorthEast Point `json:"north_east"`
}

// BoundingBox returns the box enclosing every point within radius meters of p.
//
// The half extents are derived from the WGS-84 radius of curvature at the
// latitude of p. Boxes reaching past a pole are not corrected.
func BoundingBox(p Point, radius float64) Box {
	lat, lng := p.radians()

	r := localRadius(lat)
	parallelRadius := r * math.Cos(lat)

	dLat := radius / r
	dLng := radius / parallelRadius

	return Box{
		SouthWest: pointFromRadians(lat-dLat, lng-dLng),
		NorthEast: pointFromRadians(lat+dLat, lng+dLng),
	}
}

// localRadius is the WGS-84 geocentric radius at the latitude lat (radians).
func localRadius(lat float64) float64 {
	an := wgs84A * wgs84A * math.Cos(lat)
	bn := wgs84B * wgs84B * math.Sin(lat)
	ad := wgs84A * math.Cos(lat)
	bd := wgs84B * math.Sin(lat)

	return math.Sqrt((an*an + bn*bn) / (ad*ad + bd*bd))
}

// BoundingBoxForPoints returns the smallest box holding every point that can be
// located. Points whose Location fails are skipped.
func BoundingBoxForPoints(points []Locator) (Box, error) {
	var (
		box   Box
		found bool
	)

	for _, loc := range points {
		p, err := loc.Location()
		if err != nil {
			continue
		}

		if !found {
			box = Box{SouthWest: p, NorthEast: p}
			found = true
			continue
		}

		box = box.extend(p)
	}

	if !found {
		return Box{}, ErrNoPoints
	}

	return box, nil
}

// ExtendBoundingBox returns the smallest box containing both a and b.
func ExtendBoundingBox(a, b Box) Box {
	return a.extend(b.SouthWest).extend(b.NorthEast)
}

func (b Box) extend(p Point) Box {
	return Box{
		SouthWest: Point{Lat: math.Min(b.SouthWest.Lat, p.Lat), Lng: math.Min(b.SouthWest.Lng, p.Lng)},
		NorthEast: Point{Lat: math.Max(b.NorthEast.Lat, p.Lat), Lng: math.Max(b.NorthEast.Lng, p.Lng)},
	}
}

// ContainsPoint reports whether p lies inside b, edges included. A box whose
// south-west longitude is greater than its north-east longitude is treated as
// crossing the antimeridian.
func (b Box) ContainsPoint(p Point) bool {
	if p.Lat < b.SouthWest.Lat || p.Lat > b.NorthEast.Lat {
		return false
	}

	if b.crossesAntimeridian() {
		return p.Lng >= b.SouthWest.Lng || p.Lng <= b.NorthEast.Lng
	}

	return p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}

// Overlaps reports whether b and o share at least one point.
func (b Box) Overlaps(o Box) bool {
	if b.NorthEast.Lat < o.SouthWest.Lat || o.NorthEast.Lat < b.SouthWest.Lat {
		return false
	}

	switch {
	case b.crossesAntimeridian() && o.crossesAntimeridian():
		return true
	case b.crossesAntimeridian():
		return o.NorthEast.Lng >= b.SouthWest.Lng || o.SouthWest.Lng <= b.NorthEast.Lng
	case o.crossesAntimeridian():
		return b.NorthEast.Lng >= o.SouthWest.Lng || b.SouthWest.Lng <= o.NorthEast.Lng
	default:
		return b.SouthWest.Lng <= o.NorthEast.Lng && o.SouthWest.Lng <= b.NorthEast.Lng
	}
}

func (b Box) crossesAntimeridian() bool {
	return b.SouthWest.Lng > b.NorthEast.Lng
}
