package geodesy

import (
	"errors"
	"math"
)

// ErrNoCrossing is returned when a great circle never reaches the requested latitude.
var ErrNoCrossing = errors.New("Not found")

// CrossingParallels returns the two longitudes, in degrees, at which the great
// circle through p1 and p2 crosses the parallel at latitude (degrees).
//
// The latitude must be reachable by the great circle; otherwise, or when p1 and
// p2 coincide so that no great circle is defined, ErrNoCrossing is returned.
// Longitudes are not wrapped into [-180, 180].
func CrossingParallels(p1, p2 Point, latitude float64) (float64, float64, error) {
	lat := DegreesToRadians(latitude)
	lat1, lng1 := p1.radians()
	lat2, lng2 := p2.radians()
	dLng := lng2 - lng1

	x := math.Sin(lat1) * math.Cos(lat2) * math.Cos(lat) * math.Sin(dLng)
	y := math.Sin(lat1)*math.Cos(lat2)*math.Cos(lat)*math.Cos(dLng) -
		math.Cos(lat1)*math.Sin(lat2)*math.Cos(lat)
	z := math.Cos(lat1) * math.Cos(lat2) * math.Sin(lat) * math.Sin(dLng)

	radial := x*x + y*y
	if radial == 0 || z*z > radial || !finite(x, y, z) {
		return 0, 0, ErrNoCrossing
	}

	cosDelta := z / math.Sqrt(radial)
	if !inUnitRange(cosDelta) {
		return 0, 0, ErrNoCrossing
	}

	lngMax := math.Atan2(-y, x)     // longitude at maximum latitude
	deltaLng := math.Acos(cosDelta) // from lngMax to each crossing

	lngI1 := lng1 + lngMax - deltaLng
	lngI2 := lng1 + lngMax + deltaLng

	return RadiansToDegrees(lngI1), RadiansToDegrees(lngI2), nil
}
