// Package geodesy implements great-circle calculations on a spherical Earth.
//
// Coordinates cross the package boundary in decimal degrees, distances in
// meters and bearings in radians measured clockwise from true north. Every
// function is pure and safe for concurrent use.
package geodesy

import "math"

// EarthRadius is the mean Earth radius in meters used by every spherical formula.
const EarthRadius = 6_371_000.0

// DegreesToRadians converts an angle from degrees to radians.
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadiansToDegrees converts an angle from radians to degrees.
func RadiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// radians returns the latitude and longitude of p in radians.
func (p Point) radians() (float64, float64) {
	return DegreesToRadians(p.Lat), DegreesToRadians(p.Lng)
}

func pointFromRadians(lat, lng float64) Point {
	return Point{Lat: RadiansToDegrees(lat), Lng: RadiansToDegrees(lng)}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func inUnitRange(v float64) bool {
	return v >= -1 && v <= 1
}
