package geodesy

import "math"

// Bearing returns the initial bearing in radians for the great circle from p1
// to p2. The result lies in (-π, π] and is not normalized to [0, 2π).
func Bearing(p1, p2 Point) float64 {
	lat1, lng1 := p1.radians()
	lat2, lng2 := p2.radians()
	dLng := lng2 - lng1

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	return math.Atan2(y, x)
}

// DestinationPoint returns the point reached by travelling distance meters from
// start along the great circle with the given initial bearing (radians).
// The longitude of the result is not wrapped into [-180, 180].
//
// The error is always nil; it keeps the signature in line with the operations
// that can fail.
func DestinationPoint(start Point, bearing, distance float64) (Point, error) {
	lat1, lng1 := start.radians()
	delta := distance / EarthRadius

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(bearing))
	lng2 := lng1 + math.Atan2(
		math.Sin(bearing)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2),
	)

	return pointFromRadians(lat2, lng2), nil
}

// DestinationPointTowards travels distance meters from start in the direction
// of towards.
func DestinationPointTowards(start, towards Point, distance float64) (Point, error) {
	return DestinationPoint(start, Bearing(start, towards), distance)
}

// MaxLatitude returns, in degrees, the highest latitude reached by the great
// circle leaving p with the given bearing (Clairaut's formula). Longitude is
// not used.
func MaxLatitude(p Point, bearing float64) float64 {
	lat := DegreesToRadians(p.Lat)

	return RadiansToDegrees(math.Acos(math.Abs(math.Sin(bearing) * math.Cos(lat))))
}
