package geodesy

import "math"

// DistanceBetween returns the great-circle distance in meters between p1 and p2
// using the haversine formula.
func DistanceBetween(p1, p2 Point) float64 {
	return EarthRadius * angularDistance(p1, p2)
}

// angularDistance is the central angle between p1 and p2 in radians.
func angularDistance(p1, p2 Point) float64 {
	lat1 := DegreesToRadians(p1.Lat)
	lat2 := DegreesToRadians(p2.Lat)
	dLat := DegreesToRadians(p2.Lat - p1.Lat)
	dLng := DegreesToRadians(p2.Lng - p1.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Within reports whether p lies at most radius meters from center.
// A negative radius is never satisfied.
func Within(radius float64, center, p Point) bool {
	if radius < 0 {
		return false
	}

	return DistanceBetween(center, p) <= radius
}

// CrossTrackDistanceTo returns the signed distance in meters from p to the great
// circle running from start towards end. Negative values lie left of the path.
func CrossTrackDistanceTo(p, start, end Point) float64 {
	d13 := DistanceBetween(start, p) / EarthRadius
	theta13 := Bearing(start, p)
	theta12 := Bearing(start, end)

	return math.Asin(math.Sin(d13)*math.Sin(theta13-theta12)) * EarthRadius
}
