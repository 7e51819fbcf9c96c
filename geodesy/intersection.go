package geodesy

import (
	"errors"
	"math"
)

// ErrNoIntersection is returned when two bearing paths do not meet in a single
// well-defined point.
var ErrNoIntersection = errors.New("No intersection point found")

// collinearEpsilon bounds |sin α| for a path running along the great circle
// through both start points, and the atan2 arguments of the p1-intersection
// distance.
const collinearEpsilon = 1e-12

// IntersectionPoint returns the point where the great circle leaving p1 on
// bearing1 crosses the great circle leaving p2 on bearing2. Bearings are in
// radians. Every degenerate configuration (coincident start points, parallel
// or ambiguous paths, undefined inverse trigonometric arguments) is reported
// as ErrNoIntersection. The longitude of the result is not wrapped.
func IntersectionPoint(p1 Point, bearing1 float64, p2 Point, bearing2 float64) (Point, error) {
	lat1, lng1 := p1.radians()
	lat2, lng2 := p2.radians()
	dLat := lat2 - lat1
	dLng := lng2 - lng1

	// angular distance p1-p2
	hav := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	if hav < 0 || hav > 1 {
		return Point{}, ErrNoIntersection
	}
	d12 := 2 * math.Asin(math.Sqrt(hav))

	denomA := math.Sin(d12) * math.Cos(lat1)
	denomB := math.Sin(d12) * math.Cos(lat2)
	if denomA == 0 || denomB == 0 {
		return Point{}, ErrNoIntersection
	}

	// initial/final bearings between the start points
	cosA := (math.Sin(lat2) - math.Sin(lat1)*math.Cos(d12)) / denomA
	cosB := (math.Sin(lat1) - math.Sin(lat2)*math.Cos(d12)) / denomB
	if !inUnitRange(cosA) || !inUnitRange(cosB) {
		return Point{}, ErrNoIntersection
	}
	thetaA := math.Acos(cosA)
	thetaB := math.Acos(cosB)

	var theta12, theta21 float64
	if math.Sin(lng2-lng1) > 0 {
		theta12, theta21 = thetaA, 2*math.Pi-thetaB
	} else {
		theta12, theta21 = 2*math.Pi-thetaA, thetaB
	}

	alpha1 := bearing1 - theta12 // angle 2-1-3
	alpha2 := theta21 - bearing2 // angle 1-2-3
	sin1, sin2 := math.Sin(alpha1), math.Sin(alpha2)

	if math.Abs(sin1) < collinearEpsilon || math.Abs(sin2) < collinearEpsilon {
		// zero included angle: infinite intersections, or the paths only
		// meet at a start point
		return Point{}, ErrNoIntersection
	}
	if sin1*sin2 < 0 {
		// ambiguous intersection
		return Point{}, ErrNoIntersection
	}

	cosAlpha3 := -math.Cos(alpha1)*math.Cos(alpha2) + sin1*sin2*math.Cos(d12)
	if !inUnitRange(cosAlpha3) {
		return Point{}, ErrNoIntersection
	}
	alpha3 := math.Acos(cosAlpha3)

	y13 := math.Sin(d12) * sin1 * sin2
	x13 := math.Cos(alpha2) + math.Cos(alpha1)*math.Cos(alpha3)
	if math.Abs(y13) < collinearEpsilon && math.Abs(x13) < collinearEpsilon {
		return Point{}, ErrNoIntersection
	}
	d13 := math.Atan2(y13, x13)

	sinLat3 := math.Sin(lat1)*math.Cos(d13) + math.Cos(lat1)*math.Sin(d13)*math.Cos(bearing1)
	if !inUnitRange(sinLat3) {
		return Point{}, ErrNoIntersection
	}
	lat3 := math.Asin(sinLat3)

	dLng13 := math.Atan2(
		math.Sin(bearing1)*math.Sin(d13)*math.Cos(lat1),
		math.Cos(d13)-math.Sin(lat1)*math.Sin(lat3),
	)
	lng3 := lng1 + dLng13

	if !finite(lat3, lng3) {
		return Point{}, ErrNoIntersection
	}

	return pointFromRadians(lat3, lng3), nil
}
