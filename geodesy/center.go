package geodesy

import (
	"errors"
	"math"
)

// ErrDegenerateCenter is returned when the averaged position vector has no
// direction, e.g. for two exactly antipodal points.
var ErrDegenerateCenter = errors.New("geographic center is undefined")

// degenerateNorm is the averaged vector length below which the center has no
// meaningful direction.
const degenerateNorm = 1e-12

// GeographicCenter returns the geographic midpoint of points, computed by
// averaging their unit vectors. Points whose Location fails are skipped.
func GeographicCenter(points []Locator) (Point, error) {
	var (
		x, y, z float64
		count   int
	)

	for _, loc := range points {
		p, err := loc.Location()
		if err != nil {
			continue
		}

		lat, lng := p.radians()
		x += math.Cos(lat) * math.Cos(lng)
		y += math.Cos(lat) * math.Sin(lng)
		z += math.Sin(lat)
		count++
	}

	if count == 0 {
		return Point{}, ErrNoPoints
	}

	n := float64(count)
	x, y, z = x/n, y/n, z/n

	if math.Sqrt(x*x+y*y+z*z) < degenerateNorm {
		return Point{}, ErrDegenerateCenter
	}

	lng := math.Atan2(y, x)
	hyp := math.Sqrt(x*x + y*y)
	lat := math.Atan2(z, hyp)

	return pointFromRadians(lat, lng), nil
}
