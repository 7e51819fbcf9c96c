package query

import (
	"fmt"
	"strconv"

	"github.com/UnknownOlympus/geocalc/geodesy"
	"github.com/UnknownOlympus/geocalc/internal/metrics"
)

// Text renders r on a single line. Floats use precision digits after the
// decimal point, or the shortest exact form when precision is -1.
func (r *Result) Text(precision int) string {
	if r.Status != metrics.StatusSuccess {
		return fmt.Sprintf("%s: %s", r.Status, r.Reason)
	}

	num := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	point := func(p geodesy.Point) string {
		return num(p.Lat) + "," + num(p.Lng)
	}

	switch v := r.Value.(type) {
	case float64:
		return num(v)
	case bool:
		return strconv.FormatBool(v)
	case geodesy.Point:
		return point(v)
	case geodesy.Box:
		return point(v.SouthWest) + " " + point(v.NorthEast)
	case Longitudes:
		return num(v.Lng1) + " " + num(v.Lng2)
	default:
		return fmt.Sprint(v)
	}
}
